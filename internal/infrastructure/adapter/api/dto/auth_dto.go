package dto

// RegisterRequest represents the registration form
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,min=2,max=30"`
	Email    string `form:"email_address" json:"email_address" binding:"required,email"`
	Password string `form:"password1" json:"password1" binding:"required,min=6"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// AuthResponse is returned after a successful register or login
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
