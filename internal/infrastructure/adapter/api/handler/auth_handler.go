package handler

import (
	"net/http"

	"github.com/Minyanaing/item-market/internal/domain/entity"
	domainerr "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/domain/port/usecase"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/dto"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/flash"
	"github.com/Minyanaing/item-market/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge bounds the browser session cookie lifetime
const sessionCookieMaxAge = 86400

// AuthHandler handles registration, login and logout requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	flashes     *flash.CookieStore
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, flashes *flash.CookieStore, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		flashes:     flashes,
		logger:      logger,
	}
}

// Register handles POST /register: it creates the account and logs the
// user in immediately
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.flashes.Add(c, entity.NewDangerNotification("ERROR: %s", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: err.Error(),
		})
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if domainerr.IsDuplicateUserError(err) {
			h.flashes.Add(c, entity.NewDangerNotification(
				"ERROR: Username already exists! Please try a different username"))
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Username already exists",
			})
			return
		}

		h.logger.Error("Registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	h.establishSession(c, result)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:    result.Token,
		Username: result.Username,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: err.Error(),
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if domainerr.IsInvalidCredentialsError(err) {
			h.flashes.Add(c, entity.NewDangerNotification(
				"Username and Password are not match! Please try again."))
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Username and password do not match",
			})
			return
		}

		h.logger.Error("Login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	h.establishSession(c, result)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:    result.Token,
		Username: result.Username,
	})
}

// Logout handles POST /logout: the session is stateless, so logging out
// just drops the cookie and flashes a note
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	h.flashes.Add(c, entity.NewInfoNotification("You have been logged out!"))
	c.Redirect(http.StatusSeeOther, "/home")
}

// establishSession stores the token in the session cookie and flashes the
// result notification for the next page view
func (h *AuthHandler) establishSession(c *gin.Context, result *usecase.AuthResult) {
	c.SetCookie(middleware.SessionCookieName, result.Token, sessionCookieMaxAge, "/", "", false, true)
	h.flashes.Add(c, result.Notification)
}
