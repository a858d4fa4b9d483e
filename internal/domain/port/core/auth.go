package core

// PasswordHasher abstracts credential hashing so the domain never sees
// plaintext storage details
type PasswordHasher interface {
	// Hash derives an opaque, verifiable hash from a plaintext password
	Hash(password string) (string, error)
	// Verify reports whether the password matches the stored hash
	Verify(hash, password string) bool
}

// SessionClaims carries the identity encoded in a session token
type SessionClaims struct {
	UserID   uint64
	Username string
}

// TokenIssuer creates and verifies session tokens for authenticated users
type TokenIssuer interface {
	// Issue creates a signed token for the given identity
	Issue(userID uint64, username string) (string, error)

	// Verify parses a token and returns its claims
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired, or badly signed
	Verify(token string) (*SessionClaims, error)
}
