package middleware

import (
	"net/http"
	"strings"

	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the session token for browser clients
	SessionCookieName = "im_session"

	// userIDKey and usernameKey hold the authenticated identity in the
	// gin context
	userIDKey   = "auth.userID"
	usernameKey = "auth.username"

	// LoginPath is where unauthenticated page requests are redirected
	LoginPath = "/login"
)

// RequireUser is the authentication gate run before protected handlers.
// It verifies the session token from the Authorization header or the
// session cookie, stores the identity in the request context, and
// short-circuits on failure: browser-style requests get a redirect to the
// login page, API clients get 401.
func RequireUser(tokens coreport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.Debug("Session token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			abortUnauthenticated(c)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the request
// context. The second return is false when the request was not
// authenticated.
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

// CurrentUsername returns the authenticated user's handle
func CurrentUsername(c *gin.Context) string {
	value, exists := c.Get(usernameKey)
	if !exists {
		return ""
	}
	username, _ := value.(string)
	return username
}

// extractToken reads the session token from the Authorization header or
// the session cookie
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// abortUnauthenticated short-circuits the request: redirect for clients
// that want HTML, 401 for the rest
func abortUnauthenticated(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, LoginPath)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "authentication required"})
}
