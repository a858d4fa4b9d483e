package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	errs "github.com/Minyanaing/item-market/internal/domain/error"
	"github.com/Minyanaing/item-market/internal/domain/port/core"
)

// JWTIssuer implements the TokenIssuer port with HS256-signed JWTs
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a new JWT issuer with the given signing secret and
// token lifetime
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider core.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token carrying the user's identity
func (i *JWTIssuer) Issue(userID uint64, username string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = userID
	claims["username"] = username
	claims["exp"] = i.timeProvider.Now().Add(i.ttl).Unix()

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses a token and returns its claims
func (i *JWTIssuer) Verify(tokenString string) (*core.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return nil, errs.ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &core.SessionClaims{
		UserID:   uint64(uid),
		Username: username,
	}, nil
}
