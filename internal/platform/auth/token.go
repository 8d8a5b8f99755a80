// Package auth issues and validates the signed session tokens that gate every
// protected operation, and carries the authenticated identity on the request
// context.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bedboard/bedboard/internal/platform/apperr"
)

// Claims is the session token payload: the numeric user id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

// Issuer signs and verifies HS256 session tokens. The secret comes from the
// environment; it is never embedded in the binary.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue returns a signed token embedding the user id and role, expiring after
// the configured TTL.
func (i *Issuer) Issue(userID int, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "sign token", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Missing, expired, and forged
// tokens all report the same Unauthorized kind.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, apperr.Wrap(apperr.KindUnauthorized, "invalid token", err)
	}
	return claims, nil
}
