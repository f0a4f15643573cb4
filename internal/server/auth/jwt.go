// Package auth implements the signed bearer token used for per-request
// authentication. Tokens are stateless: validity is re-derived on every
// request from the signature and the embedded timestamps, and there is no
// server-side revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/resumecore/api/internal/common"
)

// Claims includes the standard registered claims plus the user id the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken issues an HS256-signed token for userID whose expiry is
// issued-at plus validityDuration. The signature covers the whole payload,
// so any mutation invalidates the token.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken returns the subject user id of a well-formed, signed,
// unexpired token. It returns common.ErrTokenExpired for expired tokens and
// common.ErrMalformedToken for anything that cannot be parsed or whose
// signature does not verify.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrMalformedToken
	}

	if !token.Valid {
		return "", common.ErrMalformedToken
	}

	return claims.UserID, nil
}

// IsValid reports whether the signature verifies and the current time is
// before the token's expiry.
func IsValid(tokenString string, secretKey []byte) bool {
	_, err := GetUserIDFromToken(tokenString, secretKey)
	return err == nil
}

// IsExpired reports whether the signature verifies but the expiry has
// passed. Tokens that fail signature verification are also reported as
// expired, so callers never extend trust to an unverifiable token.
func IsExpired(tokenString string, secretKey []byte) bool {
	_, err := GetUserIDFromToken(tokenString, secretKey)
	return errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrMalformedToken)
}
