package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/huellitas-app/huellitas/internal/common"
)

// Claims carries the standard claims plus the username of the session owner.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken signs an HS256 token over the username. No expiry claim is
// set: the session stays valid until explicit logout removes the marker.
func GenerateToken(username string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UsernameFromToken verifies the token signature and returns the username
// claim, or common.ErrInvalidToken.
func UsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
