package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Auth signs and verifies the API's session tokens. The secret comes from
// the environment; one instance is shared by the login handler and the
// middleware.
type Auth struct {
	key []byte
}

func New(secret string) *Auth {
	return &Auth{key: []byte(secret)}
}

// Claims defines what is inside the token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a user. Tokens last one day,
// which covers a full shift with room to spare.
func (a *Auth) GenerateToken(userID uint, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.key)
}

// ValidateToken checks if a token is fake or expired.
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
