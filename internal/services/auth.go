package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService verifies bearer tokens issued by the external identity
// provider and extracts the opaque user identifier.
type AuthService interface {
	VerifyToken(tokenString string) (string, error)
}

type authService struct {
	secret []byte
}

func NewAuthService(secret string) AuthService {
	return &authService{secret: []byte(secret)}
}

// VerifyToken implements AuthService. Expiry is enforced by the parser;
// the user id comes from the standard sub claim.
func (a *authService) VerifyToken(tokenString string) (string, error) {
	if len(a.secret) == 0 {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no user id")
	}

	return sub, nil
}
