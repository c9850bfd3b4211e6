package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider verifies locally-signed HS256 tokens. Used in development
// and tests when no Firebase service key is configured; there is no
// provider-side user store to delete from.
type JWTProvider struct {
	secret []byte
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) VerifyToken(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	email, _ := claims["email"].(string)
	sub, _ := claims["sub"].(string)
	if email == "" {
		return nil, fmt.Errorf("token missing email claim")
	}

	return &Identity{UID: sub, Email: email}, nil
}

func (p *JWTProvider) DeleteUserByEmail(_ context.Context, _ string) error {
	// Local tokens have no remote user record.
	return ErrUserNotFound
}
