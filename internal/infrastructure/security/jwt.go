package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what a verified token proves about the caller. Tokens are
// stateless: the admin flag travels in the claims, not in a session store.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Generate(userID uuid.UUID, isAdmin bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"adm": isAdmin,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

func (m *TokenManager) Validate(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	isAdmin, _ := claims["adm"].(bool)

	return Identity{UserID: userID, IsAdmin: isAdmin}, nil
}
