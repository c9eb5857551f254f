package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret = errors.New("signing secret is not configured")
	ErrInvalid     = errors.New("invalid token")
)

// Claims embeds exactly the owning user's identifier. No expiry claim is
// set: issued tokens stay valid until the signing secret changes.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

type Servicer interface {
	Issue(userID int) (string, error)
	Verify(token string) (int, error)
}

type Service struct {
	secret []byte
}

// NewService fails without a secret so the service can never verify
// tokens against an empty key.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Service{secret: []byte(secret)}, nil
}

func (s *Service) Issue(userID int) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	return t.SignedString(s.secret)
}

func (s *Service) Verify(tokenString string) (int, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !t.Valid || claims.UserID <= 0 {
		return 0, ErrInvalid
	}
	return claims.UserID, nil
}
