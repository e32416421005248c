// Package auth implements account registration, login and bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/matthieukhl/giftlab/internal/models"
	"github.com/matthieukhl/giftlab/internal/store"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the payload carried by a bearer token.
type Identity struct {
	UserID int64
	Email  string
}

type Service struct {
	users  *store.UserStore
	secret []byte
	ttl    time.Duration
}

func NewService(users *store.UserStore, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), ttl: ttl}
}

// Register creates an account and returns a fresh bearer token for it.
// A duplicate email surfaces as store.ErrConflict.
func (s *Service) Register(email, password, name string) (string, *models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{Email: email, Password: string(hash), Name: name}
	if err := s.users.CreateUser(u); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Login verifies credentials and returns a fresh bearer token.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	u, err := s.users.GetUserByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ParseToken validates signature and expiry and returns the embedded
// identity. Protected routes must still re-fetch the user when they need
// fresh account state (e.g. the admin flag).
func (s *Service) ParseToken(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: int64(sub), Email: email}, nil
}

func (s *Service) issueToken(u *models.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	})
	token, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
