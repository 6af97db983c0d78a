package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"task-manager/internal/errs"
	"task-manager/internal/model"
	"task-manager/internal/repository"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	tokenTTL       = 24 * time.Hour
)

// AuthService handles registration, login and bearer tokens. Password
// hashes never leave this layer except into the user repository.
type AuthService struct {
	users  *repository.UserRepository
	secret []byte
}

func NewAuthService(users *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, secret: []byte(jwtSecret)}
}

// Register creates an account from a plain-text password, hashing it with
// bcrypt before it reaches the store.
func (s *AuthService) Register(ctx context.Context, input model.CreateUser) (*model.UserResponse, error) {
	if err := validateNewUser(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal(fmt.Sprintf("hash password: %v", err))
	}

	user, err := s.users.Create(ctx, input.Username, string(hash), input.Email)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	switch {
	case errs.IsNotFound(err):
		return "", nil, errs.InvalidCredentials()
	case err != nil:
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, errs.InvalidCredentials()
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	resp := user.ToResponse()
	return token, &resp, nil
}

// GenerateToken issues an HS256 JWT for the user.
func (s *AuthService) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.Internal(fmt.Sprintf("sign token: %v", err))
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns the user id it carries.
func (s *AuthService) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errs.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.Unauthorized("invalid claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errs.Unauthorized("user_id not found in token")
	}

	return int64(userID), nil
}

func validateNewUser(input model.CreateUser) error {
	if n := len(input.Username); n < minUsernameLen || n > maxUsernameLen {
		return errs.Validation(fmt.Sprintf("username must be %d-%d characters", minUsernameLen, maxUsernameLen))
	}
	if len(input.Password) < minPasswordLen {
		return errs.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	return nil
}
