package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stockboard/internal/config"
	"stockboard/internal/models"
	"stockboard/internal/repository"
	"stockboard/internal/util"
)

// Claims is the payload of an access token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.AccessTokenDuration,
		now:      time.Now,
	}
}

// Register creates a user after checking the username index for a duplicate.
// The check and the write are not atomic.
func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.Nickname == "" {
		return nil, util.ErrInvalidInput
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("register %s: %w", req.Username, util.ErrUsernameTaken)
	case err != nil && !errors.Is(err, util.ErrUserNotFound):
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Nickname: req.Nickname,
	}
	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues a signed token. Unknown users and
// wrong passwords both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", util.ErrInvalidInput
	}

	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) || errors.Is(err, util.ErrInvalidCredentials) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error verifying credentials: %w", err)
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, util.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", util.ErrTokenInvalid, err)
	}

	if claims.UserID == "" {
		return nil, util.ErrTokenInvalid
	}

	return claims, nil
}
