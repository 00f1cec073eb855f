package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"vichaarmanthan/mock-interview/internal/config"
	apperrors "vichaarmanthan/mock-interview/internal/errors"
	"vichaarmanthan/mock-interview/internal/models"
	"vichaarmanthan/mock-interview/internal/repositories"
)

// Claims is the JWT payload; the email is the user identity.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService is the access gate. ResolveUser is the single validation
// entry point for every transport: REST passes the bearer token, the
// realtime channel passes its handshake token.
type AuthService interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	secret   []byte
	expiry   time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, cfg config.JWTConfig) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(cfg.Secret),
		expiry:   cfg.Expiry,
	}
}

// ResolveUser implements AuthService. The returned projection has the
// credential hash stripped; the raw token is never logged.
func (s *authService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrInvalidCredential
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Email == "" {
		return nil, apperrors.ErrInvalidCredential
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

// Register implements AuthService.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNum:     req.PhoneNum,
		Interviews:   []models.Interview{},
	}

	return s.userRepo.Create(ctx, user)
}

// Login implements AuthService.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredential
	}

	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
