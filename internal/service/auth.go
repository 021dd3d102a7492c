package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/repository"
)

// Claims represents session JWT claims
type Claims struct {
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	UpstreamToken string `json:"upstream_token,omitempty"`
	jwt.RegisteredClaims
}

// Session converts claims to a domain session
func (c *Claims) Session() *domain.Session {
	return &domain.Session{
		UserID:   c.UserID,
		Username: c.Username,
		Token:    c.UpstreamToken,
	}
}

// AuthService handles login/registration against the upstream API and session tokens
type AuthService struct {
	authRepo  repository.AuthRepository
	jwtSecret string
	jwtExpiry time.Duration
	now       func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(authRepo repository.AuthRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		authRepo:  authRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		now:       time.Now,
	}
}

// Expiry returns the session lifetime
func (s *AuthService) Expiry() time.Duration {
	return s.jwtExpiry
}

// Login checks credentials upstream and issues a session token
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (string, *domain.Session, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return "", nil, fmt.Errorf("username and password are required: %w", domain.ErrValidation)
	}

	user, upstreamToken, err := s.authRepo.Login(ctx, username, creds.Password)
	if err != nil {
		return "", nil, fmt.Errorf("login %q: %w", username, err)
	}

	return s.issue(user, upstreamToken)
}

// Register creates the user upstream and logs them in
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (string, *domain.Session, error) {
	username := strings.TrimSpace(creds.Username)
	email := strings.TrimSpace(creds.Email)

	switch {
	case username == "" || email == "" || creds.Password == "":
		return "", nil, fmt.Errorf("username, email and password are required: %w", domain.ErrValidation)
	case !strings.Contains(email, "@"):
		return "", nil, fmt.Errorf("email %q is malformed: %w", email, domain.ErrValidation)
	case creds.Password != creds.ConfirmPassword:
		return "", nil, fmt.Errorf("passwords do not match: %w", domain.ErrValidation)
	}

	user, upstreamToken, err := s.authRepo.Register(ctx, username, email, creds.Password)
	if err != nil {
		return "", nil, fmt.Errorf("register %q: %w", username, err)
	}

	return s.issue(user, upstreamToken)
}

func (s *AuthService) issue(user *domain.User, upstreamToken string) (string, *domain.Session, error) {
	now := s.now()

	// Create claims
	claims := &Claims{
		UserID:        user.ID,
		Username:      user.Username,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.Session(), nil
}

// ValidateToken validates a session token and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
