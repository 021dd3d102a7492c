package httpapi

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
)

const (
	loginPath    = "/api/login"
	registerPath = "/api/register"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse принимает обе формы ответа API: пользователь с полем token
// или обертка {"user": {...}, "token": "..."}.
type authResponse struct {
	domain.User
	Token   string       `json:"token"`
	Wrapped *domain.User `json:"user"`
}

// result возвращает пользователя из ответа. Ответ без пользователя ({} или null) считается ошибкой API.
func (a *authResponse) result(path string) (*domain.User, string, error) {
	user := a.User
	if a.Wrapped != nil {
		user = *a.Wrapped
	}
	if user.ID == 0 {
		return nil, "", fmt.Errorf("POST %s: response carries no user: %w", path, domain.ErrUpstream)
	}
	user.Password = ""
	return &user, a.Token, nil
}

// AuthRepository реализует repository.AuthRepository через внешний API
type AuthRepository struct {
	client *Client
}

// NewAuthRepository создает новый AuthRepository
func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

// Login отправляет POST /api/login
func (r *AuthRepository) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	var resp authResponse
	if err := r.client.postJSON(ctx, loginPath, loginRequest{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return nil, "", err
	}

	return resp.result(loginPath)
}

// Register отправляет POST /api/register
func (r *AuthRepository) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	var resp authResponse
	if err := r.client.postJSON(ctx, registerPath, registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp); err != nil {
		return nil, "", err
	}

	return resp.result(registerPath)
}
