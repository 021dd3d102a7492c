package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/middleware"
	"github.com/aidar/teamboard/internal/service"
	"github.com/aidar/teamboard/internal/view"
)

// AuthHandler обрабатывает вход, регистрацию и выход
type AuthHandler struct {
	authService *service.AuthService
	cookie      middleware.SessionCookie
	pages       *Pages
	logger      *slog.Logger
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService, cookie middleware.SessionCookie, pages *Pages, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		pages:       pages,
		logger:      logger,
	}
}

// LoginPage обрабатывает GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.pages.Render(w, r, http.StatusOK, view.PageLogin, &view.AuthPage{Layout: h.pages.Layout(r)})
}

// Login обрабатывает POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "Malformed form", "error", err)
		h.renderFailure(w, r, view.PageLogin, fmt.Errorf("parse form: %w", domain.ErrValidation), domain.Credentials{})
		return
	}

	creds := domain.Credentials{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	token, session, err := h.authService.Login(r.Context(), creds)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Login failed", "username", creds.Username, "error", err)
		h.renderFailure(w, r, view.PageLogin, err, creds)
		return
	}

	h.cookie.Set(w, token, h.authService.Expiry())
	h.logger.InfoContext(r.Context(), "User logged in", "user_id", session.UserID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage обрабатывает GET /register
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.pages.Render(w, r, http.StatusOK, view.PageRegister, &view.AuthPage{Layout: h.pages.Layout(r)})
}

// Register обрабатывает POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "Malformed form", "error", err)
		h.renderFailure(w, r, view.PageRegister, fmt.Errorf("parse form: %w", domain.ErrValidation), domain.Credentials{})
		return
	}

	creds := domain.Credentials{
		Username:        r.PostForm.Get("username"),
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
	}

	token, session, err := h.authService.Register(r.Context(), creds)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Registration failed", "username", creds.Username, "error", err)
		h.renderFailure(w, r, view.PageRegister, err, creds)
		return
	}

	h.cookie.Set(w, token, h.authService.Expiry())
	h.logger.InfoContext(r.Context(), "User registered", "user_id", session.UserID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout обрабатывает POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// renderFailure показывает форму снова с локализованной ошибкой и введенными данными (кроме пароля)
func (h *AuthHandler) renderFailure(w http.ResponseWriter, r *http.Request, page string, err error, creds domain.Credentials) {
	t := h.pages.Localizer(r)
	h.pages.Render(w, r, StatusForError(err), page, &view.AuthPage{
		Layout:   h.pages.Layout(r),
		Error:    t(string(domain.MapErrorToKey(err))),
		Username: creds.Username,
		Email:    creds.Email,
	})
}
