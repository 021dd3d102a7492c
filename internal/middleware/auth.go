package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/service"
)

// ContextKey это кастомный тип для ключей контекста
type ContextKey string

const (
	// SessionKey ключ контекста для сессии пользователя
	SessionKey ContextKey = "session"
	// LangKey ключ контекста для языка запроса
	LangKey ContextKey = "lang"
)

// SessionCookie описывает cookie, в которой хранится JWT сессии
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set записывает токен сессии в cookie
func (c SessionCookie) Set(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie сессии
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware читает JWT из cookie и кладет сессию в контекст.
// Запросы без сессии пропускаются дальше: доступ проверяет RequireSession.
func SessionMiddleware(authService *service.AuthService, cookie SessionCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.Name)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Валидируем токен
			claims, err := authService.ValidateToken(c.Value)
			if err != nil {
				// Просроченную или поддельную cookie сразу удаляем
				cookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, claims.Session())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession пропускает только запросы с сессией.
// HTML запросы перенаправляются на /login, JSON запросы получают 401.
func RequireSession(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !required || GetSessionFromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			if wantsJSON(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"login required"}}`))
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		})
	}
}

// GetSessionFromContext извлекает сессию из контекста
func GetSessionFromContext(ctx context.Context) *domain.Session {
	session, ok := ctx.Value(SessionKey).(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.URL.Path, "/fragments/")
}
