package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/i18n"
	"github.com/aidar/teamboard/internal/middleware"
)

const langCookieTTL = 365 * 24 * time.Hour

// LocaleHandler переключает язык интерфейса
type LocaleHandler struct {
	translator *i18n.Translator
}

// NewLocaleHandler создает новый LocaleHandler
func NewLocaleHandler(translator *i18n.Translator) *LocaleHandler {
	return &LocaleHandler{translator: translator}
}

// Switch обрабатывает GET /lang/{lng}?next=...
func (h *LocaleHandler) Switch(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lng")
	if !h.translator.Supported(lang) {
		HandleError(w, r, domain.ErrValidation)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.LangCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   int(langCookieTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// redirectTarget возвращает локальный путь для возврата: next, Referer или "/"
func redirectTarget(r *http.Request) string {
	if next := r.URL.Query().Get("next"); isLocalPath(next) {
		return next
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host == r.Host && isLocalPath(ref.RequestURI()) {
		return ref.RequestURI()
	}
	return "/"
}

// isLocalPath принимает только путь на этом же сайте. Управляющие символы
// запрещены: браузер удаляет их и "/\t/host" превращается в "//host".
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	if strings.ContainsAny(p, "\\\t\r\n") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == "" && u.User == nil &&
		strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(u.Path, "//")
}
