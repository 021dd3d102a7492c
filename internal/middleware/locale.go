package middleware

import (
	"context"
	"net/http"

	"github.com/aidar/teamboard/internal/i18n"
)

// LangCookie имя cookie с выбранным языком
const LangCookie = "lang"

// LocaleMiddleware определяет язык запроса: параметр lang, cookie lang,
// заголовок Accept-Language, язык по умолчанию.
func LocaleMiddleware(tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLang(tr, r)
			ctx := context.WithValue(r.Context(), LangKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLang(tr *i18n.Translator, r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); tr.Supported(lang) {
		return lang
	}
	if c, err := r.Cookie(LangCookie); err == nil && tr.Supported(c.Value) {
		return c.Value
	}
	return tr.Match(r.Header.Get("Accept-Language"))
}

// GetLangFromContext извлекает язык из контекста
func GetLangFromContext(ctx context.Context) string {
	lang, ok := ctx.Value(LangKey).(string)
	if !ok {
		return ""
	}
	return lang
}
