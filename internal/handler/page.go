package handler

import (
	"log/slog"
	"net/http"

	"github.com/aidar/teamboard/internal/i18n"
	"github.com/aidar/teamboard/internal/middleware"
	"github.com/aidar/teamboard/internal/view"
)

// Pages объединяет шаблоны и переводы для HTML обработчиков
type Pages struct {
	renderer   *view.Renderer
	translator *i18n.Translator
	logger     *slog.Logger
}

// NewPages создает новый Pages
func NewPages(renderer *view.Renderer, translator *i18n.Translator, logger *slog.Logger) *Pages {
	return &Pages{
		renderer:   renderer,
		translator: translator,
		logger:     logger,
	}
}

// Lang возвращает язык запроса
func (p *Pages) Lang(r *http.Request) string {
	if lang := middleware.GetLangFromContext(r.Context()); lang != "" {
		return lang
	}
	return p.translator.Default()
}

// Localizer возвращает функцию перевода для языка запроса
func (p *Pages) Localizer(r *http.Request) view.Localize {
	lang := p.Lang(r)
	return func(key string, args ...string) string {
		return p.translator.T(lang, key, args...)
	}
}

// Layout собирает общие данные страницы
func (p *Pages) Layout(r *http.Request) view.Layout {
	lang := p.Lang(r)
	return view.Layout{
		Lang:        lang,
		ToggleLang:  p.translator.Toggle(lang),
		T:           p.Localizer(r),
		Session:     middleware.GetSessionFromContext(r.Context()),
		CurrentPath: r.URL.RequestURI(),
	}
}

// Render отрисовывает страницу. Ошибка шаблона превращается в 500.
func (p *Pages) Render(w http.ResponseWriter, r *http.Request, statusCode int, page string, data interface{}) {
	html, err := p.renderer.Render(page, data)
	if err != nil {
		p.logger.ErrorContext(r.Context(), "Failed to render page", "page", page, "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	RespondWithHTML(w, r, statusCode, html)
}
