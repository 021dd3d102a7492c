package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц
const (
	PageDashboard = "dashboard"
	PageLogin     = "login"
	PageRegister  = "register"
)

// Renderer хранит разобранные шаблоны страниц. Безопасен для конкурентного использования.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает встроенные шаблоны
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{PageDashboard, PageLogin, PageRegister} {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render выполняет шаблон страницы и возвращает HTML
func (r *Renderer) Render(page string, data interface{}) (string, error) {
	tmpl, ok := r.pages[page]
	if !ok {
		return "", fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", page, err)
	}
	return buf.String(), nil
}
