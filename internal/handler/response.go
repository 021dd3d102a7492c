package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondWithHTML отправляет HTML ответ с указанным статус кодом
func RespondWithHTML(w http.ResponseWriter, r *http.Request, statusCode int, html string) {
	render.Status(r, statusCode)
	render.HTML(w, r, html)
}
