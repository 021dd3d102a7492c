package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/teamboard/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// StatusForError возвращает HTTP статус для доменной ошибки
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleError преобразует доменные ошибки в JSON ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	switch status := StatusForError(err); status {
	case http.StatusBadRequest:
		RespondWithError(w, r, status, "BAD_REQUEST", "invalid request")
	case http.StatusUnauthorized:
		RespondWithError(w, r, status, "UNAUTHORIZED", "unauthorized")
	case http.StatusNotFound:
		RespondWithError(w, r, status, "NOT_FOUND", "resource not found")
	case http.StatusConflict:
		RespondWithError(w, r, status, "CONFLICT", "resource already exists")
	case http.StatusBadGateway:
		RespondWithError(w, r, status, "UPSTREAM_ERROR", "upstream request failed")
	default:
		RespondWithError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
