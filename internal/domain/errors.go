package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Доменные ошибки клиента
var (
	// ErrUserNotFound возвращается когда внешний API не нашел пользователя
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists возвращается при регистрации уже существующего пользователя
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials возвращается при неверном пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation возвращается когда форма заполнена неверно
	ErrValidation = errors.New("validation failed")

	// ErrUpstream возвращается при любой другой ошибке внешнего API
	ErrUpstream = errors.New("upstream request failed")

	// ErrUnauthorized возвращается когда нет активной сессии
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда токен сессии невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// UpstreamError описывает ответ внешнего API с кодом не 2xx
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// Unwrap позволяет сравнивать ошибку через errors.Is с доменными ошибками
func (e *UpstreamError) Unwrap() error {
	return ClassifyUpstreamBody(e.Body)
}

// ClassifyUpstreamBody определяет тип ошибки по тексту ответа внешнего API.
// Внешний API не возвращает кодов ошибок, поэтому сравниваем подстроки.
func ClassifyUpstreamBody(body string) error {
	text := strings.ToLower(body)
	switch {
	case strings.Contains(text, "user not found"):
		return ErrUserNotFound
	case strings.Contains(text, "already exists"):
		return ErrUserExists
	case containsAny(text, credentialFailures):
		return ErrInvalidCredentials
	default:
		return ErrUpstream
	}
}

// credentialFailures это тексты ответа на неверный пароль при входе.
// Прочие сообщения про пароль (например "password too short") к ним не относятся.
var credentialFailures = []string{
	"invalid password",
	"wrong password",
	"incorrect password",
	"invalid credentials",
	"invalid username or password",
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// MessageKey представляет ключ локализованного сообщения об ошибке
type MessageKey string

// Ключи сообщений об ошибках из файлов локализации
const (
	KeyUserNotFound       MessageKey = "error.user_not_found"
	KeyUserExists         MessageKey = "error.user_exists"
	KeyInvalidCredentials MessageKey = "error.invalid_credentials"
	KeyValidation         MessageKey = "error.validation"
	KeyUnauthorized       MessageKey = "error.unauthorized"
	KeyGeneric            MessageKey = "error.generic"
)

// MapErrorToKey преобразует доменные ошибки в ключи сообщений
func MapErrorToKey(err error) MessageKey {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return KeyUserNotFound
	case errors.Is(err, ErrUserExists):
		return KeyUserExists
	case errors.Is(err, ErrInvalidCredentials):
		return KeyInvalidCredentials
	case errors.Is(err, ErrValidation):
		return KeyValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return KeyUnauthorized
	default:
		return KeyGeneric
	}
}
