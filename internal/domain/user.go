package domain

// User представляет пользователя, полученного из внешнего API
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	TeamID   *int64 `json:"team_id"`
	GroupID  *int64 `json:"group_id"`
	// Password приходит от сервера в одной из версий API. Не отображается и никуда не передается.
	Password string `json:"password,omitempty"`
}

// Session представляет вошедшего в систему пользователя (хранится в cookie)
type Session struct {
	UserID   int64
	Username string
	Token    string // Токен внешнего API, если он его выдал
}

// Credentials содержит данные формы входа или регистрации
type Credentials struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}
