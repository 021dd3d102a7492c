package repository

import (
	"context"

	"github.com/aidar/teamboard/internal/domain"
)

// UserRepository определяет методы получения пользователей
type UserRepository interface {
	// List возвращает всех пользователей
	List(ctx context.Context) ([]domain.User, error)
}

// TeamRepository определяет методы получения команд и их участников
type TeamRepository interface {
	// List возвращает все команды
	List(ctx context.Context) ([]domain.Team, error)

	// Users возвращает участников команды
	Users(ctx context.Context, teamID int64) ([]domain.User, error)

	// Groups возвращает группы команды
	Groups(ctx context.Context, teamID int64) ([]domain.Group, error)

	// GroupUsers возвращает участников группы внутри команды
	GroupUsers(ctx context.Context, teamID, groupID int64) ([]domain.User, error)
}

// GroupRepository определяет методы получения групп и их участников
type GroupRepository interface {
	// List возвращает все группы
	List(ctx context.Context) ([]domain.Group, error)

	// Users возвращает участников группы
	Users(ctx context.Context, groupID int64) ([]domain.User, error)
}

// AuthRepository определяет методы входа и регистрации во внешнем API
type AuthRepository interface {
	// Login проверяет учетные данные и возвращает пользователя и токен (если API его выдает)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)

	// Register создает пользователя и возвращает его и токен (если API его выдает)
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
}
