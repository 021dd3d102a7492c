package httpapi

import (
	"context"

	"github.com/aidar/teamboard/internal/domain"
)

// UserRepository реализует repository.UserRepository через внешний API
type UserRepository struct {
	client *Client
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// List получает GET /api/users
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.client.getJSON(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}
