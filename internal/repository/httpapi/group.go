package httpapi

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
)

// GroupRepository реализует repository.GroupRepository через внешний API
type GroupRepository struct {
	client *Client
}

// NewGroupRepository создает новый GroupRepository
func NewGroupRepository(client *Client) *GroupRepository {
	return &GroupRepository{client: client}
}

// List получает GET /api/groups
func (r *GroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	groups := []domain.Group{}
	if err := r.client.getJSON(ctx, "/api/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Users получает GET /api/groups/{id}/users
func (r *GroupRepository) Users(ctx context.Context, groupID int64) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.client.getJSON(ctx, fmt.Sprintf("/api/groups/%d/users", groupID), &users); err != nil {
		return nil, err
	}
	return users, nil
}
