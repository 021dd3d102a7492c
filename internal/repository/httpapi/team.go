package httpapi

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
)

// TeamRepository реализует repository.TeamRepository через внешний API
type TeamRepository struct {
	client *Client
}

// NewTeamRepository создает новый TeamRepository
func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

// List получает GET /api/teams
func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	teams := []domain.Team{}
	if err := r.client.getJSON(ctx, "/api/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Users получает GET /api/teams/{id}/users
func (r *TeamRepository) Users(ctx context.Context, teamID int64) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.client.getJSON(ctx, fmt.Sprintf("/api/teams/%d/users", teamID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Groups получает GET /api/teams/{id}/groups
func (r *TeamRepository) Groups(ctx context.Context, teamID int64) ([]domain.Group, error) {
	groups := []domain.Group{}
	if err := r.client.getJSON(ctx, fmt.Sprintf("/api/teams/%d/groups", teamID), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GroupUsers получает GET /api/teams/{id}/groups/{id}/users
func (r *TeamRepository) GroupUsers(ctx context.Context, teamID, groupID int64) ([]domain.User, error) {
	users := []domain.User{}
	path := fmt.Sprintf("/api/teams/%d/groups/%d/users", teamID, groupID)
	if err := r.client.getJSON(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
