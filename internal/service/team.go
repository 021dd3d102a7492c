package service

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/repository"
)

// TeamService handles team listings and team drill-downs
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// List returns all teams
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Users returns members of a team
func (s *TeamService) Users(ctx context.Context, teamID int64) ([]domain.User, error) {
	users, err := s.teamRepo.Users(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list users of team %d: %w", teamID, err)
	}
	return users, nil
}

// Groups returns groups that belong to a team
func (s *TeamService) Groups(ctx context.Context, teamID int64) ([]domain.Group, error) {
	groups, err := s.teamRepo.Groups(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list groups of team %d: %w", teamID, err)
	}
	return groups, nil
}

// GroupUsers returns members of a group scoped to a team
func (s *TeamService) GroupUsers(ctx context.Context, teamID, groupID int64) ([]domain.User, error) {
	users, err := s.teamRepo.GroupUsers(ctx, teamID, groupID)
	if err != nil {
		return nil, fmt.Errorf("list users of group %d in team %d: %w", groupID, teamID, err)
	}
	return users, nil
}
