package service

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/repository"
)

// GroupService handles group listings
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
	}
}

// List returns all groups
func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// Users returns members of a group
func (s *GroupService) Users(ctx context.Context, groupID int64) ([]domain.User, error) {
	users, err := s.groupRepo.Users(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list users of group %d: %w", groupID, err)
	}
	return users, nil
}
