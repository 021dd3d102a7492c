package service

import (
	"context"
	"fmt"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/repository"
)

// UserService handles user listings
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns all users known to the upstream API
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
