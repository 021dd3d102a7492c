package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aidar/teamboard/internal/domain"
	"github.com/aidar/teamboard/internal/repository"
)

type userRepoMock struct{ mock.Mock }

var _ repository.UserRepository = (*userRepoMock)(nil)

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type teamRepoMock struct{ mock.Mock }

var _ repository.TeamRepository = (*teamRepoMock)(nil)

func (m *teamRepoMock) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *teamRepoMock) Users(ctx context.Context, teamID int64) ([]domain.User, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *teamRepoMock) Groups(ctx context.Context, teamID int64) ([]domain.Group, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *teamRepoMock) GroupUsers(ctx context.Context, teamID, groupID int64) ([]domain.User, error) {
	args := m.Called(ctx, teamID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type groupRepoMock struct{ mock.Mock }

var _ repository.GroupRepository = (*groupRepoMock)(nil)

func (m *groupRepoMock) List(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *groupRepoMock) Users(ctx context.Context, groupID int64) ([]domain.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type authRepoMock struct{ mock.Mock }

var _ repository.AuthRepository = (*authRepoMock)(nil)

func (m *authRepoMock) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *authRepoMock) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}
