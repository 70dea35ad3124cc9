package service

import (
	"context"
	"fmt"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
)

// UserService exposes read access to the user registry for administrators.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	// GetUser returns nil when no user has id.
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repos *repository.Repositories
}

// NewUserService builds a UserService over the shared repositories.
func NewUserService(repos *repository.Repositories) UserService {
	return &userService{repos: repos}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.repos.Users.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}
