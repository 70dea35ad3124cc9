package repository

import (
	"context"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// UserRepository defines persistence operations for the user registry.
type UserRepository interface {
	// List returns every user, newest first. A missing or corrupt registry is empty.
	List(ctx context.Context) ([]model.User, error)
	// SaveAll replaces the whole registry.
	SaveAll(ctx context.Context, users []model.User) error
}

type userRepository struct {
	codec *codec.Codec
	key   string
}

// NewUserRepository builds a repository storing users under key.
func NewUserRepository(c *codec.Codec, key string) UserRepository {
	return &userRepository{codec: c, key: key}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users, _, err := codec.Read[[]model.User](ctx, r.codec, r.key)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SaveAll(ctx context.Context, users []model.User) error {
	if users == nil {
		users = []model.User{}
	}
	return codec.Write(ctx, r.codec, r.key, users)
}
