package repository

import (
	"context"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// SessionRepository stores the single active session.
type SessionRepository interface {
	// Get returns nil when no session is stored.
	Get(ctx context.Context) (*model.Session, error)
	Set(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	codec *codec.Codec
	key   string
}

// NewSessionRepository builds a repository storing the session under key.
func NewSessionRepository(c *codec.Codec, key string) SessionRepository {
	return &sessionRepository{codec: c, key: key}
}

func (r *sessionRepository) Get(ctx context.Context) (*model.Session, error) {
	session, ok, err := codec.Read[model.Session](ctx, r.codec, r.key)
	if err != nil {
		return nil, err
	}
	if !ok || session.UserID == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session model.Session) error {
	return codec.Write(ctx, r.codec, r.key, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.codec.Remove(ctx, r.key)
}
