package repository

import (
	"context"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
)

// CounterRepository stores the complaint-id sequence.
type CounterRepository interface {
	// Current returns the last issued sequence number, 0 when absent or corrupt.
	Current(ctx context.Context) (int, error)
	Set(ctx context.Context, value int) error
}

type counterRepository struct {
	codec *codec.Codec
	key   string
}

// NewCounterRepository builds a repository storing the counter under key.
func NewCounterRepository(c *codec.Codec, key string) CounterRepository {
	return &counterRepository{codec: c, key: key}
}

func (r *counterRepository) Current(ctx context.Context) (int, error) {
	n, ok, err := codec.Read[int](ctx, r.codec, r.key)
	if err != nil {
		return 0, err
	}
	if !ok || n < 0 {
		return 0, nil
	}
	return n, nil
}

func (r *counterRepository) Set(ctx context.Context, value int) error {
	return codec.Write(ctx, r.codec, r.key, value)
}
