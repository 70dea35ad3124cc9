// Package codec reads and writes typed records over a kv.Store.
//
// Missing keys and malformed values are both reported as "no data". Only
// failures of the underlying store are returned as errors.
package codec

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
)

// Codec serializes records as JSON text.
type Codec struct {
	store  kv.Store
	logger *zap.Logger
}

// New creates a codec over store. A nil logger is replaced with a no-op one.
func New(store kv.Store, logger *zap.Logger) *Codec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{store: store, logger: logger}
}

// Read decodes the value under key into a T. ok is false when the key is
// absent or its value cannot be decoded.
func Read[T any](ctx context.Context, c *Codec, key string) (T, bool, error) {
	var zero T

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return zero, false, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		c.logger.Warn("Ignoring corrupt record",
			zap.String("key", key),
			zap.Error(err))
		return zero, false, nil
	}
	return value, true, nil
}

// Write replaces the value under key with the encoding of value.
func Write[T any](ctx context.Context, c *Codec, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key.
func (c *Codec) Remove(ctx context.Context, key string) error {
	if err := c.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
