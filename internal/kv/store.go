// Package kv provides the string key-value stores that hold the tracker's records.
// Every backend offers the same contract: a missing key is reported through the
// ok flag, never as an error; errors are reserved for an unreachable backend.
package kv

import "context"

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
