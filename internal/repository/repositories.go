package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
)

// Repositories bundles the four record repositories over one store.
type Repositories struct {
	Users      UserRepository
	Complaints ComplaintRepository
	Session    SessionRepository
	Counter    CounterRepository
	Keys       codec.Keys

	mu sync.Mutex
}

// New wires the repositories over store, keyed by namespace.
func New(store kv.Store, namespace string, logger *zap.Logger) *Repositories {
	c := codec.New(store, logger)
	keys := codec.NewKeys(namespace)
	return &Repositories{
		Users:      NewUserRepository(c, keys.Users),
		Complaints: NewComplaintRepository(c, keys.Complaints),
		Session:    NewSessionRepository(c, keys.Session),
		Counter:    NewCounterRepository(c, keys.Counter),
		Keys:       keys,
	}
}

// WithLock runs fn while holding the process-wide store lock, so a
// read-modify-write cycle is never interleaved with another one in this
// process. Writers in other processes are not excluded; the last write wins.
func (r *Repositories) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx)
}
