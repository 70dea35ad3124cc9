package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/cache"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
)

// MockHasher is a mock implementation of auth.Hasher.
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) HashPassword(ctx context.Context, plaintext string) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type testEnv struct {
	store      kv.Store
	repos      *repository.Repositories
	identity   IdentityService
	complaints ComplaintService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithCache(t, nil)
}

func newTestEnvWithCache(t *testing.T, c *cache.Client) *testEnv {
	return newTestEnvOver(t, kv.NewMemoryStore(), c)
}

func newTestEnvOver(t *testing.T, store kv.Store, c *cache.Client) *testEnv {
	t.Helper()
	repos := repository.New(store, "", zap.NewNop())
	return &testEnv{
		store:      store,
		repos:      repos,
		identity:   NewIdentityService(repos, auth.SHA256Hasher{}, nil, zap.NewNop(), fixedClock),
		complaints: NewComplaintService(repos, c, nil, zap.NewNop(), fixedClock),
	}
}

// countingStore records how often each key is written.
type countingStore struct {
	kv.Store
	sets map[string]int
}

func newCountingStore() *countingStore {
	return &countingStore{Store: kv.NewMemoryStore(), sets: make(map[string]int)}
}

func (s *countingStore) Set(ctx context.Context, key, value string) error {
	s.sets[key]++
	return s.Store.Set(ctx, key, value)
}
