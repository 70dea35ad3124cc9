package codec

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// failingStore fails every call.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("store down") }
func (failingStore) Remove(context.Context, string) error      { return errors.New("store down") }
func (failingStore) Close() error                              { return nil }

func TestReadWrite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New(kv.NewMemoryStore(), zap.NewNop())

	in := []record{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}
	require.NoError(t, Write(ctx, c, "records", in))

	out, ok, err := Read[[]record](ctx, c, "records")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestRead_MissingAndCorruptAreTheSame(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	core, logs := observer.New(zap.WarnLevel)
	c := New(store, zap.New(core))

	missing, ok, err := Read[[]record](ctx, c, "records")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, missing)

	require.NoError(t, store.Set(ctx, "records", "{not json"))
	corrupt, ok, err := Read[[]record](ctx, c, "records")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, corrupt)

	assert.Equal(t, 1, logs.FilterMessage("Ignoring corrupt record").Len())
}

func TestCounter_StoredAsDecimalText(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	c := New(store, nil)

	require.NoError(t, Write(ctx, c, "counter", 2))
	raw, _, err := store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, "2", raw)

	require.NoError(t, store.Set(ctx, "counter", "41"))
	n, ok, err := Read[int](ctx, c, "counter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 41, n)

	require.NoError(t, store.Set(ctx, "counter", "forty-one"))
	_, ok, err = Read[int](ctx, c, "counter")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	c := New(kv.NewMemoryStore(), nil)

	require.NoError(t, Write(ctx, c, "session", record{ID: "u1"}))
	require.NoError(t, c.Remove(ctx, "session"))

	_, ok, err := Read[record](ctx, c, "session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	c := New(failingStore{}, nil)

	_, _, err := Read[[]record](ctx, c, "records")
	assert.ErrorContains(t, err, "store down")
	assert.ErrorContains(t, Write(ctx, c, "records", []record{}), "store down")
	assert.ErrorContains(t, c.Remove(ctx, "records"), "store down")
}

func TestNewKeys(t *testing.T) {
	keys := NewKeys("")
	assert.Equal(t, "cleartrack.users.v1", keys.Users)
	assert.Equal(t, "cleartrack.complaints.v1", keys.Complaints)
	assert.Equal(t, "cleartrack.session.v1", keys.Session)
	assert.Equal(t, "cleartrack.complaints.counter.v1", keys.Counter)

	assert.Equal(t, "staging.users.v1", NewKeys("staging").Users)
}
