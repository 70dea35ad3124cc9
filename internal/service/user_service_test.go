package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	users := NewUserService(env.repos)

	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, env.identity.EnsureSeedData(ctx))
	list, err = users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	jane, err := users.GetUser(ctx, SeedJaneID)
	require.NoError(t, err)
	require.NotNil(t, jane)
	assert.Equal(t, "jane@cleartrack.com", jane.Email)

	missing, err := users.GetUser(ctx, "user_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
