package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

var (
	testAdmin = &model.User{ID: SeedAdminID, Name: "Admin", Role: model.RoleAdmin}
	testJohn  = &model.User{ID: SeedJohnID, Name: "John Doe", Role: model.RoleUser}
	testJane  = &model.User{ID: SeedJaneID, Name: "Jane Smith", Role: model.RoleUser}
)

func newSeededGuardEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(context.Background()))
	return env
}

func TestAuthorized_AdminOnlyOperations(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	tests := []struct {
		name    string
		actor   *model.User
		wantErr error
	}{
		{"anonymous", nil, apperrors.ErrUnauthenticated},
		{"ordinary user", testJohn, apperrors.ErrForbidden},
		{"admin", testAdmin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Authorized(env.complaints, tt.actor)

			_, err := g.ListAll(ctx)
			assertGuardErr(t, tt.wantErr, err)
			_, err = g.UpdateStatus(ctx, "CMP-2024-002", model.ComplaintStatusInProgress)
			assertGuardErr(t, tt.wantErr, err)
			_, err = g.Assign(ctx, "CMP-2024-002", "Sara Lee")
			assertGuardErr(t, tt.wantErr, err)
		})
	}
}

func assertGuardErr(t *testing.T, want, got error) {
	t.Helper()
	if want == nil {
		assert.NoError(t, got)
		return
	}
	assert.ErrorIs(t, got, want)
}

func TestAuthorized_StatusChangeAuthoredByActor(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	c, err := Authorized(env.complaints, testAdmin).UpdateStatus(ctx, "CMP-2024-001", model.ComplaintStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, "Admin", c.Updates[0].Author)
}

func TestAuthorized_Delete(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	assert.ErrorIs(t, Authorized(env.complaints, testJohn).Delete(ctx, "CMP-2024-001"), apperrors.ErrForbidden)
	got, err := env.complaints.Get(ctx, "CMP-2024-001")
	require.NoError(t, err)
	assert.NotNil(t, got)

	require.NoError(t, Authorized(env.complaints, testAdmin).Delete(ctx, "CMP-2024-001"))
	got, err = env.complaints.Get(ctx, "CMP-2024-001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAuthorized_ListForUser(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	mine, err := Authorized(env.complaints, testJohn).ListForUser(ctx, SeedJohnID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = Authorized(env.complaints, testJohn).ListForUser(ctx, SeedJaneID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	janes, err := Authorized(env.complaints, testAdmin).ListForUser(ctx, SeedJaneID)
	require.NoError(t, err)
	assert.Len(t, janes, 1)

	mine, err = Authorized(env.complaints, testJane).ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "CMP-2024-002", mine[0].ID)
}

func TestAuthorized_GetAndAddUpdate(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	t.Run("owner", func(t *testing.T) {
		g := Authorized(env.complaints, testJohn)
		c, err := g.Get(ctx, "CMP-2024-001")
		require.NoError(t, err)
		require.NotNil(t, c)

		c, err = g.AddUpdate(ctx, "CMP-2024-001", "Any news?")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", c.Updates[0].Author)
		assert.Equal(t, "Any news?", c.Updates[0].Message)
	})

	t.Run("other user", func(t *testing.T) {
		g := Authorized(env.complaints, testJane)
		_, err := g.Get(ctx, "CMP-2024-001")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		_, err = g.AddUpdate(ctx, "CMP-2024-001", "me too")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		c, err := Authorized(env.complaints, testAdmin).Get(ctx, "CMP-2024-001")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("missing stays absent", func(t *testing.T) {
		c, err := Authorized(env.complaints, testJane).Get(ctx, "CMP-2030-404")
		require.NoError(t, err)
		assert.Nil(t, c)
		c, err = Authorized(env.complaints, testJane).AddUpdate(ctx, "CMP-2030-404", "hello")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := Authorized(env.complaints, nil).Get(ctx, "CMP-2024-001")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestAuthorized_CreateUsesActor(t *testing.T) {
	ctx := context.Background()
	env := newSeededGuardEnv(t)

	input := newComplaintInput("Spoofed")
	input.SubmittedByUserID = SeedJaneID
	input.SubmittedByName = "Jane Smith"

	c, err := Authorized(env.complaints, testJohn).Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, SeedJohnID, c.SubmittedByUserID)
	assert.Equal(t, "John Doe", c.SubmittedByName)

	_, err = Authorized(env.complaints, nil).Create(ctx, input)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
