package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

func TestIdentityService_EnsureSeedData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.identity.EnsureSeedData(ctx))
	firstUsers, _, err := env.store.Get(ctx, env.repos.Keys.Users)
	require.NoError(t, err)
	firstComplaints, _, err := env.store.Get(ctx, env.repos.Keys.Complaints)
	require.NoError(t, err)

	require.NoError(t, env.identity.EnsureSeedData(ctx))
	secondUsers, _, err := env.store.Get(ctx, env.repos.Keys.Users)
	require.NoError(t, err)
	secondComplaints, _, err := env.store.Get(ctx, env.repos.Keys.Complaints)
	require.NoError(t, err)

	assert.Equal(t, firstUsers, secondUsers)
	assert.Equal(t, firstComplaints, secondComplaints)

	users, err := env.repos.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
	assert.Equal(t, model.RoleUser, users[1].Role)

	counter, err := env.repos.Counter.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counter)

	complaints, err := env.repos.Complaints.List(ctx)
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	first := complaints[0]
	assert.Equal(t, "CMP-2024-001", first.ID)
	assert.Equal(t, SeedJohnID, first.SubmittedByUserID)
	require.Len(t, first.Updates, 3)
	assert.Equal(t, "Mike Johnson", first.Updates[0].Author)
	assert.Equal(t, receivedNote, first.Updates[2].Message)
	assert.Equal(t, model.Unassigned, complaints[1].AssignedTo)
}

func TestIdentityService_EnsureSeedData_SkipsNonEmptyRegistry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.identity.Signup(ctx, SignupInput{Name: "Solo", Email: "solo@ex.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	users, err := env.repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	_, ok, err := env.store.Get(ctx, env.repos.Keys.Complaints)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentityService_SeededCredentials(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	tests := []struct {
		email    string
		password string
		wantID   string
	}{
		{"admin@cleartrack.com", "Admin123!", SeedAdminID},
		{"  JOHN@cleartrack.com ", "User123!", SeedJohnID},
		{"jane@cleartrack.com", "User123!", SeedJaneID},
	}
	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			user, err := env.identity.Login(ctx, tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestIdentityService_HashPassword(t *testing.T) {
	env := newTestEnv(t)
	hash, err := env.identity.HashPassword(context.Background(), "Admin123!")
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{64}$", hash)
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	first, err := env.identity.Login(ctx, "john@cleartrack.com", "User123!")
	require.NoError(t, err)
	second, err := env.identity.Login(ctx, "john@cleartrack.com", "User123!")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	current, err := env.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, current)
}

func TestIdentityService_Login_GenericFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	_, unknownErr := env.identity.Login(ctx, "nobody@cleartrack.com", "User123!")
	_, wrongErr := env.identity.Login(ctx, "john@cleartrack.com", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, "Invalid email or password.", wrongErr.Error())
	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)

	current, err := env.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "failed logins must not create a session")
}

func TestIdentityService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   SignupInput
		wantErr *apperrors.Failure
	}{
		{"blank name first", SignupInput{Name: "  ", Email: "", Password: ""}, apperrors.ErrNameRequired},
		{"blank email", SignupInput{Name: "Ann", Email: "   ", Password: ""}, apperrors.ErrEmailRequired},
		{"short password", SignupInput{Name: "Ann", Email: "ann@ex.com", Password: "12345"}, apperrors.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.identity.Signup(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr.Message, err.Error())
		})
	}
}

func TestIdentityService_Signup_EmailUniqueness(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.identity.Signup(ctx, SignupInput{Name: "Ann", Email: "ann@ex.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = env.identity.Signup(ctx, SignupInput{Name: "Ann Again", Email: "  ANN@Ex.com ", Password: "secret2"})
	require.Error(t, err)
	assert.Equal(t, "An account with this email already exists.", err.Error())
}

func TestIdentityService_Signup_Scenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	jane, err := env.identity.Signup(ctx, SignupInput{Name: " Jane Roe ", Email: "jane@ex.com", Phone: "  ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, jane.Role)
	assert.Equal(t, "Jane Roe", jane.Name)
	assert.Empty(t, jane.Phone)
	assert.Contains(t, jane.ID, "user_")
	assert.Equal(t, testNow, jane.CreatedAt)

	current, err := env.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, jane, current)

	mine, err := env.complaints.ListForUser(ctx, jane.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	users, err := env.repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, users[0].ID, "new users are prepended")
}

func TestIdentityService_LogoutAndDanglingSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.identity.EnsureSeedData(ctx))

	_, err := env.identity.Login(ctx, "jane@cleartrack.com", "User123!")
	require.NoError(t, err)

	require.NoError(t, env.identity.Logout(ctx))
	require.NoError(t, env.identity.Logout(ctx))
	current, err := env.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, env.repos.Session.Set(ctx, model.Session{UserID: "user_gone"}))
	current, err = env.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestIdentityService_HasherFailurePropagates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	hasher := new(MockHasher)
	hasher.On("HashPassword", mock.Anything, "secret1").Return("", errors.New("digest unavailable"))
	identity := NewIdentityService(env.repos, hasher, nil, zap.NewNop(), fixedClock)

	_, err := identity.Signup(ctx, SignupInput{Name: "Ann", Email: "ann@ex.com", Password: "secret1"})
	require.Error(t, err)
	_, isFailure := apperrors.AsFailure(err)
	assert.False(t, isFailure, "environment failures are not domain failures")
	assert.ErrorContains(t, err, "digest unavailable")

	users, err := env.repos.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	hasher.AssertExpectations(t)
}
