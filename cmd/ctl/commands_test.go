package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	apperrors "github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

func newTestOpener(t *testing.T) opener {
	t.Helper()
	a := newApp(kv.NewMemoryStore(), nil, "", zap.NewNop())
	return func() (*app, error) { return a, nil }
}

func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedAndListComplaints(t *testing.T) {
	open := newTestOpener(t)

	out, err := run(t, open, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed data is in place.")

	out, err = run(t, open, "complaints", "list")
	require.NoError(t, err)
	var all []model.Complaint
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "CMP-2024-001", all[0].ID)

	out, err = run(t, open, "complaints", "list", "--user", service.SeedJaneID)
	require.NoError(t, err)
	var mine []model.Complaint
	require.NoError(t, json.Unmarshal([]byte(out), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "CMP-2024-002", mine[0].ID)

	out, err = run(t, open, "complaints", "list", "--department", "maintenance")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all, 1)
	assert.Equal(t, "CMP-2024-001", all[0].ID)
}

func TestTriageCommands(t *testing.T) {
	open := newTestOpener(t)
	_, err := run(t, open, "seed")
	require.NoError(t, err)

	out, err := run(t, open, "complaints", "status", "CMP-2024-002", "resolved")
	require.NoError(t, err)
	var c model.Complaint
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, model.ComplaintStatusResolved, c.Status)
	assert.Equal(t, "Status updated to resolved.", c.Updates[0].Message)

	out, err = run(t, open, "complaints", "assign", "CMP-2024-002", "Dana")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "Dana", c.AssignedTo)

	out, err = run(t, open, "complaints", "delete", "CMP-2024-002")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted CMP-2024-002.")

	_, err = run(t, open, "complaints", "status", "CMP-2024-002", "resolved")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestTriageRequiresAdmin(t *testing.T) {
	open := newTestOpener(t)
	_, err := run(t, open, "seed")
	require.NoError(t, err)

	_, err = run(t, open, "complaints", "delete", "CMP-2024-001", "--as", service.SeedJohnID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = run(t, open, "complaints", "delete", "CMP-2024-001", "--as", "nobody")
	assert.ErrorContains(t, err, `no user with id "nobody"`)

	_, err = run(t, open, "complaints", "status", "CMP-2024-001", "closed")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestUsersListHidesDigests(t *testing.T) {
	open := newTestOpener(t)
	_, err := run(t, open, "seed")
	require.NoError(t, err)

	out, err := run(t, open, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "admin@cleartrack.com")
	assert.NotContains(t, out, "passwordHash")
}

func TestReportAsYAML(t *testing.T) {
	open := newTestOpener(t)
	_, err := run(t, open, "seed")
	require.NoError(t, err)

	out, err := run(t, open, "report", "--format", "yaml")
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 2, parsed["total"])
	assert.Contains(t, parsed, "byDepartment")
}

func TestUnsupportedFormat(t *testing.T) {
	open := newTestOpener(t)
	_, err := run(t, open, "users", "list", "-f", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}
