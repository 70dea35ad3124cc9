package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

func filterFixture() []model.Complaint {
	return []model.Complaint{
		{ID: "CMP-2024-003", Title: "Wi-Fi down", Department: "IT Department", Status: model.ComplaintStatusPending, Priority: model.ComplaintPriorityUrgent, SubmittedByName: "Jane Smith"},
		{ID: "CMP-2024-002", Title: "Broken AC unit", Department: "Facilities", Status: model.ComplaintStatusPending, Priority: model.ComplaintPriorityMedium, SubmittedByName: "Jane Smith"},
		{ID: "CMP-2024-001", Title: "Water leakage", Department: "Maintenance", Status: model.ComplaintStatusInProgress, Priority: model.ComplaintPriorityHigh, SubmittedByName: "John Doe"},
	}
}

func ids(complaints []model.Complaint) []string {
	out := make([]string, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterComplaints(t *testing.T) {
	tests := []struct {
		name   string
		filter ComplaintFilter
		want   []string
	}{
		{"no filter", ComplaintFilter{}, []string{"CMP-2024-003", "CMP-2024-002", "CMP-2024-001"}},
		{"all keyword", ComplaintFilter{Status: "all", Priority: "ALL", Department: "all"}, []string{"CMP-2024-003", "CMP-2024-002", "CMP-2024-001"}},
		{"title query", ComplaintFilter{Query: "LEAK"}, []string{"CMP-2024-001"}},
		{"id query", ComplaintFilter{Query: "2024-002"}, []string{"CMP-2024-002"}},
		{"submitter query", ComplaintFilter{Query: "jane"}, []string{"CMP-2024-003", "CMP-2024-002"}},
		{"status", ComplaintFilter{Status: "pending"}, []string{"CMP-2024-003", "CMP-2024-002"}},
		{"priority", ComplaintFilter{Priority: "high"}, []string{"CMP-2024-001"}},
		{"department case-insensitive", ComplaintFilter{Department: "facilities"}, []string{"CMP-2024-002"}},
		{"combined", ComplaintFilter{Query: "jane", Status: "pending", Department: "IT Department"}, []string{"CMP-2024-003"}},
		{"nothing matches", ComplaintFilter{Status: "resolved"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterComplaints(filterFixture(), tt.filter)))
		})
	}
}

func TestDepartments(t *testing.T) {
	complaints := append(filterFixture(), model.Complaint{ID: "x", Department: "Facilities"}, model.Complaint{ID: "y", Department: " "})
	assert.Equal(t, []string{"Facilities", "IT Department", "Maintenance"}, Departments(complaints))
	assert.Empty(t, Departments(nil))
}
