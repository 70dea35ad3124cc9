package service

import (
	"time"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// Well-known demo credentials. Their digests must match what HashPassword
// produces, which is why passwords are not salted.
const (
	seedAdminPassword = "Admin123!"
	seedUserPassword  = "User123!"
)

// Ids of the seeded accounts.
const (
	SeedAdminID = "user_admin_1"
	SeedJohnID  = "user_demo_1"
	SeedJaneID  = "user_demo_2"
)

func seedUsers(now time.Time, adminHash, userHash string) []model.User {
	return []model.User{
		{
			ID:           SeedAdminID,
			Name:         "Admin",
			Email:        "admin@cleartrack.com",
			Role:         model.RoleAdmin,
			PasswordHash: adminHash,
			CreatedAt:    now,
		},
		{
			ID:           SeedJohnID,
			Name:         "John Doe",
			Email:        "john@cleartrack.com",
			Phone:        "+1 (555) 000-0000",
			Role:         model.RoleUser,
			PasswordHash: userHash,
			CreatedAt:    now,
		},
		{
			ID:           SeedJaneID,
			Name:         "Jane Smith",
			Email:        "jane@cleartrack.com",
			Phone:        "+1 (555) 111-1111",
			Role:         model.RoleUser,
			PasswordHash: userHash,
			CreatedAt:    now,
		},
	}
}

// seedComplaints returns the demo tickets. Update threads are newest first,
// the same order every later update is prepended in.
func seedComplaints() []model.Complaint {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []model.Complaint{
		{
			ID:                "CMP-2024-001",
			Title:             "Water leakage in Block A bathroom",
			Category:          "Plumbing",
			Department:        "Maintenance",
			Location:          "Block A, Floor 2",
			Description:       "There is a water leakage from the pipe under the sink in the men's bathroom. It is creating a slip hazard.",
			Priority:          model.ComplaintPriorityHigh,
			Status:            model.ComplaintStatusInProgress,
			CreatedAt:         at("2024-01-05T14:15:00Z"),
			SubmittedByUserID: SeedJohnID,
			SubmittedByName:   "John Doe",
			AssignedTo:        "Mike Johnson",
			Updates: []model.ComplaintUpdate{
				{ID: newID("upd"), At: at("2024-01-06T10:30:00Z"), Author: "Mike Johnson", Message: "Issue reviewed. Plumber scheduled for today afternoon."},
				{ID: newID("upd"), At: at("2024-01-05T16:00:00Z"), Author: model.SystemAuthor, Message: "Complaint assigned to Mike Johnson from Maintenance department."},
				{ID: newID("upd"), At: at("2024-01-05T14:15:00Z"), Author: model.SystemAuthor, Message: receivedNote},
			},
		},
		{
			ID:                "CMP-2024-002",
			Title:             "Broken AC unit in Room 302",
			Category:          "Electrical",
			Department:        "Facilities",
			Location:          "Main Building, Room 302",
			Description:       "AC unit is not turning on. Room is getting very hot during lectures.",
			Priority:          model.ComplaintPriorityMedium,
			Status:            model.ComplaintStatusPending,
			CreatedAt:         at("2024-01-04T09:05:00Z"),
			SubmittedByUserID: SeedJaneID,
			SubmittedByName:   "Jane Smith",
			AssignedTo:        model.Unassigned,
			Updates: []model.ComplaintUpdate{
				{ID: newID("upd"), At: at("2024-01-04T09:05:00Z"), Author: model.SystemAuthor, Message: receivedNote},
			},
		},
	}
}
