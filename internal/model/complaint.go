package model

import "time"

// ComplaintStatus represents where a complaint is in its lifecycle.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
)

// ComplaintStatuses lists every status in display order.
var ComplaintStatuses = []ComplaintStatus{
	ComplaintStatusPending,
	ComplaintStatusInProgress,
	ComplaintStatusResolved,
	ComplaintStatusRejected,
}

// Valid reports whether s is a known status.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

// ComplaintPriority represents how urgent a complaint is.
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
	ComplaintPriorityUrgent ComplaintPriority = "urgent"
)

// ComplaintPriorities lists every priority from lowest to highest.
var ComplaintPriorities = []ComplaintPriority{
	ComplaintPriorityLow,
	ComplaintPriorityMedium,
	ComplaintPriorityHigh,
	ComplaintPriorityUrgent,
}

// Valid reports whether p is a known priority.
func (p ComplaintPriority) Valid() bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh, ComplaintPriorityUrgent:
		return true
	}
	return false
}

const (
	// Unassigned is the assignee of a complaint nobody has picked up yet.
	Unassigned = "Unassigned"
	// SystemAuthor authors the entries the tracker writes by itself.
	SystemAuthor = "System"
)

// Complaint is a tracked ticket.
// Updates is ordered newest first and is never empty once the complaint exists.
type Complaint struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Category          string            `json:"category"`
	Department        string            `json:"department"`
	Location          string            `json:"location"`
	Description       string            `json:"description"`
	Priority          ComplaintPriority `json:"priority"`
	Status            ComplaintStatus   `json:"status"`
	CreatedAt         time.Time         `json:"createdAt"`
	SubmittedByUserID string            `json:"submittedByUserId"`
	SubmittedByName   string            `json:"submittedByName"`
	AssignedTo        string            `json:"assignedTo,omitempty"`
	Updates           []ComplaintUpdate `json:"updates"`
}

// ComplaintUpdate is one immutable entry of a complaint's update thread.
type ComplaintUpdate struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Author  string    `json:"author"`
	Message string    `json:"message"`
}
