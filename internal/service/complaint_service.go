package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/cache"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/metrics"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
)

const receivedNote = "Complaint received and registered successfully."

// CreateComplaintInput carries a new complaint.
type CreateComplaintInput struct {
	Title             string
	Category          string
	Department        string
	Location          string
	Description       string
	Priority          model.ComplaintPriority
	SubmittedByUserID string
	SubmittedByName   string
}

// UpdateInput carries a comment for a complaint's update thread. A zero At
// is stamped with the current time.
type UpdateInput struct {
	At      time.Time
	Author  string
	Message string
}

// ComplaintService manages the complaint collection.
//
// Lookups that find nothing return (nil, nil). The service does not check who
// is calling; wrap it with Authorized for that.
type ComplaintService interface {
	Create(ctx context.Context, input CreateComplaintInput) (*model.Complaint, error)
	ListForUser(ctx context.Context, userID string) ([]model.Complaint, error)
	ListAll(ctx context.Context) ([]model.Complaint, error)
	Get(ctx context.Context, id string) (*model.Complaint, error)
	AddUpdate(ctx context.Context, id string, input UpdateInput) (*model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus, actorName string) (*model.Complaint, error)
	Assign(ctx context.Context, id, assignee, actorName string) (*model.Complaint, error)
	Delete(ctx context.Context, id string) error
	// NextComplaintID advances the global counter and formats a ticket id for
	// the current year. The counter never resets, so numbers keep growing
	// across years.
	NextComplaintID(ctx context.Context) (string, error)
}

type complaintService struct {
	repos   *repository.Repositories
	cache   *cache.Client
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewComplaintService creates a new complaint service. Mutations drop the
// cached report summary from c. A nil clock uses time.Now.
func NewComplaintService(repos *repository.Repositories, c *cache.Client, m *metrics.Metrics, logger *zap.Logger, now func() time.Time) ComplaintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &complaintService{
		repos:   repos,
		cache:   c,
		metrics: m,
		logger:  logger,
		now:     clockOrNow(now),
	}
}

func (s *complaintService) Create(ctx context.Context, input CreateComplaintInput) (*model.Complaint, error) {
	if !input.Priority.Valid() {
		return nil, errors.ErrInvalidPriority
	}

	var created *model.Complaint
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		now := s.now().UTC()
		id, err := s.nextID(ctx, now)
		if err != nil {
			return err
		}

		complaint := model.Complaint{
			ID:                id,
			Title:             strings.TrimSpace(input.Title),
			Category:          input.Category,
			Department:        input.Department,
			Location:          strings.TrimSpace(input.Location),
			Description:       strings.TrimSpace(input.Description),
			Priority:          input.Priority,
			Status:            model.ComplaintStatusPending,
			CreatedAt:         now,
			SubmittedByUserID: input.SubmittedByUserID,
			SubmittedByName:   input.SubmittedByName,
			AssignedTo:        model.Unassigned,
			Updates: []model.ComplaintUpdate{
				{ID: newID("upd"), At: now, Author: model.SystemAuthor, Message: receivedNote},
			},
		}

		complaints, err := s.repos.Complaints.List(ctx)
		if err != nil {
			return fmt.Errorf("list complaints: %w", err)
		}
		if err := s.repos.Complaints.SaveAll(ctx, append([]model.Complaint{complaint}, complaints...)); err != nil {
			return fmt.Errorf("save complaints: %w", err)
		}
		created = &complaint
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateReports(ctx)
	s.metrics.ComplaintCreated()
	s.logger.Info("Complaint created",
		zap.String("complaint_id", created.ID),
		zap.String("user_id", created.SubmittedByUserID))
	return created, nil
}

func (s *complaintService) ListForUser(ctx context.Context, userID string) ([]model.Complaint, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]model.Complaint, 0)
	for _, c := range all {
		if c.SubmittedByUserID == userID {
			mine = append(mine, c)
		}
	}
	return mine, nil
}

func (s *complaintService) ListAll(ctx context.Context) ([]model.Complaint, error) {
	var complaints []model.Complaint
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		var err error
		complaints, err = s.repos.Complaints.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	if complaints == nil {
		complaints = []model.Complaint{}
	}
	return complaints, nil
}

func (s *complaintService) Get(ctx context.Context, id string) (*model.Complaint, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (s *complaintService) AddUpdate(ctx context.Context, id string, input UpdateInput) (*model.Complaint, error) {
	at := input.At
	if at.IsZero() {
		at = s.now()
	}
	update := model.ComplaintUpdate{
		ID:      newID("upd"),
		At:      at.UTC(),
		Author:  input.Author,
		Message: input.Message,
	}

	updated, err := s.mutate(ctx, id, func(c *model.Complaint) {
		c.Updates = prepend(c.Updates, update)
	})
	if err != nil || updated == nil {
		return nil, err
	}

	s.metrics.UpdateAdded()
	return updated, nil
}

func (s *complaintService) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus, actorName string) (*model.Complaint, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	updated, err := s.mutate(ctx, id, func(c *model.Complaint) {
		c.Status = status
		c.Updates = prepend(c.Updates, model.ComplaintUpdate{
			ID:      newID("upd"),
			At:      s.now().UTC(),
			Author:  actorName,
			Message: fmt.Sprintf("Status updated to %s.", status),
		})
	})
	if err != nil || updated == nil {
		return nil, err
	}

	s.metrics.StatusChanged(string(status))
	s.logger.Info("Complaint status updated",
		zap.String("complaint_id", id),
		zap.String("status", string(status)),
		zap.String("actor", actorName))
	return updated, nil
}

func (s *complaintService) Assign(ctx context.Context, id, assignee, actorName string) (*model.Complaint, error) {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		assignee = model.Unassigned
	}

	return s.mutate(ctx, id, func(c *model.Complaint) {
		c.AssignedTo = assignee
		c.Updates = prepend(c.Updates, model.ComplaintUpdate{
			ID:      newID("upd"),
			At:      s.now().UTC(),
			Author:  actorName,
			Message: fmt.Sprintf("Complaint assigned to %s.", assignee),
		})
	})
}

func (s *complaintService) Delete(ctx context.Context, id string) error {
	removed := false
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		complaints, err := s.repos.Complaints.List(ctx)
		if err != nil {
			return fmt.Errorf("list complaints: %w", err)
		}
		kept := make([]model.Complaint, 0, len(complaints))
		for _, c := range complaints {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return nil
		}
		if err := s.repos.Complaints.SaveAll(ctx, kept); err != nil {
			return fmt.Errorf("save complaints: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.invalidateReports(ctx)
		s.metrics.ComplaintDeleted()
		s.logger.Info("Complaint deleted", zap.String("complaint_id", id))
	}
	return nil
}

func (s *complaintService) NextComplaintID(ctx context.Context) (string, error) {
	var id string
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.nextID(ctx, s.now())
		return err
	})
	return id, err
}

// nextID must run under the store lock.
func (s *complaintService) nextID(ctx context.Context, now time.Time) (string, error) {
	current, err := s.repos.Counter.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("read counter: %w", err)
	}
	next := current + 1
	if err := s.repos.Counter.Set(ctx, next); err != nil {
		return "", fmt.Errorf("write counter: %w", err)
	}
	return complaintID(now, next), nil
}

// mutate applies fn to the complaint with id and writes the collection back.
// It returns (nil, nil) without writing when id is unknown.
func (s *complaintService) mutate(ctx context.Context, id string, fn func(c *model.Complaint)) (*model.Complaint, error) {
	var updated *model.Complaint
	err := s.repos.WithLock(ctx, func(ctx context.Context) error {
		complaints, err := s.repos.Complaints.List(ctx)
		if err != nil {
			return fmt.Errorf("list complaints: %w", err)
		}
		for i := range complaints {
			if complaints[i].ID != id {
				continue
			}
			fn(&complaints[i])
			if err := s.repos.Complaints.SaveAll(ctx, complaints); err != nil {
				return fmt.Errorf("save complaints: %w", err)
			}
			c := complaints[i]
			updated = &c
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated != nil {
		s.invalidateReports(ctx)
	}
	return updated, nil
}

// invalidateReports retires the current report generation. It must run after
// the mutation is stored.
func (s *complaintService) invalidateReports(ctx context.Context) {
	generation := s.cache.Incr(ctx, reportGenerationKey(s.repos.Keys))
	if generation > 0 {
		_ = s.cache.Delete(ctx, reportCacheKey(s.repos.Keys, generation-1))
	}
}

func prepend(updates []model.ComplaintUpdate, u model.ComplaintUpdate) []model.ComplaintUpdate {
	return append([]model.ComplaintUpdate{u}, updates...)
}
