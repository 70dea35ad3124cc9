package service

import (
	"context"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/errors"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// GuardedComplaints is a ComplaintService bound to the user acting on it.
// Admin-only operations fail with errors.ErrForbidden for ordinary users, and
// every operation fails with errors.ErrUnauthenticated when nobody is signed in.
type GuardedComplaints struct {
	inner ComplaintService
	actor *model.User
}

// Authorized wraps complaints with the capability checks for actor.
func Authorized(complaints ComplaintService, actor *model.User) *GuardedComplaints {
	return &GuardedComplaints{inner: complaints, actor: actor}
}

func (g *GuardedComplaints) signedIn() error {
	if g.actor == nil {
		return errors.ErrUnauthenticated
	}
	return nil
}

func (g *GuardedComplaints) admin() error {
	if err := g.signedIn(); err != nil {
		return err
	}
	if !g.actor.IsAdmin() {
		return errors.ErrForbidden
	}
	return nil
}

// canSee reports whether the actor may read c.
func (g *GuardedComplaints) canSee(c *model.Complaint) bool {
	return g.actor.IsAdmin() || c.SubmittedByUserID == g.actor.ID
}

// Create files a complaint on behalf of the actor. Submitter fields in input
// are ignored.
func (g *GuardedComplaints) Create(ctx context.Context, input CreateComplaintInput) (*model.Complaint, error) {
	if err := g.signedIn(); err != nil {
		return nil, err
	}
	input.SubmittedByUserID = g.actor.ID
	input.SubmittedByName = g.actor.Name
	return g.inner.Create(ctx, input)
}

// ListMine lists the actor's own complaints.
func (g *GuardedComplaints) ListMine(ctx context.Context) ([]model.Complaint, error) {
	if err := g.signedIn(); err != nil {
		return nil, err
	}
	return g.inner.ListForUser(ctx, g.actor.ID)
}

func (g *GuardedComplaints) ListForUser(ctx context.Context, userID string) ([]model.Complaint, error) {
	if err := g.signedIn(); err != nil {
		return nil, err
	}
	if !g.actor.IsAdmin() && g.actor.ID != userID {
		return nil, errors.ErrForbidden
	}
	return g.inner.ListForUser(ctx, userID)
}

func (g *GuardedComplaints) ListAll(ctx context.Context) ([]model.Complaint, error) {
	if err := g.admin(); err != nil {
		return nil, err
	}
	return g.inner.ListAll(ctx)
}

// Get returns (nil, nil) for an unknown id and errors.ErrForbidden for
// someone else's complaint.
func (g *GuardedComplaints) Get(ctx context.Context, id string) (*model.Complaint, error) {
	if err := g.signedIn(); err != nil {
		return nil, err
	}
	c, err := g.inner.Get(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	if !g.canSee(c) {
		return nil, errors.ErrForbidden
	}
	return c, nil
}

// AddUpdate comments on a complaint the actor can see. The update is
// authored by the actor.
func (g *GuardedComplaints) AddUpdate(ctx context.Context, id, message string) (*model.Complaint, error) {
	c, err := g.Get(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return g.inner.AddUpdate(ctx, id, UpdateInput{Author: g.actor.Name, Message: message})
}

func (g *GuardedComplaints) UpdateStatus(ctx context.Context, id string, status model.ComplaintStatus) (*model.Complaint, error) {
	if err := g.admin(); err != nil {
		return nil, err
	}
	return g.inner.UpdateStatus(ctx, id, status, g.actor.Name)
}

func (g *GuardedComplaints) Assign(ctx context.Context, id, assignee string) (*model.Complaint, error) {
	if err := g.admin(); err != nil {
		return nil, err
	}
	return g.inner.Assign(ctx, id, assignee, g.actor.Name)
}

func (g *GuardedComplaints) Delete(ctx context.Context, id string) error {
	if err := g.admin(); err != nil {
		return err
	}
	return g.inner.Delete(ctx, id)
}
