package repository

import (
	"context"

	"github.com/KeerthikaArumugam/clear-case-tracker/internal/codec"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/model"
)

// ComplaintRepository defines persistence operations for the complaint collection.
type ComplaintRepository interface {
	List(ctx context.Context) ([]model.Complaint, error)
	SaveAll(ctx context.Context, complaints []model.Complaint) error
}

type complaintRepository struct {
	codec *codec.Codec
	key   string
}

// NewComplaintRepository builds a repository storing complaints under key.
func NewComplaintRepository(c *codec.Codec, key string) ComplaintRepository {
	return &complaintRepository{codec: c, key: key}
}

func (r *complaintRepository) List(ctx context.Context) ([]model.Complaint, error) {
	complaints, _, err := codec.Read[[]model.Complaint](ctx, r.codec, r.key)
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) SaveAll(ctx context.Context, complaints []model.Complaint) error {
	if complaints == nil {
		complaints = []model.Complaint{}
	}
	return codec.Write(ctx, r.codec, r.key, complaints)
}
