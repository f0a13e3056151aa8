package repositories

import (
	"context"
	"time"

	"artistryprime-go/internal/model"
)

type SubmissionRepository interface {
	Save(ctx context.Context, record model.SubmissionRecord) error
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// NopSubmissionRepository retains nothing. It is used when the archive is
// disabled.
type NopSubmissionRepository struct{}

func (NopSubmissionRepository) Save(context.Context, model.SubmissionRecord) error {
	return nil
}

func (NopSubmissionRepository) PurgeBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}
