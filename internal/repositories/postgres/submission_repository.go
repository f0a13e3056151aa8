package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"artistryprime-go/internal/model"
)

const (
	insertSubmission = `INSERT INTO contact_submissions (id, name, email, message, outcome, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	purgeSubmissions = `DELETE FROM contact_submissions WHERE created_at < $1`
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

func (r *SubmissionRepository) Save(ctx context.Context, record model.SubmissionRecord) error {
	_, err := r.pool.Exec(ctx, insertSubmission,
		record.ID, record.Name, record.Email, record.Message, record.Outcome, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, purgeSubmissions, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge submissions: %w", err)
	}
	return tag.RowsAffected(), nil
}
