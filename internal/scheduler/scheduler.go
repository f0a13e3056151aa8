package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"artistryprime-go/internal/repositories"
)

// Scheduler periodically removes archived submissions older than the
// retention window.
type Scheduler struct {
	cron      *cron.Cron
	repo      repositories.SubmissionRepository
	spec      string
	retention time.Duration
	now       func() time.Time
}

func New(spec string, retention time.Duration, repo repositories.SubmissionRepository) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		repo:      repo,
		spec:      spec,
		retention: retention,
		now:       time.Now,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("[archive] scheduled purge triggered")
		s.Purge(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Purge deletes every record created before now minus the retention window.
func (s *Scheduler) Purge(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.retention)
	removed, err := s.repo.PurgeBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[archive] purge failed: %v", err)
		return 0
	}
	log.Printf("[archive] purged %d submissions older than %s", removed, cutoff.Format(time.RFC3339))
	return removed
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
