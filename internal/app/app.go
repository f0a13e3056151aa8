package app

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"artistryprime-go/internal/config"
	"artistryprime-go/internal/model"
	"artistryprime-go/internal/repositories"
	"artistryprime-go/internal/scheduler"
	"artistryprime-go/internal/services/contact"
)

type App struct {
	Config         *config.Config
	Site           model.Site
	Pool           *pgxpool.Pool
	Archive        repositories.SubmissionRepository
	Mailer         contact.Mailer
	ContactService *contact.Service
	Scheduler      *scheduler.Scheduler
	Server         *http.Server

	ownsPool bool
}

func (a *App) Start() error {
	if a.Scheduler != nil {
		if err := a.Scheduler.Start(); err != nil {
			return err
		}
	}

	go func() {
		log.Printf("HTTP server listening on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	return nil
}

// Shutdown stops the scheduler and drains the server concurrently, then
// releases the pool if the app opened it.
func (a *App) Shutdown(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)
	if a.Scheduler != nil {
		group.Go(func() error {
			a.Scheduler.Stop()
			return nil
		})
	}
	group.Go(func() error {
		return a.Server.Shutdown(gctx)
	})

	err := group.Wait()
	if a.ownsPool && a.Pool != nil {
		a.Pool.Close()
	}
	return err
}
