package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"artistryprime-go/internal/config"
	"artistryprime-go/internal/content"
	"artistryprime-go/internal/db"
	"artistryprime-go/internal/emailjs"
	"artistryprime-go/internal/httpapi"
	"artistryprime-go/internal/model"
	"artistryprime-go/internal/repositories"
	"artistryprime-go/internal/repositories/postgres"
	"artistryprime-go/internal/scheduler"
	"artistryprime-go/internal/services/contact"
	"artistryprime-go/internal/web"
)

type Builder struct {
	cfg          *config.Config
	basePath     string
	ensureSchema bool

	site    *model.Site
	pool    *pgxpool.Pool
	archive repositories.SubmissionRepository
	mailer  contact.Mailer
	client  *http.Client

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{
		cfg:          cfg,
		ensureSchema: true,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithBasePath(basePath string) BuilderOption {
	return func(b *Builder) {
		b.basePath = basePath
	}
}

func WithEnsureSchema(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.ensureSchema = enabled
	}
}

func WithSite(site model.Site) BuilderOption {
	return func(b *Builder) {
		b.site = &site
	}
}

func WithDBPool(pool *pgxpool.Pool) BuilderOption {
	return func(b *Builder) {
		b.pool = pool
	}
}

func WithArchive(archive repositories.SubmissionRepository) BuilderOption {
	return func(b *Builder) {
		b.archive = archive
	}
}

func WithMailer(mailer contact.Mailer) BuilderOption {
	return func(b *Builder) {
		b.mailer = mailer
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}

	app := &App{Config: b.cfg}

	if b.site == nil {
		site := content.Default()
		b.site = &site
	}
	app.Site = *b.site

	if err := b.buildArchive(ctx, app); err != nil {
		return nil, err
	}

	if b.client == nil {
		b.client = &http.Client{Timeout: 15 * time.Second}
	}

	if b.mailer == nil {
		b.mailer = emailjs.NewSender(
			b.cfg.EmailJSCredentials(),
			emailjs.WithEndpoint(b.cfg.EmailJSEndpoint),
			emailjs.WithHTTPClient(b.client),
		)
	}
	app.Mailer = b.mailer

	app.ContactService = contact.NewService(app.Mailer, app.Archive, b.cfg.ContactToEmail)

	if b.scheduler == nil && b.cfg.ArchiveEnabled {
		b.scheduler = scheduler.New(b.cfg.PurgeCronSpec, b.cfg.ArchiveRetention, app.Archive)
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		renderer, err := web.NewRenderer(b.cfg.PrettyHTML)
		if err != nil {
			return nil, err
		}
		handler := httpapi.NewHandler(app.Site, renderer, app.ContactService)
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}

func (b *Builder) buildArchive(ctx context.Context, app *App) error {
	if b.archive != nil {
		app.Archive = b.archive
		return nil
	}
	if !b.cfg.ArchiveEnabled {
		app.Archive = repositories.NopSubmissionRepository{}
		return nil
	}

	if b.pool == nil {
		pool, err := db.NewPool(ctx, b.cfg.PostgresDSN())
		if err != nil {
			return err
		}
		b.pool = pool
		app.ownsPool = true
	}
	app.Pool = b.pool

	if b.ensureSchema {
		basePath := b.basePath
		if basePath == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			basePath = wd
		}
		path, err := filepath.Abs(basePath)
		if err != nil {
			return err
		}
		if err := db.EnsureSchema(ctx, b.pool, path); err != nil {
			return err
		}
	}

	app.Archive = postgres.NewSubmissionRepository(b.pool)
	return nil
}
