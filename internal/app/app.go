package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"StaticJournal/internal/config"
	"StaticJournal/internal/domain"
	"StaticJournal/internal/infrastructure/parser"
	"StaticJournal/internal/infrastructure/storage"
	"StaticJournal/internal/logging"
	"StaticJournal/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg        config.Config
	store      *storage.FileStore
	archive    *usecase.Archive
	publisher  *usecase.Publisher
	scaffolder *usecase.Scaffolder
}

// New builds the journal use cases over the configured project root.
// A nil clock means time.Now.
func New(cfg config.Config, baseLogger *slog.Logger, now func() time.Time) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, nil)
	}

	store, err := storage.NewFileStore(cfg.Root, cfg.Index, cfg.EntriesDir)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	baseLogger.Debug("project resolved", "root", store.Root(), "index", store.IndexPath())

	entryParser := parser.NewEntryParser()
	archive := usecase.NewArchive(store, entryParser, baseLogger.With("component", "archive"))

	publisher := usecase.NewPublisher(usecase.PublisherDeps{
		Index:   store,
		Entries: store,
		Parser:  entryParser,
		Archive: archive,
		Logger:  baseLogger.With("component", "publisher"),
	})
	scaffolder := usecase.NewScaffolder(store, now, cfg.Location(), baseLogger.With("component", "scaffolder"))

	return &Application{
		cfg:        cfg,
		store:      store,
		archive:    archive,
		publisher:  publisher,
		scaffolder: scaffolder,
	}, nil
}

// NewEntry scaffolds an entry for title dated today.
func (a *Application) NewEntry(ctx context.Context, title string) (domain.EntryFile, error) {
	return a.scaffolder.Create(ctx, title)
}

// Publish makes entryRel the latest entry on the home page.
func (a *Application) Publish(ctx context.Context, entryRel string, dryRun bool) (usecase.PublishResult, error) {
	return a.publisher.Publish(ctx, entryRel, usecase.PublishOptions{DryRun: dryRun})
}

// Archive lists well-formed entries, newest first.
func (a *Application) Archive(ctx context.Context) ([]domain.Entry, error) {
	return a.archive.Entries(ctx)
}
