package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"StaticJournal/internal/domain"
	"StaticJournal/internal/ports"
	"StaticJournal/internal/scaffold"
)

var errEmptyTitle = errors.New("entry title must not be empty")

// Scaffolder creates new dated entry documents from the entry template.
type Scaffolder struct {
	store    ports.EntryStore
	now      func() time.Time
	location *time.Location
	logger   *slog.Logger
}

// NewScaffolder wires the entry store; a nil clock means time.Now and a nil
// location means time.Local.
func NewScaffolder(store ports.EntryStore, now func() time.Time, loc *time.Location, logger *slog.Logger) *Scaffolder {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scaffolder{store: store, now: now, location: loc, logger: logger}
}

// Create writes a new entry for title dated today and returns the created file.
func (s *Scaffolder) Create(ctx context.Context, title string) (domain.EntryFile, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.EntryFile{}, errEmptyTitle
	}

	today := s.now().In(s.location).Format(domain.DateLayout)
	content, err := scaffold.Render(today, title)
	if err != nil {
		return domain.EntryFile{}, err
	}

	file, err := s.store.CreateEntry(ctx, scaffold.FileName(today, title), content)
	if err != nil {
		return domain.EntryFile{}, err
	}

	if s.logger != nil {
		s.logger.Debug("entry created", "path", file.RelPath, "date", today)
	}
	return file, nil
}
