package usecase

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"sort"
	"strings"

	"StaticJournal/internal/domain"
	"StaticJournal/internal/ports"
)

const (
	archiveIndent = "                "
	emptyArchive  = archiveIndent + "<!-- (no entries yet) -->"
)

// Archive collects every well-formed entry, newest first.
type Archive struct {
	store  ports.EntryStore
	parser ports.EntryParser
	logger *slog.Logger
}

// NewArchive wires the entry store and parser.
func NewArchive(store ports.EntryStore, parser ports.EntryParser, logger *slog.Logger) *Archive {
	return &Archive{store: store, parser: parser, logger: logger}
}

// Entries parses all entry documents. Documents that cannot be read or
// parsed are skipped so one bad file never blocks the listing.
func (a *Archive) Entries(ctx context.Context) ([]domain.Entry, error) {
	paths, err := a.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]domain.Entry, 0, len(paths))
	for _, rel := range paths {
		file, err := a.store.ReadEntry(ctx, rel)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			a.debug("skip unreadable entry", "path", rel, "error", err)
			continue
		}

		entry, err := a.parser.Parse(file)
		if err != nil {
			a.debug("skip entry", "path", file.RelPath, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	a.debug("archive built", "files", len(paths), "entries", len(entries))
	return entries, nil
}

// RenderArchive renders one <li> per entry for insertion between the archive markers.
func RenderArchive(entries []domain.Entry) string {
	if len(entries) == 0 {
		return emptyArchive
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(`%s<li><a href="%s">%s - %s</a></li>`,
			archiveIndent,
			html.EscapeString(e.RelPath),
			e.DateString(),
			html.EscapeString(e.Title)))
	}
	return strings.Join(lines, "\n")
}

func (a *Archive) debug(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
