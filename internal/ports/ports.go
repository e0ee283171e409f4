package ports

import (
	"context"

	"StaticJournal/internal/domain"
)

// EntryParser extracts metadata and the article block from entry documents.
type EntryParser interface {
	Parse(file domain.EntryFile) (domain.Entry, error)
	Article(file domain.EntryFile) (string, error)
}

// EntryStore reads and creates entry documents under the project root.
type EntryStore interface {
	ReadEntry(ctx context.Context, relPath string) (domain.EntryFile, error)
	ListEntries(ctx context.Context) ([]string, error)
	CreateEntry(ctx context.Context, name string, content []byte) (domain.EntryFile, error)
}

// IndexStore owns the home-page document.
type IndexStore interface {
	ReadIndex(ctx context.Context) (string, error)
	WriteIndex(ctx context.Context, content string) error
}
