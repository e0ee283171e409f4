package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"StaticJournal/internal/domain"
	"StaticJournal/internal/ports"
	"StaticJournal/internal/splice"
)

// PublisherDeps wires the stores and parser into the publish workflow.
type PublisherDeps struct {
	Index   ports.IndexStore
	Entries ports.EntryStore
	Parser  ports.EntryParser
	Archive *Archive
	Logger  *slog.Logger
}

// PublishOptions tweaks a single publish run.
type PublishOptions struct {
	// DryRun renders the updated home page without writing it.
	DryRun bool
}

// PublishResult reports what a publish run produced.
type PublishResult struct {
	Entry    domain.Entry
	Archive  []domain.Entry
	Document string
	Written  bool

	// PreviousPath and PreviousTitle echo the LATEST_META comment as it
	// stood before this run.
	PreviousPath  string
	PreviousTitle string
}

// Publisher splices a chosen entry and the archive into the home page.
type Publisher struct {
	index   ports.IndexStore
	entries ports.EntryStore
	parser  ports.EntryParser
	archive *Archive
	logger  *slog.Logger
}

// NewPublisher constructs the orchestration component.
func NewPublisher(deps PublisherDeps) *Publisher {
	archive := deps.Archive
	if archive == nil {
		archive = NewArchive(deps.Entries, deps.Parser, deps.Logger)
	}
	return &Publisher{
		index:   deps.Index,
		entries: deps.Entries,
		parser:  deps.Parser,
		archive: archive,
		logger:  deps.Logger,
	}
}

// Publish makes entryRel the latest entry on the home page and rebuilds the
// archive. Every check runs before the single write at the end.
func (p *Publisher) Publish(ctx context.Context, entryRel string, opts PublishOptions) (PublishResult, error) {
	doc, err := p.index.ReadIndex(ctx)
	if err != nil {
		return PublishResult{}, err
	}
	if err := splice.EnsureMarkers(doc); err != nil {
		return PublishResult{}, err
	}

	file, err := p.entries.ReadEntry(ctx, entryRel)
	if err != nil {
		return PublishResult{}, err
	}

	article, err := p.parser.Article(file)
	if err != nil {
		return PublishResult{}, err
	}
	entry, err := p.parser.Parse(file)
	if err != nil {
		return PublishResult{}, err
	}
	p.debug("entry parsed", "path", entry.RelPath, "title", entry.TitleLine)

	archive, err := p.archive.Entries(ctx)
	if err != nil {
		return PublishResult{}, fmt.Errorf("build archive: %w", err)
	}

	prevPath, prevTitle, _ := splice.Meta(doc)
	p.debug("replacing latest entry", "previous_path", prevPath, "previous_title", prevTitle)

	doc, err = splice.UpdateMeta(doc, entry.RelPath, entry.TitleLine)
	if err != nil {
		return PublishResult{}, fmt.Errorf("update latest meta: %w", err)
	}
	doc, err = splice.ReplaceBetween(doc, splice.LatestStart, splice.LatestEnd, splice.Indent(article, "  "))
	if err != nil {
		return PublishResult{}, fmt.Errorf("splice latest entry: %w", err)
	}
	doc, err = splice.ReplaceBetween(doc, splice.ArchiveStart, splice.ArchiveEnd, RenderArchive(archive))
	if err != nil {
		return PublishResult{}, fmt.Errorf("splice archive: %w", err)
	}

	result := PublishResult{
		Entry:         entry,
		Archive:       archive,
		Document:      doc,
		PreviousPath:  prevPath,
		PreviousTitle: prevTitle,
	}
	if opts.DryRun {
		p.debug("dry run, index not written", "archive_entries", len(archive))
		return result, nil
	}

	if err := p.index.WriteIndex(ctx, doc); err != nil {
		return PublishResult{}, fmt.Errorf("write index: %w", err)
	}
	result.Written = true

	p.debug("index updated", "path", entry.RelPath, "archive_entries", len(archive))
	return result, nil
}

func (p *Publisher) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
