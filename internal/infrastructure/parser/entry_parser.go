package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"StaticJournal/internal/domain"
	"StaticJournal/internal/ports"
)

var (
	titleExpr   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+[—-]\s+(.+)`)
	articleExpr = regexp.MustCompile(`(?is)<article\b.*?</article>`)
)

// EntryParser reads entry documents: the first <h3> carries "YYYY-MM-DD — Title",
// an optional p.entry-meta carries the summary, and one <article> wraps the body.
type EntryParser struct {
	summarySelector string
}

var _ ports.EntryParser = (*EntryParser)(nil)

// NewEntryParser builds a parser that reads summaries from p.entry-meta.
func NewEntryParser() *EntryParser {
	return &EntryParser{summarySelector: "p.entry-meta"}
}

// Parse extracts the heading, date and summary of an entry document.
func (p *EntryParser) Parse(file domain.EntryFile) (domain.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(file.Content))
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse document %s: %w", file.RelPath, err)
	}

	heading := doc.Find("h3").First()
	if heading.Length() == 0 {
		return domain.Entry{}, fmt.Errorf("%w: %s has no <h3> title line", domain.ErrMalformedEntry, file.RelPath)
	}

	titleLine := normalizeWhitespace(heading.Text())
	date, title, err := splitTitleLine(titleLine)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedEntry, file.RelPath, err)
	}

	summary := ""
	if meta := doc.Find(p.summarySelector).First(); meta.Length() > 0 {
		summary = normalizeWhitespace(meta.Text())
	}

	return domain.Entry{
		RelPath:   file.RelPath,
		Date:      date,
		TitleLine: titleLine,
		Title:     title,
		Summary:   summary,
	}, nil
}

// Article returns the first <article>...</article> block exactly as written.
func (p *EntryParser) Article(file domain.EntryFile) (string, error) {
	block := articleExpr.FindString(file.Content)
	if block == "" {
		return "", fmt.Errorf("%w: %s must include a full <article>...</article> block", domain.ErrMalformedEntry, file.RelPath)
	}
	return strings.TrimSpace(block), nil
}

func splitTitleLine(line string) (time.Time, string, error) {
	match := titleExpr.FindStringSubmatch(line)
	if match == nil {
		return time.Time{}, "", fmt.Errorf(`title %q must start like "YYYY-MM-DD — Title"`, line)
	}

	date, err := time.Parse(domain.DateLayout, match[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid date %s", match[1])
	}

	return date, strings.TrimSpace(match[2]), nil
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
