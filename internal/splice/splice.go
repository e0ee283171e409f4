// Package splice rewrites marker-delimited regions of the home-page document.
// Every function is text in, text out; file I/O happens elsewhere.
package splice

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	"StaticJournal/internal/domain"
)

// Home-page sentinel comments.
const (
	LatestStart  = "<!-- LATEST_START -->"
	LatestEnd    = "<!-- LATEST_END -->"
	ArchiveStart = "<!-- ARCHIVE START -->"
	ArchiveEnd   = "<!-- ARCHIVE END -->"
)

var metaExpr = regexp.MustCompile(`<!--\s*LATEST_META\s+file="([^"]+)"\s+title="([^"]+)"\s*-->`)

// ReplaceBetween swaps the text between start and end for replacement.
// The pair must delimit exactly one region of doc.
func ReplaceBetween(doc, start, end, replacement string) (string, error) {
	expr, err := regexp.Compile(regexp.QuoteMeta(start) + `(?s:.*?)` + regexp.QuoteMeta(end))
	if err != nil {
		return "", fmt.Errorf("compile marker pattern: %w", err)
	}

	matches := expr.FindAllStringIndex(doc, -1)
	if len(matches) != 1 {
		return "", fmt.Errorf("%w: %s ... %s (found %d matches)", domain.ErrMarkerNotFound, start, end, len(matches))
	}

	block := start + "\n" + strings.TrimRightFunc(replacement, unicode.IsSpace) + "\n  " + end
	loc := matches[0]
	return doc[:loc[0]] + block + doc[loc[1]:], nil
}

// UpdateMeta rewrites the LATEST_META comment to point at file and title.
func UpdateMeta(doc, file, title string) (string, error) {
	matches := metaExpr.FindAllStringIndex(doc, -1)
	if len(matches) != 1 {
		return "", fmt.Errorf(`%w: expected one <!-- LATEST_META file="..." title="..." --> comment, found %d`, domain.ErrMarkerNotFound, len(matches))
	}

	comment := fmt.Sprintf(`<!-- LATEST_META file="%s" title="%s" -->`, html.EscapeString(file), html.EscapeString(title))
	loc := matches[0]
	return doc[:loc[0]] + comment + doc[loc[1]:], nil
}

// Meta returns the file and title currently recorded in the LATEST_META comment.
func Meta(doc string) (file, title string, ok bool) {
	match := metaExpr.FindStringSubmatch(doc)
	if match == nil {
		return "", "", false
	}
	return html.UnescapeString(match[1]), html.UnescapeString(match[2]), true
}

// EnsureMarkers checks that doc carries both marker pairs and a LATEST_META comment.
func EnsureMarkers(doc string) error {
	pairs := [][2]string{
		{ArchiveStart, ArchiveEnd},
		{LatestStart, LatestEnd},
	}
	for _, pair := range pairs {
		if !strings.Contains(doc, pair[0]) || !strings.Contains(doc, pair[1]) {
			return fmt.Errorf("%w: index is missing required marker pair %s ... %s", domain.ErrMissingMarkers, pair[0], pair[1])
		}
	}
	if !metaExpr.MatchString(doc) {
		return fmt.Errorf(`%w: index is missing a <!-- LATEST_META file="..." title="..." --> comment`, domain.ErrMissingMarkers)
	}
	return nil
}

// Indent prefixes every line of text with prefix.
func Indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}
