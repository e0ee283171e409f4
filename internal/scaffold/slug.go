package scaffold

import (
	"regexp"
	"strings"
)

const defaultSlug = "entry"

// space matches Unicode whitespace; \s alone only knows ASCII.
const space = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`

var (
	unsafeChars = regexp.MustCompile(`[^a-z0-9` + space + `-]`)
	spaceRuns   = regexp.MustCompile(`[` + space + `]+`)
	hyphenRuns  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a lowercase, hyphenated file-name fragment.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = unsafeChars.ReplaceAllString(s, "")
	s = spaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	if s == "" {
		return defaultSlug
	}
	return s
}

// FileName composes the entry file name for a date and title.
func FileName(date, title string) string {
	return date + "-" + Slugify(title) + ".html"
}
