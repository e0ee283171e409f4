package domain

import "time"

// DateLayout is the heading and filename date format.
const DateLayout = "2006-01-02"

// Entry is the metadata derived from a single journal entry document.
type Entry struct {
	RelPath   string
	Date      time.Time
	TitleLine string
	Title     string
	Summary   string
}

// DateString formats the entry date as YYYY-MM-DD.
func (e Entry) DateString() string {
	return e.Date.Format(DateLayout)
}

// EntryFile is the raw text of an entry document together with its location.
type EntryFile struct {
	Path    string
	RelPath string
	Content string
}
