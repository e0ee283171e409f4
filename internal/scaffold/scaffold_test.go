package scaffold

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{title: "First Entry", want: "first-entry"},
		{title: "  Hello,   World!  ", want: "hello-world"},
		{title: "a - b", want: "a-b"},
		{title: "a\u00a0b", want: "a-b"},
		{title: "ideographic\u3000space", want: "ideographic-space"},
		{title: "Día 1: ¿Qué?", want: "da-1-qu"},
		{title: "already-slugged", want: "already-slugged"},
		{title: "Trailing ?", want: "trailing-"},
		{title: "!!!", want: "entry"},
		{title: "", want: "entry"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	if got := FileName("2025-12-27", "First Entry"); got != "2025-12-27-first-entry.html" {
		t.Fatalf("unexpected file name: %s", got)
	}
}

func TestRenderHeading(t *testing.T) {
	t.Parallel()

	titles := []string{"First Entry", `Quotes "and" <tags> & more`, "Captain's   spaced"}
	for _, title := range titles {
		raw, err := Render("2026-01-02", title)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", title, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
		if err != nil {
			t.Fatalf("parse rendered entry: %v", err)
		}

		heading := strings.Join(strings.Fields(doc.Find("article h3").First().Text()), " ")
		want := "2026-01-02 — " + strings.Join(strings.Fields(title), " ")
		if heading != want {
			t.Fatalf("heading = %q, want %q", heading, want)
		}
		if doc.Find("p.entry-meta").Length() != 1 {
			t.Fatalf("rendered entry has no summary paragraph")
		}
		if doc.Find("article section").Length() != 2 {
			t.Fatalf("rendered entry should have two sections")
		}
	}
}
