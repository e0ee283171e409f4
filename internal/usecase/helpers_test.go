package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"StaticJournal/internal/infrastructure/parser"
	"StaticJournal/internal/infrastructure/storage"
)

const testIndex = `<!DOCTYPE html>
<html lang="en">
<body>
  <!-- LATEST_META file="entries/none.html" title="none" -->
  <main>
  <!-- LATEST_START -->
  <p>Nothing published yet.</p>
  <!-- LATEST_END -->
  </main>
  <nav>
    <ul>
  <!-- ARCHIVE START -->
  <!-- ARCHIVE END -->
    </ul>
  </nav>
</body>
</html>
`

func entryDoc(heading, summary string) string {
	meta := ""
	if summary != "" {
		meta = "\n    <p class=\"entry-meta\">" + summary + "</p>"
	}
	return "<!DOCTYPE html>\n<html>\n<body>\n  <article class=\"entry-card\">\n    <h3>" + heading + "</h3>" + meta +
		"\n    <section>\n      <p>Body of " + heading + "</p>\n    </section>\n  </article>\n</body>\n</html>\n"
}

type fixture struct {
	root   string
	store  *storage.FileStore
	parser *parser.EntryParser
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	root := t.TempDir()
	store, err := storage.NewFileStore(root, "index.html", "entries")
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	return fixture{root: root, store: store, parser: parser.NewEntryParser()}
}

func (f fixture) write(t *testing.T, rel, content string) {
	t.Helper()

	path := filepath.Join(f.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func (f fixture) read(t *testing.T, rel string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(raw)
}

func (f fixture) publisher() *Publisher {
	return NewPublisher(PublisherDeps{Index: f.store, Entries: f.store, Parser: f.parser})
}
