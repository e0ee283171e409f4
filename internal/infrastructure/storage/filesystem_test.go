package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"StaticJournal/internal/domain"
)

func newStore(t *testing.T) (*FileStore, string) {
	t.Helper()

	root := t.TempDir()
	store, err := NewFileStore(root, "index.html", "entries")
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	return store, root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestReadIndexMissing(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	_, err := store.ReadIndex(context.Background())
	if !errors.Is(err, domain.ErrMissingIndex) {
		t.Fatalf("expected ErrMissingIndex, got %v", err)
	}
}

func TestWriteIndexReplacesAndKeepsMode(t *testing.T) {
	t.Parallel()

	store, root := newStore(t)
	indexPath := filepath.Join(root, "index.html")
	writeFile(t, indexPath, "old")
	if err := os.Chmod(indexPath, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	ctx := context.Background()
	if err := store.WriteIndex(ctx, "new"); err != nil {
		t.Fatalf("WriteIndex error: %v", err)
	}

	got, err := store.ReadIndex(ctx)
	if err != nil {
		t.Fatalf("ReadIndex error: %v", err)
	}
	if got != "new" {
		t.Fatalf("unexpected index content: %q", got)
	}

	info, err := os.Stat(indexPath)
	if err != nil {
		t.Fatalf("stat index: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("index mode changed to %v", info.Mode().Perm())
	}

	leftovers, err := filepath.Glob(filepath.Join(root, ".index.html.*.tmp"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}

func TestReadEntry(t *testing.T) {
	t.Parallel()

	store, root := newStore(t)
	writeFile(t, filepath.Join(root, "entries", "2025-12-27-first-entry.html"), "<h3>x</h3>")

	ctx := context.Background()
	file, err := store.ReadEntry(ctx, "entries/2025-12-27-first-entry.html")
	if err != nil {
		t.Fatalf("ReadEntry error: %v", err)
	}
	if file.RelPath != "entries/2025-12-27-first-entry.html" {
		t.Fatalf("unexpected rel path: %s", file.RelPath)
	}
	if file.Content != "<h3>x</h3>" {
		t.Fatalf("unexpected content: %q", file.Content)
	}

	if _, err := store.ReadEntry(ctx, "entries/missing.html"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := store.ReadEntry(ctx, "entries"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for a directory, got %v", err)
	}
}

func TestListEntriesOrderAndFilter(t *testing.T) {
	t.Parallel()

	store, root := newStore(t)
	dir := filepath.Join(root, "entries")
	writeFile(t, filepath.Join(dir, "b.html"), "b")
	writeFile(t, filepath.Join(dir, "a.html"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")
	writeFile(t, filepath.Join(dir, ".hidden.html"), "skip")
	writeFile(t, filepath.Join(dir, "nested", "c.html"), "skip")

	paths, err := store.ListEntries(context.Background())
	if err != nil {
		t.Fatalf("ListEntries error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "entries/a.html" || paths[1] != "entries/b.html" {
		t.Fatalf("unexpected order: %s, %s", paths[0], paths[1])
	}
}

func TestListEntriesDanglingSymlink(t *testing.T) {
	t.Parallel()

	store, root := newStore(t)
	dir := filepath.Join(root, "entries")
	writeFile(t, filepath.Join(dir, "a.html"), "a")
	if err := os.Symlink(filepath.Join(root, "gone.html"), filepath.Join(dir, "old.html")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	ctx := context.Background()
	paths, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries error: %v", err)
	}
	if len(paths) != 2 || paths[1] != "entries/old.html" {
		t.Fatalf("unexpected paths: %v", paths)
	}

	if _, err := store.ReadEntry(ctx, paths[1]); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for dangling link, got %v", err)
	}
}

func TestListEntriesMissingDir(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	paths, err := store.ListEntries(context.Background())
	if err != nil {
		t.Fatalf("ListEntries error: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no paths, got %d", len(paths))
	}
}

func TestCreateEntryNeverOverwrites(t *testing.T) {
	t.Parallel()

	store, root := newStore(t)
	ctx := context.Background()

	file, err := store.CreateEntry(ctx, "2026-01-01-a.html", []byte("first"))
	if err != nil {
		t.Fatalf("CreateEntry error: %v", err)
	}
	if file.RelPath != "entries/2026-01-01-a.html" {
		t.Fatalf("unexpected rel path: %s", file.RelPath)
	}

	_, err = store.CreateEntry(ctx, "2026-01-01-a.html", []byte("second"))
	if !errors.Is(err, domain.ErrEntryAlreadyExists) {
		t.Fatalf("expected ErrEntryAlreadyExists, got %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, "entries", "2026-01-01-a.html"))
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(raw) != "first" {
		t.Fatalf("entry was overwritten: %q", raw)
	}
}
