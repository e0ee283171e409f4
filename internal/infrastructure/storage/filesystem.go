package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"StaticJournal/internal/domain"
	"StaticJournal/internal/ports"
)

// FileStore keeps entry documents and the home page on the local filesystem.
type FileStore struct {
	root       string
	indexPath  string
	entriesDir string
}

var (
	_ ports.EntryStore = (*FileStore)(nil)
	_ ports.IndexStore = (*FileStore)(nil)
)

// NewFileStore resolves index and entriesDir against root.
func NewFileStore(root, index, entriesDir string) (*FileStore, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", root, err)
	}
	return &FileStore{
		root:       absRoot,
		indexPath:  resolve(absRoot, index),
		entriesDir: resolve(absRoot, entriesDir),
	}, nil
}

// Root returns the absolute project root.
func (s *FileStore) Root() string {
	return s.root
}

// IndexPath returns the absolute home-page location.
func (s *FileStore) IndexPath() string {
	return s.indexPath
}

// ReadIndex loads the home page.
func (s *FileStore) ReadIndex(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(s.indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingIndex, s.indexPath)
	}
	if err != nil {
		return "", fmt.Errorf("read index: %w", err)
	}
	return string(raw), nil
}

// WriteIndex replaces the home page through a temp file and rename,
// so readers see either the old document or the new one.
func (s *FileStore) WriteIndex(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(s.indexPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.indexPath), "."+filepath.Base(s.indexPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp index: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp index: %w", err)
	}
	if err := os.Rename(tmpName, s.indexPath); err != nil {
		return fmt.Errorf("replace index: %w", err)
	}
	return nil
}

// ReadEntry loads an entry by its path relative to the project root.
func (s *FileStore) ReadEntry(ctx context.Context, relPath string) (domain.EntryFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.EntryFile{}, err
	}

	path := resolve(s.root, relPath)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return domain.EntryFile{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, path)
	}
	if err != nil {
		return domain.EntryFile{}, fmt.Errorf("stat entry: %w", err)
	}

	return s.load(path)
}

// ListEntries returns the root-relative paths of every *.html document in
// the entries directory in lexicographic file-name order. A missing
// directory yields no entries. The documents are not opened here, so a file
// that cannot be read surfaces only when ReadEntry is called for it.
func (s *FileStore) ListEntries(ctx context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(s.entriesDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	paths := make([]string, 0, len(dirEntries))
	for _, d := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := d.Name()
		if d.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".html") {
			continue
		}
		paths = append(paths, s.rel(filepath.Join(s.entriesDir, name)))
	}

	return paths, nil
}

// CreateEntry writes a new document named name into the entries directory.
// It never overwrites an existing file.
func (s *FileStore) CreateEntry(ctx context.Context, name string, content []byte) (domain.EntryFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.EntryFile{}, err
	}

	if err := os.MkdirAll(s.entriesDir, os.ModePerm); err != nil {
		return domain.EntryFile{}, fmt.Errorf("create entries directory: %w", err)
	}

	path := filepath.Join(s.entriesDir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return domain.EntryFile{}, fmt.Errorf("%w: %s", domain.ErrEntryAlreadyExists, path)
	}
	if err != nil {
		return domain.EntryFile{}, fmt.Errorf("create entry: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return domain.EntryFile{}, fmt.Errorf("write entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return domain.EntryFile{}, fmt.Errorf("close entry: %w", err)
	}

	return domain.EntryFile{Path: path, RelPath: s.rel(path), Content: string(content)}, nil
}

func (s *FileStore) load(path string) (domain.EntryFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.EntryFile{}, fmt.Errorf("read entry %s: %w", path, err)
	}
	return domain.EntryFile{Path: path, RelPath: s.rel(path), Content: string(raw)}, nil
}

func (s *FileStore) rel(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func resolve(root, path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
