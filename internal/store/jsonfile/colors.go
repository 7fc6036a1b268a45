// Package jsonfile persists player colors in a JSON file.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/chatcolor/internal/core/players"
)

// ColorsFile implements players.Backend on top of a single JSON file.
type ColorsFile struct {
	path string
	mu   sync.Mutex
}

// NewColorsFile returns a backend for the file at path. The file and its
// directory are created on first write.
func NewColorsFile(path string) *ColorsFile {
	return &ColorsFile{path: path}
}

// Path returns the file location.
func (f *ColorsFile) Path() string {
	return f.path
}

// Read returns the file contents, or players.ErrNotFound if the file does
// not exist.
func (f *ColorsFile) Read(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, players.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// Write replaces the file atomically: data goes to a temp file in the same
// directory which is then renamed over the target. A crash mid-write leaves
// the previous contents intact.
func (f *ColorsFile) Write(ctx context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

var _ players.Backend = (*ColorsFile)(nil)
