package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs in ownership-scoped directories under a single data
// directory. Moves are plain os.Rename calls, atomic within one filesystem.
type DiskStore struct {
	dataDir string
}

func NewDiskStore(dataDir string) (*DiskStore, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	return &DiskStore{dataDir: dataDir}, nil
}

// resolve joins a scoped path onto the data directory and rejects any path
// whose cleaned form escapes it, so stored scope names can never address
// files outside the store.
func (ds *DiskStore) resolve(path string) (string, error) {
	full := filepath.Join(ds.dataDir, filepath.FromSlash(path))

	rel, err := filepath.Rel(ds.dataDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes the data directory", path)
	}

	return full, nil
}

func (ds *DiskStore) Move(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullOld, err := ds.resolve(oldPath)
	if err != nil {
		return err
	}
	fullNew, err := ds.resolve(newPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullNew), 0o750); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	if err := os.Rename(fullOld, fullNew); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}

	return nil
}

// Save writes a blob via temp file, fsync and atomic rename, so a crashed
// write never leaves a half-written blob at the final path.
func (ds *DiskStore) Save(path string, reader io.Reader) error {
	fullPath, err := ds.resolve(path)
	if err != nil {
		return err
	}
	tmpPath := fullPath + ".tmp"

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write blob data: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to fsync blob: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close blob file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Exists reports whether a blob is present at the given scoped path.
func (ds *DiskStore) Exists(path string) bool {
	full, err := ds.resolve(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(full)
	return err == nil
}
