package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Filesystem persists the snapshot as a single JSON file. Writes go through
// a temp file followed by a rename so a crash mid-write never leaves a
// truncated snapshot behind.
type Filesystem struct {
	path     string
	logoPath string
}

// NewFilesystem creates a filesystem snapshot provider rooted at path
func NewFilesystem(path string) *Filesystem {
	return &Filesystem{
		path:     path,
		logoPath: filepath.Join(filepath.Dir(path), "logo.b64"),
	}
}

// Load returns the stored snapshot blob, or (nil, nil) when absent
func (f *Filesystem) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the stored snapshot blob
func (f *Filesystem) Save(_ context.Context, data []byte) error {
	return f.writeAtomic(f.path, data)
}

// LoadLogo returns the base64 clinic logo, or "" when absent
func (f *Filesystem) LoadLogo(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.logoPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read logo: %w", err)
	}
	return string(data), nil
}

// SaveLogo overwrites the base64 clinic logo
func (f *Filesystem) SaveLogo(_ context.Context, logo string) error {
	return f.writeAtomic(f.logoPath, []byte(logo))
}

func (f *Filesystem) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
