// Package sources supplies already-extracted activity text, one blob per
// case. It is the boundary to the external Document Text Source: binary
// document parsing happens upstream, and this package only consumes its
// plain-text output.
package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// System defines the public contract for text source operations.
type System interface {
	// List returns the names of available source documents in stable order.
	List(ctx context.Context) ([]string, error)

	// Read returns the concatenated text of one source document. An empty
	// document yields an empty string, not an error, so an unreadable page
	// upstream never fails the whole extraction.
	Read(ctx context.Context, name string) (string, error)
}

// FileSource reads text blobs from a local directory, one file per case.
type FileSource struct {
	dir       string
	extension string
}

// NewFileSource creates a FileSource for the configured directory.
func NewFileSource(cfg Config) (*FileSource, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("stat input dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, cfg.Dir)
	}

	return &FileSource{
		dir:       cfg.Dir,
		extension: cfg.Extension,
	}, nil
}

// List returns the matching file names sorted lexically.
func (f *FileSource) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), f.extension) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Read returns the file contents as a string.
func (f *FileSource) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrEmptyName
	}
	if name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}

	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}

	return string(data), nil
}
