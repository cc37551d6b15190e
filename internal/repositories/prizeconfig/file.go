package prizeconfig

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// FileConfig holds configuration for a file-backed source
type FileConfig struct {
	// Path to a .json, .yaml or .yml document
	Path string
}

type fileSource struct {
	path   string
	format Format
}

// NewFile creates a source that reads the document from disk on every fetch
func NewFile(cfg *FileConfig) (*fileSource, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}
	return &fileSource{
		path:   cfg.Path,
		format: FormatFromExtension(cfg.Path),
	}, nil
}

// Fetch reads the file
func (f *fileSource) Fetch(ctx context.Context) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return &Payload{
		Data:   data,
		Format: f.format,
		Origin: f.path,
	}, nil
}

// Describe returns the file path
func (f *fileSource) Describe() string {
	return "file:" + f.path
}

// Path returns the watched file path
func (f *fileSource) Path() string {
	return f.path
}
