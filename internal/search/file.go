package search

import (
	"context"
	"fmt"
	"os"
)

// FileProvider serves a search response stored on disk. It ignores the
// search options and is meant for offline development and demos.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the response at path.
func NewFileProvider(cfg FileConfig) (*FileProvider, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("fixture path is required")
	}
	return &FileProvider{path: cfg.Path}, nil
}

func (f *FileProvider) Search(ctx context.Context, _ Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return decodeResult(body)
}

func (f *FileProvider) Name() string {
	return "file"
}
