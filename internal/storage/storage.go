package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("file not found")

// Storage abstracts where uploaded files live. Tutor photos are public,
// identity documents are served only through authorized handlers, so
// the interface exposes both a raw reader and a public URL.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
}

type Config struct {
	Type     string // only "local" for now
	BasePath string
	BaseURL  string // public URL base for stored files
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
