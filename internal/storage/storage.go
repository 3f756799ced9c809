package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where uploaded images live (profile photos, service and
// category artwork).
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for a stored object.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary URL for objects that are not public.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type Config struct {
	Type      string // local or s3
	BasePath  string // local: directory on disk
	BaseURL   string // public URL prefix
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // set for S3-compatible providers (R2, MinIO)
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
