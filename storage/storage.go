package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned when a stored document does not exist
var ErrObjectNotFound = errors.New("stored object not found")

// Storage persists rendered documents
type Storage interface {
	// Upload stores a document and returns its storage path
	Upload(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// ConfigFromEnv reads the storage configuration from environment variables
func ConfigFromEnv() (StorageConfig, error) {
	cfg := StorageConfig{
		Type: StorageType(os.Getenv("STORAGE_TYPE")),
	}
	if cfg.Type == "" {
		cfg.Type = StorageTypeLocal // Default to local for development
	}

	switch cfg.Type {
	case StorageTypeLocal:
		cfg.LocalPath = os.Getenv("STORAGE_LOCAL_PATH")
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/documents"
		}

	case StorageTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return cfg, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}

	default:
		return cfg, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}

	return cfg, nil
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewStorage(cfg)
}

// objectKey builds the storage path of a document. The first two characters
// of the ID shard the keyspace.
func objectKey(id uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	baseName = strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(baseName)

	return fmt.Sprintf("documents/%s/%s_%s%s", id.String()[:2], id.String(), baseName, ext)
}

// contentType determines content type from filename
func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
