package gcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// Storage wraps a GCS client and the single bucket this application writes to.
type Storage struct {
	client *storage.Client
	bucket string
}

func NewStorage(ctx context.Context, bucket string) (*Storage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &Storage{client: client, bucket: bucket}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// Upload writes an object and returns its public download URL.
func (s *Storage) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*60*2)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("Object(%q).NewWriter.Close: %w", objectName, err)
	}

	slog.Debug("Blob uploaded successfully", "objectName", objectName)
	return s.URL(objectName), nil
}

// Delete removes an object.
func (s *Storage) Delete(ctx context.Context, objectName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*60)
	defer cancel()

	if err := s.client.Bucket(s.bucket).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("Object(%q).Delete: %w", objectName, err)
	}
	return nil
}

// URL returns the public download URL for an object in the bucket.
func (s *Storage) URL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName)
}

// ObjectFromURL recovers the object name from a URL previously returned by URL.
// Returns an empty string when the URL does not point into the bucket.
func (s *Storage) ObjectFromURL(url string) string {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
