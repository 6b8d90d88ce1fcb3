package storage

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSDocumentStore writes onboarding documents to a Google Cloud Storage
// bucket and returns their public URLs.
type GCSDocumentStore struct {
	client *storage.Client
	bucket string
}

// NewGCSDocumentStore opens a client against the given bucket. Explicit JSON
// credentials take precedence; otherwise application default credentials are
// used (service account on Cloud Run, GOOGLE_APPLICATION_CREDENTIALS locally).
func NewGCSDocumentStore(ctx context.Context, bucket, credentialsJSON string) (*GCSDocumentStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	var client *storage.Client
	var err error
	if strings.TrimSpace(credentialsJSON) != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &GCSDocumentStore{client: client, bucket: bucket}, nil
}

// Put uploads the object and returns its public URL.
func (s *GCSDocumentStore) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	wc.Metadata = map[string]string{
		"x-goog-acl": "public-read",
	}

	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("close writer for %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Close releases the underlying client.
func (s *GCSDocumentStore) Close() error {
	return s.client.Close()
}
