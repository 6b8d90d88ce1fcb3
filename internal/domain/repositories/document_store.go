package repositories

import "context"

// DocumentStore writes uploaded onboarding documents to blob storage and
// returns the public URL of the stored object.
type DocumentStore interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}
