package service

import (
	"context"
	"time"
)

// UploadObject describes bytes to place in the object store.
type UploadObject struct {
	Folder      string // Key prefix, e.g. "machines/PN-1".
	Filename    string // Original client file name.
	ContentType string
	Data        []byte
}

// ObjectStore keeps file bytes outside the database. Rows only hold keys.
type ObjectStore interface {
	// Upload stores the object under a fresh key derived from folder and
	// filename, and returns that key.
	Upload(ctx context.Context, obj UploadObject) (string, error)

	// PresignURL returns a download URL valid for ttl.
	PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// PublicURL returns the permanent, unsigned location of key.
	PublicURL(key string) string

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
