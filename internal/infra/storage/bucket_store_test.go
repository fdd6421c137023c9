package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"vacuum/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestObjectKey(t *testing.T) {
	at := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		folder   string
		filename string
		prefix   string
		suffix   string
	}{
		{"machine folder", "machines/P-100", "manual.pdf", "machines/P-100/1700000000_", "_manual.pdf"},
		{"strips client path", "service_reports/abc", `C:\photos\pump 1.jpg`, "service_reports/abc/1700000000_", "_pump_1.jpg"},
		{"trims folder slashes", "/machines/", "a.png", "machines/1700000000_", "_a.png"},
		{"empty folder", "", "a.png", "1700000000_", "_a.png"},
		{"empty name", "machines", "", "machines/1700000000_", "_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ObjectKey(tt.folder, tt.filename, at)
			assert.True(t, strings.HasPrefix(key, tt.prefix), key)
			assert.True(t, strings.HasSuffix(key, tt.suffix), key)
		})
	}

	assert.NotEqual(t, ObjectKey("f", "a.png", at), ObjectKey("f", "a.png", at))
}

func TestBucketStore_UploadReadDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "https://files.example.com/")
	ctx := context.Background()

	key, err := store.Upload(ctx, service.UploadObject{
		Folder:      "machines/P-100",
		Filename:    "manual.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "machines/P-100/"))

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)

	assert.Equal(t, "https://files.example.com/"+key, store.PublicURL(key))

	require.NoError(t, store.Delete(ctx, key))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Delete(ctx, key), "deleting a missing key is not an error")
}

func TestBucketStore_PublicURLWithoutBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "")
	assert.Equal(t, "machines/a.png", store.PublicURL("machines/a.png"))
}
