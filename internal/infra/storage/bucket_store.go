// Package storage keeps attachment bytes in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"vacuum/internal/domain/service"
	"vacuum/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// bucketStore implements service.ObjectStore over any blob driver.
type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	now           func() time.Time
}

// NewBucketStore wraps an opened bucket. publicBaseURL prefixes keys for
// unsigned links and may be empty.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string) service.ObjectStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// ObjectKey builds "{folder}/{unix}_{random}_{filename}". Only the base name
// of filename is kept.
func ObjectKey(folder, filename string, at time.Time) string {
	name := util.SafeFilename(filename)
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	file := strconv.FormatInt(at.Unix(), 10) + "_" + random + "_" + name

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return file
	}

	return folder + "/" + file
}

func (s *bucketStore) Upload(ctx context.Context, obj service.UploadObject) (string, error) {
	key := ObjectKey(obj.Folder, obj.Filename, s.now())

	opts := &blob.WriterOptions{ContentType: obj.ContentType}
	if err := s.bucket.WriteAll(ctx, key, obj.Data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload object %s", key)
	}

	return key, nil
}

func (s *bucketStore) PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: ttl})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign url for %s", key)
	}

	return url, nil
}

func (s *bucketStore) PublicURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

func (s *bucketStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete object %s", key)
}
