package storage

import (
	"context"
	"log/slog"

	"vacuum/config"
	"vacuum/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket URL schemes: file://, mem:// and s3://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// ObjectStoreParams holds dependencies for the object store, injected by Fx
type ObjectStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStore opens the bucket named by the object store URL and closes it
// on shutdown.
func NewObjectStore(params ObjectStoreParams) (service.ObjectStore, error) {
	cfg := params.Config.ObjectStore

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Object store bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.Bool("public_base_url", cfg.PublicBaseURL != ""),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing object store bucket")

			return bucket.Close()
		},
	})

	return NewBucketStore(bucket, cfg.PublicBaseURL), nil
}

// Module provides the object store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStore),
)
