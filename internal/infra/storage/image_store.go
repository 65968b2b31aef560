// Package storage keeps uploaded product images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"path"
	"path/filepath"
	"strings"
	"time"

	"artisanconnect/config"
	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/domain/service"
	"artisanconnect/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const fileScheme = "file://"

type blobImageStore struct {
	bucket      *blob.Bucket
	publicPath  string
	maxFileSize int64
	logger      *slog.Logger
	now         func() time.Time
	suffix      func() int
}

// ImageStoreParams holds dependencies for the image store, injected by Fx
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the bucket named by upload.bucketUrl and closes it on stop.
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Upload
	if cfg == nil {
		return nil, errors.New("upload configuration is required")
	}

	maxFileSize, err := util.ParseByteSize(cfg.MaxFileSize)
	if err != nil {
		return nil, err
	}

	bucket, err := openBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Image store initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("max_file_size", util.FormatBytes(maxFileSize)),
	)

	return NewBlobImageStore(bucket, cfg.PublicPath, maxFileSize, params.Logger), nil
}

// NewBlobImageStore wraps an already opened bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicPath string, maxFileSize int64, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:      bucket,
		publicPath:  strings.TrimRight(publicPath, "/"),
		maxFileSize: maxFileSize,
		logger:      logger,
		now:         time.Now,
		suffix:      func() int { return rand.IntN(1_000_000_000) },
	}
}

// openBucket creates local directories on demand; other schemes go through the URL mux.
func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if dir, ok := strings.CutPrefix(bucketURL, fileScheme); ok {
		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open local bucket %s", dir)
		}

		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}

func (s *blobImageStore) Save(ctx context.Context, fieldName, originalName string, data []byte) (*service.StoredImage, error) {
	size := int64(len(data))
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return nil, domainerrors.ErrFileTooLarge.WrapMessage(
			fmt.Sprintf("file %q is %s, limit is %s", originalName, util.FormatBytes(size), util.FormatBytes(s.maxFileSize)))
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage(
			fmt.Sprintf("file %q detected as %s", originalName, detected.String()))
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = detected.Extension()
	}
	if fieldName == "" {
		fieldName = "images"
	}
	name := fmt.Sprintf("%s-%d-%d%s", fieldName, s.now().UnixMilli(), s.suffix(), ext)

	err := s.bucket.WriteAll(ctx, name, data, &blob.WriterOptions{
		ContentType: detected.String(),
		Metadata: map[string]string{
			"sha256":        util.Checksum(data),
			"original_name": path.Base(filepath.ToSlash(originalName)),
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write image %s", name)
	}

	s.logger.DebugContext(ctx, "Image stored",
		slog.String("name", name),
		slog.String("content_type", detected.String()),
		slog.String("size", util.FormatBytes(size)),
	)

	return &service.StoredImage{
		Name:        name,
		URL:         s.publicPath + "/" + name,
		ContentType: detected.String(),
		Size:        size,
	}, nil
}

func (s *blobImageStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, "", domainerrors.ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open image %s", name)
	}

	return reader, reader.ContentType(), nil
}

// Module provides the image store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewImageStore),
)
