package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	domainerrors "artisanconnect/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestStore(t *testing.T, maxFileSize int64) *blobImageStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStore(bucket, "/uploads/", maxFileSize, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobImageStore)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }
	store.suffix = func() int { return 123456789 }

	return store
}

func TestBlobImageStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t, 1<<20)
	ctx := context.Background()
	data := pngBytes(t)

	stored, err := store.Save(ctx, "images", "Vase.PNG", data)
	require.NoError(t, err)
	assert.Equal(t, "images-1700000000000-123456789.png", stored.Name)
	assert.Equal(t, "/uploads/images-1700000000000-123456789.png", stored.URL)
	assert.Equal(t, "image/png", stored.ContentType)
	assert.Equal(t, int64(len(data)), stored.Size)

	reader, contentType, err := store.Open(ctx, stored.Name)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", contentType)

	attrs, err := store.bucket.Attributes(ctx, stored.Name)
	require.NoError(t, err)
	assert.Len(t, attrs.Metadata["sha256"], 64)
}

func TestBlobImageStore_SaveUsesDetectedExtension(t *testing.T) {
	store := newTestStore(t, 0)

	stored, err := store.Save(context.Background(), "", "blob", pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "images-1700000000000-123456789.png", stored.Name)
}

func TestBlobImageStore_RejectsNonImages(t *testing.T) {
	store := newTestStore(t, 1<<20)

	_, err := store.Save(context.Background(), "images", "notes.txt", []byte("plain text, not a picture"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMediaType)
}

func TestBlobImageStore_RejectsOversizeFiles(t *testing.T) {
	store := newTestStore(t, 16)

	_, err := store.Save(context.Background(), "images", "big.png", pngBytes(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestBlobImageStore_OpenMissingOrInvalidName(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	for _, name := range []string{"missing.png", "../etc/passwd", "a/b.png", ".hidden", ""} {
		_, _, err := store.Open(ctx, name)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound, name)
	}
}
