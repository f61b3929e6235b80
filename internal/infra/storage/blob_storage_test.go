package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainerrors "eshop/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

// Minimal PNG header; enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestStorage(t *testing.T) (*blobImageStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	s, ok := NewBucketImageStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobImageStorage)
	require.True(t, ok)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return s, bucket
}

func countObjects(t *testing.T, bucket *blob.Bucket) int {
	t.Helper()

	n := 0
	iter := bucket.List(nil)
	for {
		_, err := iter.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return n
		}
		require.NoError(t, err)
		n++
	}
}

func TestSave_PNG(t *testing.T) {
	s, bucket := newTestStorage(t)
	ctx := context.Background()

	stored, err := s.Save(ctx, "gold ring.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "image/png", stored.ContentType)
	assert.EqualValues(t, len(pngHeader), stored.Size)
	assert.True(t, strings.HasPrefix(stored.Key, "uploads/gold-ring-1700000000000-"), stored.Key)
	assert.True(t, strings.HasSuffix(stored.Key, ".png"), stored.Key)

	reader, contentType, err := s.Open(ctx, stored.Key)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, 1, countObjects(t, bucket))
}

func TestSave_RejectsNonImageWithoutWriting(t *testing.T) {
	s, bucket := newTestStorage(t)

	stored, err := s.Save(context.Background(), "notes.png", strings.NewReader("just some text, not an image"))
	require.Error(t, err)
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
	assert.Zero(t, countObjects(t, bucket))
}

func TestOpen_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	for _, key := range []string{"uploads/missing.png", "secrets/key.pem", "uploads/../secrets"} {
		_, _, err := s.Open(context.Background(), key)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound, key)
	}
}

func TestDelete(t *testing.T) {
	s, bucket := newTestStorage(t)
	ctx := context.Background()

	stored, err := s.Save(ctx, "a.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, stored.Key))
	assert.Zero(t, countObjects(t, bucket))

	// Deleting again is not an error.
	assert.NoError(t, s.Delete(ctx, stored.Key))
}

func TestURL(t *testing.T) {
	s, _ := newTestStorage(t)
	assert.Equal(t, "http://localhost:3000/public/uploads/a.png", s.URL("http://localhost:3000/", "uploads/a.png"))
}

func TestFileName(t *testing.T) {
	s, _ := newTestStorage(t)

	tests := map[string]string{
		"my photo.jpeg":        "my-photo-1700000000000-",
		`C:\Users\me\pic.png`:  "pic-1700000000000-",
		"":                     "image-1700000000000-",
		"../../etc/passwd.png": "passwd-1700000000000-",
	}

	for input, wantPrefix := range tests {
		got := s.fileName(input, "png")
		assert.True(t, strings.HasPrefix(got, wantPrefix), "%q -> %q", input, got)
		assert.True(t, strings.HasSuffix(got, ".png"))
	}
}

func TestValidate(t *testing.T) {
	s, bucket := newTestStorage(t)

	png := bytes.NewReader(pngHeader)
	contentType, err := s.Validate(png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	// The reader is rewound so the full file can still be stored.
	rest, err := io.ReadAll(png)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, rest)

	_, err = s.Validate(strings.NewReader("%PDF-1.4"))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
	assert.Zero(t, countObjects(t, bucket))
}
