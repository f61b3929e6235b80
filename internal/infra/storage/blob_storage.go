// Package storage keeps product images in a gocloud.dev blob bucket.
package storage

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"eshop/config"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/service"
	"eshop/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	// KeyPrefix is the bucket folder every upload lives under. It doubles as
	// the path segment after /public/.
	KeyPrefix = "uploads/"

	sniffLen = 512
)

// fileTypeMap lists the accepted image types and their extensions.
var fileTypeMap = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

type blobImageStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
	now    func() time.Time
}

// Params holds dependencies for ImageStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the bucket named by uploads.bucketUrl.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	bucketURL := params.Config.Uploads.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucketUrl", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketImageStorage(bucket, params.Logger), nil
}

// NewBucketImageStorage wraps an already opened bucket.
func NewBucketImageStorage(bucket *blob.Bucket, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// Validate checks the sniffed type of r and rewinds it.
func (s *blobImageStorage) Validate(r io.ReadSeeker) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", errors.Wrap(err, "failed to read image header")
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "failed to rewind image")
	}

	return detectImageType(head[:n])
}

func detectImageType(head []byte) (string, error) {
	contentType := http.DetectContentType(head)
	if _, ok := fileTypeMap[contentType]; !ok {
		return "", domainerrors.ErrUnsupportedImageType.WithDetails(contentType)
	}

	return contentType, nil
}

// Save writes the image under uploads/ after checking its sniffed type.
// Nothing is written when the type is not accepted.
func (s *blobImageStorage) Save(ctx context.Context, originalName string, r io.Reader) (*service.StoredImage, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, errors.Wrap(err, "failed to read image header")
	}

	contentType, err := detectImageType(head)
	if err != nil {
		return nil, err
	}

	key := KeyPrefix + s.fileName(originalName, fileTypeMap[contentType])

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	size, copyErr := io.Copy(w, br)
	if copyErr != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return nil, errors.Wrapf(copyErr, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.DebugContext(ctx, "Image stored",
		slog.String("key", key),
		slog.String("contentType", contentType),
		slog.String("size", util.FormatBytes(size)),
	)

	return &service.StoredImage{Key: key, ContentType: contentType, Size: size}, nil
}

// Open returns a reader for the key and its stored content type.
func (s *blobImageStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !validKey(key) {
		return nil, "", domainerrors.ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// URL joins baseURL and the public path of the key.
func (s *blobImageStorage) URL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/public/" + key
}

// fileName keeps the uploaded base name readable: spaces become dashes, then
// a millisecond timestamp and a short random suffix.
func (s *blobImageStorage) fileName(originalName, ext string) string {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." || base == "/" {
		base = "image"
	}

	return base + "-" + strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + uuid.NewString()[:8] + "." + ext
}

func validKey(key string) bool {
	return strings.HasPrefix(key, KeyPrefix) && !strings.Contains(key, "..")
}
