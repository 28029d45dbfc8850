// README: Object storage uploader for vehicle photos (Google Cloud Storage).
package infra

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ErrStorageUnavailable signals that no bucket is configured or the upload
// failed; callers treat the photo as absent rather than failing the request.
var ErrStorageUnavailable = errors.New("object storage unavailable")

// PhotoUploader stores a bounded-size image and returns a publicly
// resolvable URL for it.
type PhotoUploader interface {
	Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

type gcsUploader struct {
	client *storage.Client
	bucket string
	maxLen int64
}

// NewPhotoUploader creates a GCS-backed uploader. If credentialsFile is
// non-empty it is used as the service-account JSON path; otherwise
// application-default credentials are used. An empty bucket returns a
// disabled uploader whose Upload always reports ErrStorageUnavailable.
func NewPhotoUploader(ctx context.Context, bucket, credentialsFile string, maxBytes int64) (PhotoUploader, error) {
	if bucket == "" {
		return disabledUploader{}, nil
	}
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &gcsUploader{client: client, bucket: bucket, maxLen: maxBytes}, nil
}

func (u *gcsUploader) Upload(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, io.LimitReader(r, u.maxLen)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, name), nil
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrStorageUnavailable
}
