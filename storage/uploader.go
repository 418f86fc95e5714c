package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader forwards uploaded files to an S3-compatible bucket and hands back
// the public URL of each stored object.
type Uploader struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewUploader(endpoint, accessKey, secretKey, bucket string) (*Uploader, error) {
	host, secure, err := normaliseEndpoint(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid storage endpoint: %w", err)
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Sanity check: bucket must exist.
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("storage bucket does not exist: %s", bucket)
	}

	scheme := "http"
	if secure {
		scheme = "https"
	}

	log.Printf("Storage client ready (bucket: %s)", bucket)
	return &Uploader{
		client:  client,
		bucket:  bucket,
		baseURL: scheme + "://" + host,
	}, nil
}

// Upload streams one file to the bucket under a fresh object name and returns
// its public URL. The caller's reader is consumed in full; nothing is staged
// on local disk.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error) {
	object := objectName(filename)

	_, err := u.client.PutObject(ctx, u.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	log.Printf("Uploaded object: %s (%d bytes)", object, size)
	return u.publicURL(object), nil
}

func (u *Uploader) publicURL(object string) string {
	return fmt.Sprintf("%s/%s/%s", u.baseURL, u.bucket, object)
}

// objectName keeps the original extension so the stored URL stays
// type-recognisable, but replaces the client-supplied name entirely.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// normaliseEndpoint accepts either "minio:9000" or a full
// "http(s)://minio:9000" URL and returns the host plus whether TLS is in use.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		secure = (u.Scheme == "https")
		return u.Host, secure, nil
	}

	// No scheme provided, treat as host:port (insecure by default for local MinIO).
	return raw, false, nil
}
