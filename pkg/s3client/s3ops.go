// Package S3client moves codec artifacts (payloads and compressed
// digest-stream containers) to and from an S3-compatible backend.
package S3client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewClient connects to an S3-compatible endpoint. endpoint is a bare
// "host:port"; set secure for TLS endpoints.
func NewClient(endpoint, accessKey, secretKey string, secure bool) (*miniogo.Client, error) {
	client, err := miniogo.New(endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client for %s: %w", endpoint, err)
	}
	return client, nil
}

// ParseURI splits an "s3://bucket/object" URI.
func ParseURI(uri string) (bucket, object string, err error) {
	trimmed, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 URI: %s", uri)
	}
	bucket, object, ok = strings.Cut(trimmed, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid s3 URI %q: expected s3://bucket/object", uri)
	}
	return bucket, object, nil
}

// UploadBytes stores data as bucket/object.
func UploadBytes(ctx context.Context, client *miniogo.Client, bucket, object string, data []byte) error {
	opts := miniogo.PutObjectOptions{
		ContentType: "application/octet-stream",
	}
	_, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, object, err)
	}
	return nil
}

// DownloadBytes fetches bucket/object into memory. Artifacts here are
// digest streams and the payloads they reconstruct, both comfortably
// memory sized.
func DownloadBytes(ctx context.Context, client *miniogo.Client, bucket, object string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, object, miniogo.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, object, err)
	}
	return data, nil
}
