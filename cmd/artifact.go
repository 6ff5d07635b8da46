package cmd

import (
	"context"
	"os"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/SCCodec/internal"
	S3client "github.com/zhengshuai-xiao/SCCodec/pkg/s3client"
)

const (
	envAccessKey = "SCC_ACCESS_KEY"
	envSecretKey = "SCC_SECRET_KEY"
)

func isS3URI(uri string) bool {
	return strings.HasPrefix(uri, "s3://")
}

func s3ClientFromFlags(c *cli.Context) (*miniogo.Client, error) {
	return S3client.NewClient(
		c.String("s3-endpoint"),
		os.Getenv(envAccessKey),
		os.Getenv(envSecretKey),
		c.Bool("s3-secure"),
	)
}

// loadArtifact reads a payload or container from a local path or an
// s3://bucket/object URI.
func loadArtifact(ctx context.Context, c *cli.Context, uri string) ([]byte, error) {
	if !isS3URI(uri) {
		return internal.LoadFile(uri)
	}
	bucket, object, err := S3client.ParseURI(uri)
	if err != nil {
		return nil, err
	}
	client, err := s3ClientFromFlags(c)
	if err != nil {
		return nil, err
	}
	return S3client.DownloadBytes(ctx, client, bucket, object)
}

// storeArtifact writes a payload or container to a local path or an
// s3://bucket/object URI.
func storeArtifact(ctx context.Context, c *cli.Context, uri string, data []byte) error {
	if !isS3URI(uri) {
		return internal.StoreFile(uri, data)
	}
	bucket, object, err := S3client.ParseURI(uri)
	if err != nil {
		return err
	}
	client, err := s3ClientFromFlags(c)
	if err != nil {
		return err
	}
	return S3client.UploadBytes(ctx, client, bucket, object, data)
}
