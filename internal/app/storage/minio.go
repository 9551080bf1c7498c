package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioConfig describes an S3-compatible bucket
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Prefix    string
	UseSSL    bool
}

// MinioStore implements ObjectStore on any S3-compatible service using MinIO's client
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewMinioStore creates a new object store client. It does not contact the
// service; the first List or Download does.
func NewMinioStore(cfg MinioConfig, logger *zap.Logger) (*MinioStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupAuto,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
	}, nil
}

// ListAudioFiles lists every audio object under the configured prefix
func (s *MinioStore) ListAudioFiles(ctx context.Context) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	audio := FilterAudioKeys(keys)
	s.logger.Debug("listed audio files",
		zap.String("bucket", s.bucket),
		zap.Int("objects", len(keys)),
		zap.Int("audio", len(audio)),
	)
	return audio, nil
}

// Download fetches key into destinationPath, replacing any existing file
func (s *MinioStore) Download(ctx context.Context, key, destinationPath string) error {
	if err := s.client.FGetObject(ctx, s.bucket, key, destinationPath, minio.GetObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return fmt.Errorf("object %s not found in bucket %s: %w", key, s.bucket, err)
		}
		return fmt.Errorf("failed to download %s: %w", key, err)
	}

	s.logger.Debug("downloaded object",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.String("path", destinationPath),
	)
	return nil
}
