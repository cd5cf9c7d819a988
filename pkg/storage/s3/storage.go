package s3

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/mosajjal/ebnotifier/pkg/logger"
	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/mosajjal/ebnotifier/pkg/storage"
)

// PutObjectAPI is the part of the S3 client used by Storage
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Storage implements S3 backend for storage
type Storage struct {
	config    storage.StorageConfig
	client    PutObjectAPI
	bucket    string
	keyPrefix string
	now       func() time.Time
}

// NewStorage creates a new S3 storage backend
func NewStorage(cfg storage.StorageConfig, awsCfg aws.Config) (*Storage, error) {
	return NewStorageWithClient(cfg, s3.NewFromConfig(awsCfg))
}

// NewStorageWithClient creates a storage backend on top of an existing client
func NewStorageWithClient(cfg storage.StorageConfig, client PutObjectAPI) (*Storage, error) {
	bucket, keyPrefix, err := parseBucketURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	return &Storage{
		config:    cfg,
		client:    client,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}, nil
}

// parseBucketURL accepts virtual-hosted (bucket.s3.region.amazonaws.com/prefix)
// and path-style (s3.region.amazonaws.com/bucket/prefix) URLs
func parseBucketURL(raw string) (bucket, keyPrefix string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL: %w", err)
	}

	if strings.Contains(u.Host, ".s3.") || strings.Contains(u.Host, ".s3-") {
		bucket = strings.Split(u.Host, ".")[0]
		keyPrefix = strings.Trim(u.Path, "/")
	} else {
		pathParts := strings.SplitN(strings.Trim(u.Path, "/"), "/", 2)
		bucket = pathParts[0]
		if len(pathParts) > 1 {
			keyPrefix = pathParts[1]
		}
	}

	if bucket == "" {
		return "", "", fmt.Errorf("could not parse bucket name from URL: %s", raw)
	}
	return bucket, keyPrefix, nil
}

func (s *Storage) objectKey(now time.Time) string {
	key := fmt.Sprintf("%d/%02d/%02d/%02d/%s-%s.json.gz",
		now.Year(),
		now.Month(),
		now.Day(),
		now.Hour(),
		now.Format("2006-01-02T15:04:05.000Z"),
		uuid.New().String(),
	)
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + "/" + key
}

// Store writes the deliveries as gzipped JSON lines to a single object
func (s *Storage) Store(ctx context.Context, deliveries []*models.FailedDelivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	log := logger.For("storage/s3", "Store")

	var buf bytes.Buffer
	gz, _ := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	enc := json.NewEncoder(gz)
	for _, d := range deliveries {
		if err := enc.Encode(d); err != nil {
			log.WithError(err).Warn("failed to encode delivery")
		}
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to compress deliveries: %w", err)
	}

	key := s.objectKey(s.now().UTC())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(s.bucket),
		Key:             aws.String(key),
		Body:            bytes.NewReader(buf.Bytes()),
		ContentType:     aws.String("application/x-ndjson"),
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.WithField("bucket", s.bucket).WithField("key", key).Infof("stored %d failed deliveries", len(deliveries))
	return nil
}

// Close cleans up resources
func (s *Storage) Close() error {
	return nil
}
