package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Backend is an interface for reading marker tables and writing report
// artifacts. Supports both local filesystem and S3.
type Backend interface {
	// ReadFile reads a file relative to the base path
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile writes a file relative to the base path
	WriteFile(ctx context.Context, path string, data []byte) error

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)

	// BasePath returns the base path
	BasePath() string

	// IsS3 returns true if this is S3 storage
	IsS3() bool
}

// Local implements Backend for the local filesystem
type Local struct {
	basePath string
}

// NewLocal creates a new local storage backend rooted at basePath
func NewLocal(basePath string) *Local {
	return &Local{basePath: basePath}
}

func (l *Local) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.basePath, path))
}

func (l *Local) WriteFile(_ context.Context, path string, data []byte) error {
	fullPath := filepath.Join(l.basePath, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (l *Local) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.basePath, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (l *Local) BasePath() string {
	return l.basePath
}

func (l *Local) IsS3() bool {
	return false
}

// S3 implements Backend for AWS S3
type S3 struct {
	bucket     string
	prefix     string
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
}

// S3URI represents a parsed S3 URI
type S3URI struct {
	Bucket string
	Prefix string
}

// ParseS3URI parses an S3 URI like s3://bucket/path/to/object
func ParseS3URI(uri string) (*S3URI, error) {
	if !strings.HasPrefix(uri, "s3://") {
		return nil, fmt.Errorf("invalid S3 URI: must start with s3://")
	}

	path := strings.TrimPrefix(uri, "s3://")

	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid S3 URI: missing bucket name")
	}

	bucket := parts[0]
	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}

	return &S3URI{
		Bucket: bucket,
		Prefix: prefix,
	}, nil
}

// IsS3URI checks if a path is an S3 URI
func IsS3URI(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// NewS3 creates a new S3 storage backend.
// uri should be in format: s3://bucket/prefix
func NewS3(ctx context.Context, s3URI string, region string) (*S3, error) {
	uri, err := ParseS3URI(s3URI)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	// Report artifacts are small; modest part size and concurrency suffice
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 10 * 1024 * 1024
		u.Concurrency = 3
	})

	return &S3{
		bucket:     uri.Bucket,
		prefix:     uri.Prefix,
		client:     client,
		uploader:   uploader,
		downloader: manager.NewDownloader(client),
	}, nil
}

func (s *S3) fullKey(path string) string {
	key := path
	if s.prefix != "" {
		key = s.prefix + "/" + path
	}
	// Normalize path separators for S3 (always use /)
	return strings.ReplaceAll(key, "\\", "/")
}

func (s *S3) ReadFile(ctx context.Context, path string) ([]byte, error) {
	key := s.fullKey(path)

	buf := manager.NewWriteAtBuffer([]byte{})
	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", s.bucket, key, err)
	}

	return buf.Bytes(), nil
}

func (s *S3) WriteFile(ctx context.Context, path string, data []byte) error {
	key := s.fullKey(path)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(string(data)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3://%s/%s: %w", s.bucket, key, err)
	}

	return nil
}

func (s *S3) Exists(ctx context.Context, path string) (bool, error) {
	key := s.fullKey(path)

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *S3) BasePath() string {
	if s.prefix == "" {
		return fmt.Sprintf("s3://%s", s.bucket)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.prefix)
}

func (s *S3) IsS3() bool {
	return true
}

// New creates the appropriate storage backend based on path
func New(ctx context.Context, path string, region string) (Backend, error) {
	if IsS3URI(path) {
		return NewS3(ctx, path, region)
	}
	return NewLocal(path), nil
}

// Read is a one-shot read of a full path, local or s3://bucket/key
func Read(ctx context.Context, path string, region string) ([]byte, error) {
	if IsS3URI(path) {
		uri, err := ParseS3URI(path)
		if err != nil {
			return nil, err
		}
		if uri.Prefix == "" {
			return nil, fmt.Errorf("invalid S3 URI: missing object key in %s", path)
		}
		backend, err := NewS3(ctx, "s3://"+uri.Bucket, region)
		if err != nil {
			return nil, err
		}
		return backend.ReadFile(ctx, uri.Prefix)
	}
	return os.ReadFile(path)
}
