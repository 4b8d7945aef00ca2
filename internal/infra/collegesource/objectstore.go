package collegesource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/campus-helpdesk/internal/domain/college"
	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
)

// ObjectStoreConfig locates the document in an S3-compatible bucket
// (Cloudflare R2, MinIO, S3).
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string
	Region    string
}

// ObjectStoreSource reads the document from object storage.
type ObjectStoreSource struct {
	client *minio.Client
	bucket string
	object string
}

// NewObjectStoreSource constructs the source.
func NewObjectStoreSource(cfg ObjectStoreConfig) (*ObjectStoreSource, error) {
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	return &ObjectStoreSource{client: client, bucket: cfg.Bucket, object: cfg.Object}, nil
}

// Fetch implements college.Source.
func (s *ObjectStoreSource) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapObjectError(err)
	}
	defer obj.Close()
	if _, err := obj.Stat(); err != nil {
		return nil, mapObjectError(err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapObjectError(err)
	}
	return data, nil
}

// Describe implements college.Source.
func (s *ObjectStoreSource) Describe() string {
	return fmt.Sprintf("objectstore:%s/%s", s.bucket, s.object)
}

func mapObjectError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return apperrors.Wrap(apperrors.CodeDataNotFound, "data file not found", err)
	}
	return fmt.Errorf("read college document: %w", err)
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ college.Source = (*ObjectStoreSource)(nil)
