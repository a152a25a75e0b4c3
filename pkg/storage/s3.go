package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PresignedUpload carries everything a client needs to PUT an object
// directly to the bucket.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}

// ObjectStorage is the upload capability the handlers consume. The S3 client
// is the production implementation; tests substitute fakes.
type ObjectStorage interface {
	Upload(ctx context.Context, prefix, filename, contentType string, body []byte) (string, error)
	PresignPut(ctx context.Context, prefix, filename, contentType string) (*PresignedUpload, error)
}

type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	region    string
	publicURL string
}

func NewS3Storage(ctx context.Context, bucket, region, publicURL string) (*S3Storage, error) {
	if bucket == "" {
		return nil, errors.New("S3_BUCKET is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

var invalidKeyChars = regexp.MustCompile(`[^a-z0-9._-]`)

// objectKey derives a deterministic key from the original filename so that
// re-uploading the same file reuses the existing object instead of creating
// a duplicate.
func objectKey(prefix, filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		base = "archivo"
	}

	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = base[i:]
		base = base[:i]
	}
	if base == "" {
		base = "archivo"
	}

	sanitized := invalidKeyChars.ReplaceAllString(base, "_")
	if len(sanitized) > 100 {
		sanitized = sanitized[:100]
	}
	return prefix + "/" + sanitized + ext
}

func (s *S3Storage) baseURL() string {
	if s.publicURL != "" {
		return s.publicURL
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.bucket, s.region)
}

func (s *S3Storage) exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object %s: %w", key, err)
	}
	return true, nil
}

// Upload stores body under a key derived from filename, skipping the PUT when
// an object with the same key already exists. Returns the public URL.
func (s *S3Storage) Upload(ctx context.Context, prefix, filename, contentType string, body []byte) (string, error) {
	key := objectKey(prefix, filename)

	ok, err := s.exists(ctx, key)
	if err != nil {
		return "", err
	}
	if ok {
		return s.baseURL() + "/" + key, nil
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.baseURL() + "/" + key, nil
}

// PresignPut returns a presigned PUT URL so large files go straight from the
// browser to the bucket.
func (s *S3Storage) PresignPut(ctx context.Context, prefix, filename, contentType string) (*PresignedUpload, error) {
	key := objectKey(prefix, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		Key:       key,
		PublicURL: s.baseURL() + "/" + key,
	}, nil
}
