// Package objectstore downloads documents from a Cloudflare R2 bucket through
// its S3-compatible API.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/artem13815/resumeparser/pkg/resume"
)

// Config описывает подключение к бакету.
type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	MaxBytes        int64
}

// s3API is the subset of the S3 client the store needs.
type s3API interface {
	GetObjectWithContext(ctx aws.Context, in *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
	HeadBucketWithContext(ctx aws.Context, in *s3.HeadBucketInput, opts ...request.Option) (*s3.HeadBucketOutput, error)
}

// Store implements resume.Fetcher.
type Store struct {
	client   s3API
	bucket   string
	maxBytes int64
}

// New builds an S3 client for the R2 endpoint. R2 only supports path-style
// addressing and the "auto" region.
func New(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("objectstore: endpoint and bucket are required")
	}
	if cfg.Region == "" {
		cfg.Region = "auto"
	}
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: session: %w", err)
	}
	return newStore(s3.New(sess), cfg.Bucket, cfg.MaxBytes), nil
}

func newStore(client s3API, bucket string, maxBytes int64) *Store {
	return &Store{client: client, bucket: bucket, maxBytes: maxBytes}
}

// Bucket returns the configured bucket name.
func (s *Store) Bucket() string { return s.bucket }

// Fetch downloads the object stored under key.
func (s *Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classify(key, err)
	}
	defer out.Body.Close()

	data, err := readAtMost(out.Body, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return data, nil
}

// Ping checks that the bucket is reachable with the configured credentials.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return classify(s.bucket, err)
	}
	return nil
}

func classify(key string, err error) error {
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", key, resume.ErrDocumentNotFound)
	}
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return fmt.Errorf("%s: %w", key, resume.ErrDocumentNotFound)
		}
		return fmt.Errorf("%s: %w: %s: %s", key, resume.ErrStorageUnavailable, aerr.Code(), strings.TrimSpace(aerr.Message()))
	}
	return fmt.Errorf("%s: %w: %v", key, resume.ErrStorageUnavailable, err)
}

// readAtMost reads r fully unless it is longer than max bytes. max <= 0 means no limit.
func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(r)
	}
	limited := io.LimitReader(r, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w: %v", resume.ErrStorageUnavailable, err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", resume.ErrTooLarge, max)
	}
	return b, nil
}
