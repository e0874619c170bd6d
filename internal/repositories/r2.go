package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rohits-web03/travelstory/internal/config"
)

const r2KeyPrefix = "uploads/"

// objectAPI is the part of *s3.Client the image store needs.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2ImageStore keeps uploads in a Cloudflare R2 bucket.
type R2ImageStore struct {
	client        objectAPI
	bucket        string
	publicBaseURL string
}

// NewR2ImageStore initializes the R2 client using static credentials and custom endpoint.
func NewR2ImageStore(cfg config.R2Config) (*R2ImageStore, error) {
	if cfg.AccountID == "" || cfg.BucketName == "" || cfg.PublicBaseURL == "" {
		return nil, errors.New("R2_ACCOUNT_ID, R2_BUCKET_NAME and R2_PUBLIC_BASE_URL are required for the r2 image store")
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return newR2ImageStore(client, cfg.BucketName, cfg.PublicBaseURL), nil
}

func newR2ImageStore(client objectAPI, bucket, publicBaseURL string) *R2ImageStore {
	return &R2ImageStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *R2ImageStore) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	key := r2KeyPrefix + name
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *R2ImageStore) Delete(ctx context.Context, ref string) error {
	name, err := ImageName(ref)
	if err != nil {
		return err
	}
	key := r2KeyPrefix + name

	exists, err := s.objectExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrImageNotFound
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// objectExists checks if a given object key exists in the bucket.
func (s *R2ImageStore) objectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *s3types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		// Other error (e.g. auth, network)
		return false, err
	}
	return true, nil
}
