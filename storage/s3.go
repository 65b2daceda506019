package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archiver keeps copies of generated images in object storage and serves
// them back through short-lived URLs
type Archiver interface {
	Upload(ctx context.Context, objectKey string, data []byte, contentType string) error
	PresignURL(ctx context.Context, objectKey string) (string, error)
}

// S3Archive implements Archiver against an S3 bucket
type S3Archive struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Archive initializes the S3 client for the given region and bucket
func NewS3Archive(ctx context.Context, region, bucket string) (*S3Archive, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(cfg)
	log.Println("S3 Client Initialized")
	return &S3Archive{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// Upload writes an object to the bucket
func (a *S3Archive) Upload(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %v", err)
	}
	return nil
}

// PresignURL generates a presigned GET URL for an object
func (a *S3Archive) PresignURL(ctx context.Context, objectKey string) (string, error) {
	request, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}
	return request.URL, nil
}
