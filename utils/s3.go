package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the part of *s3.Client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client loads the default AWS credential chain. A non-empty endpoint
// points the client at an S3-compatible server with path-style addressing.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

type S3Uploader struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

// NewS3Uploader writes into bucket. publicURL (e.g. a CloudFront domain) is
// used to build returned links; without it an s3:// URI is returned.
func NewS3Uploader(client ObjectPutter, bucket, publicURL string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

// UploadJSON stores body under "<prefix>-<unixnano>.json".
func (u *S3Uploader) UploadJSON(ctx context.Context, prefix string, body []byte) (key, url string, err error) {
	key = fmt.Sprintf("%s-%d.json", prefix, time.Now().UnixNano())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if u.publicURL != "" {
		return key, fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return key, fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}
