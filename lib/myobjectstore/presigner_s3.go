package myobjectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MarcGrol/fairywrenstore/lib/myconfig"
)

// R2 ignores the region but sigv4 needs one.
const r2Region = "auto"

type s3Presigner struct {
	bucket string
	client *s3.PresignClient
}

// NewPresigner creates a presigner for an S3 compatible bucket, such as Cloudflare R2.
func NewPresigner(config myconfig.ObjectStoreConfig) (Presigner, error) {
	if config.Endpoint == "" || config.BucketName == "" {
		return nil, fmt.Errorf("object store endpoint and bucket are required")
	}

	client := s3.NewFromConfig(aws.Config{
		Region:      r2Region,
		Credentials: credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
	}, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.Endpoint)
		o.UsePathStyle = true
	})

	return &s3Presigner{
		bucket: config.BucketName,
		client: s3.NewPresignClient(client),
	}, nil
}

func (p *s3Presigner) PresignGet(c context.Context, key string, expiry time.Duration) (string, error) {
	req, err := p.client.PresignGetObject(c, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("error presigning %s: %s", key, err)
	}

	return req.URL, nil
}
