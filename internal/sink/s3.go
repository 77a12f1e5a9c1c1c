package sink

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// S3 uploads objects to a bucket under a configured key prefix.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 builds an S3 sink from the s3.* config keys: region,
// access_key_id, secret_access_key, bucket, save_path.
func NewS3(ctx context.Context) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(viper.GetString("s3.region")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("s3.access_key_id"),
			viper.GetString("s3.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: viper.GetString("s3.bucket"),
		prefix: viper.GetString("s3.save_path"),
	}, nil
}

func (s *S3) Put(ctx context.Context, key string, r io.Reader) error {
	// PutObject wants a seekable body for signing.
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	fullKey := path.Join(s.prefix, key)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fullKey),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"bucket": s.bucket,
		"key":    fullKey,
		"bytes":  len(body),
	}).Debug("uploaded object")

	return nil
}
