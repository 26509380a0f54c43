package s3wrapper

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const tempFilePrefix = "ocr_conformance_"

//go:generate moq -out client_moq_test.go . downloader client
type downloader interface {
	Download(io.WriterAt, *s3.GetObjectInput, ...func(*s3manager.Downloader)) (n int64, err error)
}

type client interface {
	HeadBucket(*s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	ListObjectsV2(*s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error)
}

// BucketClient exposes a sample-file bucket: listing the corpus and pulling
// individual samples down to temp files.
type BucketClient struct {
	client     client
	downloader downloader

	log *slog.Logger

	bucket         string
	tempFilePrefix string
}

var ErrNoAttempts = errors.New("invalid number of attempts, must be > 0")

func NewClient(c client, d downloader, log *slog.Logger, bucket, tempFilePrefix string) *BucketClient {
	return &BucketClient{
		client:         c,
		downloader:     d,
		log:            log.WithGroup("S3"),
		bucket:         bucket,
		tempFilePrefix: tempFilePrefix,
	}
}

func NewFromSecrets(key, secret, endpoint, region, bucket string, insecure bool, log *slog.Logger) (*BucketClient, error) {
	s3Config := &aws.Config{
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials(key, secret, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		DisableSSL:       aws.Bool(insecure),
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("creating s3 session, %w", err)
	}
	s3Client := s3.New(sess)
	s3Downloader := s3manager.NewDownloader(sess)

	return NewClient(s3Client, s3Downloader, log, bucket, tempFilePrefix), nil
}

func (c *BucketClient) CheckConnectivity(attempts int, dur time.Duration) error {
	if attempts < 1 {
		return fmt.Errorf("checking connectivity, passed %d, %w", attempts, ErrNoAttempts)
	}
	var err error
	for i := 0; i < attempts; i++ {
		_, err = c.client.HeadBucket(&s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
		if err != nil {
			time.Sleep(dur)
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to initialize bucket client, %w", err)
}

// ListKeys returns every object key in the sample bucket. The corpus is a
// flat listing, so no prefix or extension filtering is applied.
func (c *BucketClient) ListKeys() ([]string, error) {
	c.log.Info("listing sample objects", slog.String("bucket", c.bucket))
	listObjsResponse, err := c.client.ListObjectsV2(&s3.ListObjectsV2Input{Bucket: aws.String(c.bucket)})
	if err != nil {
		return nil, fmt.Errorf("listing objects from bucket %s, %w", c.bucket, err)
	}

	keys := make([]string, 0, len(listObjsResponse.Contents))
	for _, object := range listObjsResponse.Contents {
		keys = append(keys, *object.Key)
	}

	c.log.Info("sample objects received", slog.Int("count", len(keys)))

	return keys, nil
}

func (c *BucketClient) Download(key string) (*os.File, error) {
	f, err := os.CreateTemp("", c.tempFilePrefix)
	if err != nil {
		return nil, fmt.Errorf("creating local sample file, %w", err)
	}

	_, err = c.downloader.Download(f, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return f, fmt.Errorf("downloading sample file from s3, %w", err)
	}

	return f, nil
}
