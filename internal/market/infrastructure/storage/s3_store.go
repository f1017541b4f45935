package storage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/apetrenko/file-market/internal/pkg/logging"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3Settings struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Store keeps blobs as objects keyed by ownership-scoped paths. S3 has no
// rename, so a move is copy, verify, delete-original; a failed delete leaves
// an orphaned seller-scoped copy behind, which is logged and tolerated.
type S3Store struct {
	s3Client *s3.S3
	bucket   string
	logger   logging.Logger
}

func NewS3Store(settings S3Settings, logger logging.Logger) (*S3Store, error) {
	awsConfig := &aws.Config{
		Region: aws.String(settings.Region),
		Credentials: credentials.NewStaticCredentials(
			settings.AccessKey,
			settings.SecretKey,
			"",
		),
	}

	// Support MinIO for local development
	if settings.Endpoint != "" {
		awsConfig.Endpoint = aws.String(settings.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		s3Client: s3.New(sess),
		bucket:   settings.Bucket,
		logger:   logger,
	}, nil
}

func (ss *S3Store) Move(ctx context.Context, oldPath, newPath string) error {
	copySource := url.PathEscape(ss.bucket + "/" + oldPath)

	_, err := ss.s3Client.CopyObjectWithContext(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(ss.bucket),
		CopySource: aws.String(copySource),
		Key:        aws.String(newPath),
	})
	if err != nil {
		return fmt.Errorf("failed to copy object to %s: %w", newPath, err)
	}

	// Verify the copy landed before touching the original.
	_, err = ss.s3Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(newPath),
	})
	if err != nil {
		return fmt.Errorf("copied object %s not readable: %w", newPath, err)
	}

	_, err = ss.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(oldPath),
	})
	if err != nil {
		// The buyer already holds a valid copy; the original is an orphan
		// awaiting cleanup, not a failure.
		ss.logger.Warn("failed to delete original object after copy", "key", oldPath, "error", err.Error())
	}

	return nil
}
