package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

var ErrObjectExists = errors.New("storage: object already exists")

// s3API is the subset of the S3 client used here, so tests can inject a fake.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

type S3Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	BucketPrefix string
	PublicURL    string
}

type S3Storage struct {
	client s3API
	opts   S3Options
	logger *zap.Logger
}

func NewS3Storage(ctx context.Context, opts S3Options, logger ...*zap.Logger) (*S3Storage, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if opts.Endpoint != "" {
		ep := opts.Endpoint
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = &ep
			o.UsePathStyle = true
		})
	}

	return newS3Storage(s3.NewFromConfig(cfg, s3Opts...), opts, logger...), nil
}

func newS3Storage(client s3API, opts S3Options, logger ...*zap.Logger) *S3Storage {
	l := zap.L().Named("storage.s3")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.s3")
	}
	return &S3Storage{client: client, opts: opts, logger: l}
}

func (s *S3Storage) bucketName(bucket string) string {
	return s.opts.BucketPrefix + bucket
}

func (s *S3Storage) Upload(
	ctx context.Context,
	bucket, path string,
	body io.Reader,
	contentType string,
	upsert bool,
) (string, error) {
	name := s.bucketName(bucket)
	input := &s3.PutObjectInput{
		Bucket: &name,
		Key:    &path,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if !upsert {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		if isPreconditionFailed(err) {
			return "", ErrObjectExists
		}
		return "", fmt.Errorf("put object %q: %w", path, err)
	}

	s.logger.Debug("object uploaded", zap.String("bucket", name), zap.String("path", path))
	return path, nil
}

// PublicURL builds the displayable URL of path. An empty path yields "".
func (s *S3Storage) PublicURL(bucket, path string) string {
	if path == "" {
		return ""
	}
	name := s.bucketName(bucket)
	key := escapeKey(path)

	switch {
	case s.opts.PublicURL != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.opts.PublicURL, "/"), name, key)
	case s.opts.Endpoint != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.opts.Endpoint, "/"), name, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", name, s.opts.Region, key)
	}
}

func (s *S3Storage) Remove(ctx context.Context, bucket string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	name := s.bucketName(bucket)

	objects := make([]types.ObjectIdentifier, 0, len(paths))
	for _, p := range paths {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(p)})
	}

	out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &name,
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("delete objects in %q: %w", name, err)
	}
	if out != nil && len(out.Errors) > 0 {
		first := out.Errors[0]
		return fmt.Errorf("delete object %q: %s", aws.ToString(first.Key), aws.ToString(first.Message))
	}

	s.logger.Debug("objects removed", zap.String("bucket", name), zap.Strings("paths", paths))
	return nil
}

func escapeKey(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func isPreconditionFailed(err error) bool {
	var apiErr interface{ ErrorCode() string }
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "PreconditionFailed"
	}
	return false
}
