package feed

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/zerr"
)

// Backend reads named files of a feed.
type Backend interface {
	// Open returns the file content. Missing files yield domain.ErrContentNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// String describes the backend location for messages.
	String() string
}

// DirBackend reads a feed from a local directory.
type DirBackend struct {
	root string
}

// NewDirBackend creates a DirBackend rooted at dir.
func NewDirBackend(dir string) *DirBackend {
	return &DirBackend{root: dir}
}

// Open opens name below the feed directory. Names escaping the directory are rejected.
func (b *DirBackend) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.OpenInRoot(b.root, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err := zerr.With(zerr.Wrap(domain.ErrContentNotFound, "failed to open feed file"), "file", name)
			return nil, zerr.With(err, "feed", b.root)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open feed file"), "file", name)
	}
	return f, nil
}

func (b *DirBackend) String() string {
	return b.root
}

// S3API is the subset of the S3 client used by S3Backend.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Backend reads a feed from an S3 bucket under a key prefix.
type S3Backend struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Backend creates an S3Backend.
func NewS3Backend(client S3API, bucket, prefix string) *S3Backend {
	return &S3Backend{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open fetches prefix+name from the bucket.
func (b *S3Backend) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := b.prefix + name
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			err := zerr.With(zerr.Wrap(domain.ErrContentNotFound, "failed to fetch feed object"), "file", key)
			return nil, zerr.With(err, "bucket", b.bucket)
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to fetch feed object"), "key", key), "bucket", b.bucket)
	}
	return out.Body, nil
}

func (b *S3Backend) String() string {
	return "s3://" + b.bucket + "/" + b.prefix
}

// NewS3Client creates an anonymous S3 client for a source.
// A custom endpoint switches the client to path-style addressing.
func NewS3Client(cfg domain.SourceConfig) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.AnonymousCredentials{},
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}
