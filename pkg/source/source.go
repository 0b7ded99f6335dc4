package source

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlconv/internal/errors"
)

// Stdin is the reference for standard input.
const Stdin = "-"

const s3Scheme = "s3://"

// ObjectGetter is the part of the S3 client used to fetch objects.
// *s3.Client implements it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener resolves markup references.
type Opener struct {
	// S3 fetches s3:// references. Without it those references fail.
	S3 ObjectGetter

	// Stdin replaces os.Stdin for the "-" reference.
	Stdin io.Reader

	// MaxBytes limits ReadAll. 0 means unlimited.
	MaxBytes int64

	// Logger receives debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Open returns a reader for ref. The caller closes it.
func (o *Opener) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case ref == "":
		return nil, errors.New("H020").WithDetail("empty source reference")

	case ref == Stdin:
		logger.Debug("reading markup", "source", "stdin")
		if o.Stdin != nil {
			return io.NopCloser(o.Stdin), nil
		}
		return io.NopCloser(os.Stdin), nil

	case strings.HasPrefix(ref, s3Scheme):
		bucket, key, ok := ParseS3URI(ref)
		if !ok {
			return nil, errors.New("H020").
				WithDetailf("%q is not a valid S3 reference", ref).
				WithSuggestion("Use s3://bucket/key")
		}
		if o.S3 == nil {
			return nil, errors.New("H020").WithDetail("no S3 client configured")
		}
		logger.Debug("reading markup", "source", "s3", "bucket", bucket, "key", key)
		out, err := o.S3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, errors.New("H020").WithDetail(ref).Wrap(err)
		}
		if o.MaxBytes > 0 && out.ContentLength != nil && *out.ContentLength > o.MaxBytes {
			out.Body.Close()
			return nil, tooLarge(ref, o.MaxBytes)
		}
		return out.Body, nil

	default:
		logger.Debug("reading markup", "source", "file", "path", ref)
		f, err := os.Open(ref)
		if err != nil {
			return nil, errors.New("H020").WithDetail(ref).Wrap(err)
		}
		return f, nil
	}
}

// ReadAll reads the whole markup behind ref.
func (o *Opener) ReadAll(ctx context.Context, ref string) ([]byte, error) {
	rc, err := o.Open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := io.Reader(rc)
	if o.MaxBytes > 0 {
		r = io.LimitReader(rc, o.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("H020").WithDetail(ref).Wrap(err)
	}
	if o.MaxBytes > 0 && int64(len(data)) > o.MaxBytes {
		return nil, tooLarge(ref, o.MaxBytes)
	}
	return data, nil
}

func tooLarge(ref string, limit int64) error {
	return errors.New("H021").
		WithDetailf("%s exceeds %d bytes", ref, limit).
		WithSuggestion("Raise maxInputBytes in htmlconv.json or --max-bytes")
}

// ParseS3URI splits s3://bucket/key. Both parts must be non-empty.
func ParseS3URI(ref string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(ref, s3Scheme)
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
