package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"aether/backend/services/console-service/internal/models"
)

// ObjectReader pulls the historical telemetry dataset from an S3-compatible
// bucket. Credentials and region are supplied by configuration; every
// failure surfaces as ErrDataSourceUnavailable so callers can degrade to an
// empty dataset.
type ObjectReader struct {
	client *minio.Client
	bucket string
	object string
}

// Options configures the reader.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Object    string
}

// NewObjectReader builds the S3 client. Construction fails only on a
// malformed endpoint; connectivity problems show up per fetch.
func NewObjectReader(opts Options) (*ObjectReader, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: init client: %w", err)
	}

	return &ObjectReader{client: client, bucket: opts.Bucket, object: opts.Object}, nil
}

// FetchDataset downloads and decodes the CSV dataset.
func (r *ObjectReader) FetchDataset(ctx context.Context) ([]map[string]float64, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get %s/%s: %v", models.ErrDataSourceUnavailable, r.bucket, r.object, err)
	}
	defer obj.Close()

	rows, err := ParseCSV(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s/%s: %v", models.ErrDataSourceUnavailable, r.bucket, r.object, err)
	}
	return rows, nil
}
