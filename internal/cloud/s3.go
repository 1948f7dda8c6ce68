package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/domain"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/fixtures"
)

// ObjectGetter is the part of the S3 client the snapshot loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3SnapshotLoader reads a JSON document shaped like fixtures.Document from
// one object. The object is fetched on first use and kept in memory.
type S3SnapshotLoader struct {
	svc    ObjectGetter
	bucket string
	key    string

	mu  sync.Mutex
	doc *fixtures.Document
}

// NewS3Client creates a snapshot loader backed by the AWS SDK default credential chain.
func NewS3Client(ctx context.Context, region, bucket, key string) (*S3SnapshotLoader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3SnapshotLoader(s3.NewFromConfig(cfg), bucket, key), nil
}

func NewS3SnapshotLoader(svc ObjectGetter, bucket, key string) *S3SnapshotLoader {
	return &S3SnapshotLoader{svc: svc, bucket: bucket, key: key}
}

// document fetches the snapshot once. A failed fetch is retried on the next call.
func (c *S3SnapshotLoader) document(ctx context.Context) (*fixtures.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc != nil {
		return c.doc, nil
	}

	result, err := c.svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download s3://%s/%s: %w", c.bucket, c.key, err)
	}
	defer result.Body.Close()

	var doc fixtures.Document
	if err := json.NewDecoder(result.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", c.key, err)
	}
	c.doc = &doc
	return c.doc, nil
}

func (c *S3SnapshotLoader) LoadSites(ctx context.Context) ([]domain.Site, error) {
	doc, err := c.document(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Sites), nil
}

func (c *S3SnapshotLoader) LoadAssets(ctx context.Context) ([]domain.Asset, error) {
	doc, err := c.document(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Assets), nil
}

func (c *S3SnapshotLoader) LoadTickets(ctx context.Context) ([]domain.Ticket, error) {
	doc, err := c.document(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Tickets), nil
}

func (c *S3SnapshotLoader) LoadMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	doc, err := c.document(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.MaintenanceLogs), nil
}

func (c *S3SnapshotLoader) LoadUsers(ctx context.Context) ([]domain.User, error) {
	doc, err := c.document(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Users), nil
}
