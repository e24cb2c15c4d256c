package storage

import (
	"context"
	"io"
)

// Buckets used by the back-office record types.
const (
	BucketEmployees = "employees"
	BucketProjects  = "projects"
	BucketClients   = "clients"
	BucketBlogs     = "blogs"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	// Upload stores body under path and returns the stored path. Without upsert an existing object is an error.
	Upload(ctx context.Context, bucket, path string, body io.Reader, contentType string, upsert bool) (string, error)
	PublicURL(bucket, path string) string
	Remove(ctx context.Context, bucket string, paths ...string) error
}
