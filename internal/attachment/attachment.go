// Package attachment runs the upload-then-write sequence shared by every
// record type that references a stored file.
package attachment

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"
	"github.com/indocarisinternational/admin-caris/internal/storage"

	"go.uber.org/zap"
)

// File is one selected upload. A nil *File means no file was chosen.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// FromMultipart opens fh. The caller closes the returned closer.
func FromMultipart(fh *multipart.FileHeader) (*File, io.Closer, error) {
	if fh == nil {
		return nil, nopCloser{}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

//go:generate mockgen -source=attachment.go -destination=mock/attachment_mock.go -package=mock
type OrphanRecorder interface {
	RecordOrphan(ctx context.Context, bucket, path, reason string) error
}

type Manager struct {
	store   storage.Storage
	orphans OrphanRecorder
	bucket  string
	prefix  string
	now     func() time.Time
	logger  *zap.Logger
}

// NewManager binds a bucket and path prefix (e.g. "photos"). orphans may be nil.
func NewManager(
	store storage.Storage,
	orphans OrphanRecorder,
	bucket, prefix string,
	logger ...*zap.Logger,
) *Manager {
	l := zap.L().Named("attachment")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attachment")
	}
	return &Manager{
		store:   store,
		orphans: orphans,
		bucket:  bucket,
		prefix:  prefix,
		now:     time.Now,
		logger:  l.With(zap.String("bucket", bucket)),
	}
}

// WithClock replaces the timestamp source used for object paths.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) Bucket() string { return m.bucket }

// ObjectPath returns "<prefix>/<unix millis>_<file name>".
func (m *Manager) ObjectPath(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		base = "file"
	}
	return fmt.Sprintf("%s/%d_%s", m.prefix, m.now().UnixMilli(), base)
}

// URL resolves a stored path to a displayable URL; empty paths stay empty.
func (m *Manager) URL(p string) string {
	if p == "" {
		return ""
	}
	return m.store.PublicURL(m.bucket, p)
}

// Store uploads f and then calls write with the stored path. When f is nil,
// write receives "" and no upload happens. If write fails after an upload,
// the object is discarded and write's error is returned unchanged.
func (m *Manager) Store(
	ctx context.Context,
	f *File,
	upsert bool,
	write func(storedPath string) error,
) (string, error) {
	if f == nil {
		return "", write("")
	}

	stored, err := m.store.Upload(ctx, m.bucket, m.ObjectPath(f.Name), f.Body, f.ContentType, upsert)
	if err != nil {
		m.logger.Warn("upload failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("file", f.Name),
			zap.Error(err),
		)
		return "", apperror.StorageFailure(err)
	}

	if err := write(stored); err != nil {
		m.Discard(ctx, stored, err.Error())
		return "", err
	}

	return stored, nil
}

// Discard removes an upload that no record references. When removal fails
// the object is queued for asynchronous cleanup.
func (m *Manager) Discard(ctx context.Context, p, reason string) {
	if p == "" {
		return
	}
	// The request may already be cancelled; cleanup must still run.
	cleanupCtx := context.WithoutCancel(ctx)
	rid := contextutil.GetRequestID(ctx)

	err := m.store.Remove(cleanupCtx, m.bucket, p)
	if err == nil {
		m.logger.Info("orphaned upload removed", zap.String("request_id", rid), zap.String("path", p))
		return
	}

	m.logger.Warn("orphaned upload removal failed",
		zap.String("request_id", rid),
		zap.String("path", p),
		zap.Error(err),
	)
	if m.orphans == nil {
		return
	}
	if err := m.orphans.RecordOrphan(cleanupCtx, m.bucket, p, reason); err != nil {
		m.logger.Error("queue orphaned upload failed",
			zap.String("request_id", rid),
			zap.String("path", p),
			zap.Error(err),
		)
	}
}

// Release removes a file that a record stopped referencing. Failures are only logged.
func (m *Manager) Release(ctx context.Context, p string) {
	if p == "" {
		return
	}
	if err := m.store.Remove(context.WithoutCancel(ctx), m.bucket, p); err != nil {
		m.logger.Warn("release stored file failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("path", p),
			zap.Error(err),
		)
	}
}
