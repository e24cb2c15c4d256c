// Package recordsync holds the in-memory list behind one list screen: a
// single load, a splice on delete and a generation guard that discards
// responses arriving after a newer load or after teardown.
package recordsync

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	SkeletonRows      = 5
	DefaultToastDelay = 2 * time.Second
)

// ErrStale reports that a load finished after it was superseded or the controller was closed.
var ErrStale = errors.New("recordsync: stale response discarded")

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Kind    ToastKind
	Title   string
	Message string
	// Timer is zero for a blocking dialog that waits for confirmation.
	Timer time.Duration
}

type View[T any] struct {
	Loading      bool
	SkeletonRows int
	Items        []T
	Err          error
	Toast        *Toast
}

type (
	ListFunc[T any] func(ctx context.Context) ([]T, error)
	DeleteFunc      func(ctx context.Context, id string) error
	IDFunc[T any]   func(item T) string
)

type Options struct {
	// DeletedMessage is the toast text after a successful delete.
	DeletedMessage string
	ToastDelay     time.Duration
	Logger         *zap.Logger
}

type Controller[T any] struct {
	list   ListFunc[T]
	remove DeleteFunc
	idOf   IDFunc[T]
	opts   Options
	logger *zap.Logger

	mu      sync.Mutex
	items   []T
	loading bool
	err     error
	toast   *Toast
	gen     uint64
	closed  bool
}

func New[T any](list ListFunc[T], remove DeleteFunc, idOf IDFunc[T], opts Options) *Controller[T] {
	if opts.ToastDelay <= 0 {
		opts.ToastDelay = DefaultToastDelay
	}
	if opts.DeletedMessage == "" {
		opts.DeletedMessage = "Data berhasil dihapus."
	}
	l := opts.Logger
	if l == nil {
		l = zap.L()
	}
	return &Controller[T]{
		list:   list,
		remove: remove,
		idOf:   idOf,
		opts:   opts,
		logger: l.Named("recordsync"),
	}
}

// Load issues one list request. A response for an older generation, or one
// arriving after Close, is dropped and ErrStale is returned.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrStale
	}
	c.gen++
	gen := c.gen
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.gen {
		c.logger.Debug("discarding stale list response", zap.Uint64("generation", gen))
		return ErrStale
	}

	c.loading = false
	if err != nil {
		c.items = nil
		c.err = err
		c.toast = &Toast{Kind: ToastError, Title: "Gagal mengambil data", Message: err.Error()}
		return err
	}

	c.items = items
	return nil
}

// Delete removes id remotely and, on success, splices every matching row out
// of the in-memory list. On failure the list is left untouched.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if err := c.remove(ctx, id); err != nil {
		c.mu.Lock()
		c.toast = &Toast{Kind: ToastError, Title: "Gagal", Message: err.Error()}
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.toast = &Toast{
		Kind:    ToastSuccess,
		Title:   "Berhasil!",
		Message: c.opts.DeletedMessage,
		Timer:   c.opts.ToastDelay,
	}
	return nil
}

// Close tears the controller down; in-flight loads are discarded.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	c.mu.Unlock()
}

// View snapshots the current state. The pending toast is consumed.
func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View[T]{
		Loading: c.loading,
		Items:   append([]T(nil), c.items...),
		Err:     c.err,
		Toast:   c.toast,
	}
	if c.loading {
		v.SkeletonRows = SkeletonRows
	}
	c.toast = nil
	return v
}

// Items returns a copy of the current rows.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}
