package recordsync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/recordsync"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   string
	Name string
}

func rowID(r row) string { return r.ID }

func staticList(rows ...row) recordsync.ListFunc[row] {
	return func(context.Context) ([]row, error) { return rows, nil }
}

func TestController_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once and clears loading", func(t *testing.T) {
		calls := 0
		c := recordsync.New(func(context.Context) ([]row, error) {
			calls++
			return []row{{ID: "1", Name: "Andi"}}, nil
		}, nil, rowID, recordsync.Options{})

		assert.NoError(t, c.Load(ctx))

		v := c.View()
		assert.Equal(t, 1, calls)
		assert.False(t, v.Loading)
		assert.Zero(t, v.SkeletonRows)
		assert.Len(t, v.Items, 1)
	})

	t.Run("skeleton while pending", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		c := recordsync.New(func(context.Context) ([]row, error) {
			close(started)
			<-release
			return nil, nil
		}, nil, rowID, recordsync.Options{})

		done := make(chan error)
		go func() { done <- c.Load(ctx) }()
		<-started

		v := c.View()
		assert.True(t, v.Loading)
		assert.Equal(t, recordsync.SkeletonRows, v.SkeletonRows)

		close(release)
		assert.NoError(t, <-done)
		assert.False(t, c.View().Loading)
	})

	t.Run("failure keeps list empty and reports error", func(t *testing.T) {
		c := recordsync.New(func(context.Context) ([]row, error) {
			return nil, errors.New("relation \"employees\" does not exist")
		}, nil, rowID, recordsync.Options{})

		err := c.Load(ctx)

		v := c.View()
		assert.Error(t, err)
		assert.False(t, v.Loading)
		assert.Empty(t, v.Items)
		assert.EqualError(t, v.Err, "relation \"employees\" does not exist")
		assert.Equal(t, recordsync.ToastError, v.Toast.Kind)
	})

	t.Run("response after close is discarded", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		c := recordsync.New(func(context.Context) ([]row, error) {
			close(started)
			<-release
			return []row{{ID: "1"}}, nil
		}, nil, rowID, recordsync.Options{})

		done := make(chan error)
		go func() { done <- c.Load(ctx) }()
		<-started
		c.Close()
		close(release)

		assert.ErrorIs(t, <-done, recordsync.ErrStale)
		assert.Empty(t, c.Items())
	})

	t.Run("older load loses to newer load", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		first := true
		c := recordsync.New(func(context.Context) ([]row, error) {
			if first {
				first = false
				close(started)
				<-release
				return []row{{ID: "old"}}, nil
			}
			return []row{{ID: "new"}}, nil
		}, nil, rowID, recordsync.Options{})

		done := make(chan error)
		go func() { done <- c.Load(ctx) }()
		<-started

		assert.NoError(t, c.Load(ctx))
		close(release)

		assert.ErrorIs(t, <-done, recordsync.ErrStale)
		assert.Equal(t, []row{{ID: "new"}}, c.Items())
	})
}

func TestController_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("splices without refetch", func(t *testing.T) {
		listCalls := 0
		list := func(context.Context) ([]row, error) {
			listCalls++
			return []row{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		}
		c := recordsync.New(list, func(context.Context, string) error { return nil }, rowID,
			recordsync.Options{DeletedMessage: "Data pegawai berhasil dihapus."})
		assert.NoError(t, c.Load(ctx))

		assert.NoError(t, c.Delete(ctx, "2"))

		v := c.View()
		assert.Equal(t, 1, listCalls)
		assert.Equal(t, []row{{ID: "1"}, {ID: "3"}}, v.Items)
		assert.Equal(t, recordsync.ToastSuccess, v.Toast.Kind)
		assert.Equal(t, "Data pegawai berhasil dihapus.", v.Toast.Message)
		assert.Equal(t, 2*time.Second, v.Toast.Timer)
		assert.Nil(t, c.View().Toast)
	})

	t.Run("removed id absent for any position", func(t *testing.T) {
		rows := []row{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
		for _, target := range rows {
			c := recordsync.New(staticList(rows...), func(context.Context, string) error { return nil }, rowID, recordsync.Options{})
			assert.NoError(t, c.Load(ctx))
			assert.NoError(t, c.Delete(ctx, target.ID))

			items := c.Items()
			assert.Len(t, items, len(rows)-1)
			for _, it := range items {
				assert.NotEqual(t, target.ID, it.ID)
			}
		}
	})

	t.Run("failure leaves list unchanged", func(t *testing.T) {
		c := recordsync.New(staticList(row{ID: "1"}, row{ID: "2"}),
			func(context.Context, string) error { return errors.New("permission denied") }, rowID, recordsync.Options{})
		assert.NoError(t, c.Load(ctx))

		err := c.Delete(ctx, "1")

		v := c.View()
		assert.EqualError(t, err, "permission denied")
		assert.Len(t, v.Items, 2)
		assert.Equal(t, recordsync.ToastError, v.Toast.Kind)
	})
}
