//go:build unit

package memstore_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func seededCatalog(t *testing.T, products ...product.Product) *memstore.Catalog {
	t.Helper()
	c := newCatalog(time.Second)
	require.NoError(t, c.Seed(context.Background(), products...))
	return c
}

func TestCatalog_Lookup(t *testing.T) {
	ctx := context.Background()
	p1 := builder.NewProductBuilder().WithCode("P1").MustBuildDomain()
	c := seededCatalog(t, p1)

	t.Run("known code", func(t *testing.T) {
		got, err := c.Lookup(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, p1, got)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := c.Lookup(ctx, "NOPE")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCatalog_Seed(t *testing.T) {
	ctx := context.Background()
	p1 := builder.NewProductBuilder().WithCode("P1").MustBuildDomain()
	p2 := builder.NewProductBuilder().WithCode("P2").MustBuildDomain()

	t.Run("duplicate within batch rejects whole batch", func(t *testing.T) {
		c := newCatalog(time.Second)
		err := c.Seed(ctx, p1, p2, p1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("already registered code", func(t *testing.T) {
		c := seededCatalog(t, p1)
		err := c.Seed(ctx, p2, p1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("zero product", func(t *testing.T) {
		c := newCatalog(time.Second)
		err := c.Seed(ctx, product.Product{})
		assert.True(t, infra.IsKind(err, infra.KindInvalidEntity))
	})
}

func TestCatalog_List(t *testing.T) {
	c := seededCatalog(t,
		builder.NewProductBuilder().WithCode("B").MustBuildDomain(),
		builder.NewProductBuilder().WithCode("C").MustBuildDomain(),
		builder.NewProductBuilder().WithCode("A").MustBuildDomain(),
	)

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Code())
	assert.Equal(t, "B", products[1].Code())
	assert.Equal(t, "C", products[2].Code())
}

func TestCatalog_ApplyUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces product sharing the code", func(t *testing.T) {
		p1 := builder.NewProductBuilder().WithCode("P1").WithStock(10).MustBuildDomain()
		c := seededCatalog(t, p1)

		updated, err := p1.Decrease(4)
		require.NoError(t, err)
		require.NoError(t, c.ApplyUpdate(ctx, updated))

		got, err := c.Lookup(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, 6, got.Stock())
	})

	t.Run("unknown code", func(t *testing.T) {
		c := seededCatalog(t, builder.NewProductBuilder().WithCode("P1").MustBuildDomain())

		err := c.ApplyUpdate(ctx, builder.NewProductBuilder().WithCode("P2").MustBuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCatalog_WithinLock(t *testing.T) {
	ctx := context.Background()

	t.Run("locked section sees NotFound after removal", func(t *testing.T) {
		p1 := builder.NewProductBuilder().WithCode("P1").WithStock(5).MustBuildDomain()
		c := seededCatalog(t, p1)

		err := c.WithinLock(ctx, "P1", func(ctx context.Context, locked *memstore.LockedProduct) error {
			require.NoError(t, c.Remove(ctx, "P1"))
			updated, derr := locked.Product().Decrease(1)
			require.NoError(t, derr)
			return locked.ApplyUpdate(updated)
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("locked section sees NotFound after replacement", func(t *testing.T) {
		p1 := builder.NewProductBuilder().WithCode("P1").WithStock(5).MustBuildDomain()
		c := seededCatalog(t, p1)

		err := c.WithinLock(ctx, "P1", func(ctx context.Context, locked *memstore.LockedProduct) error {
			require.NoError(t, c.Replace(ctx, builder.NewProductBuilder().WithCode("P1").WithStock(99).MustBuildDomain()))
			return locked.ApplyUpdate(p1)
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		got, err := c.Lookup(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, 99, got.Stock(), "replacement must not be overwritten by the stale section")
	})

	t.Run("code mismatch is rejected", func(t *testing.T) {
		c := seededCatalog(t, builder.NewProductBuilder().WithCode("P1").MustBuildDomain())

		err := c.WithinLock(ctx, "P1", func(ctx context.Context, locked *memstore.LockedProduct) error {
			return locked.ApplyUpdate(builder.NewProductBuilder().WithCode("P2").MustBuildDomain())
		})
		assert.True(t, infra.IsKind(err, infra.KindInvalidEntity))
	})

	t.Run("lock wait honours context", func(t *testing.T) {
		c := newCatalog(0)
		require.NoError(t, c.Seed(ctx, builder.NewProductBuilder().WithCode("P1").MustBuildDomain()))

		held := make(chan struct{})
		release := make(chan struct{})
		var g errgroup.Group
		g.Go(func() error {
			return c.WithinLock(ctx, "P1", func(context.Context, *memstore.LockedProduct) error {
				close(held)
				<-release
				return nil
			})
		})
		<-held

		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		err := c.WithinLock(waitCtx, "P1", func(context.Context, *memstore.LockedProduct) error {
			t.Fatal("must not enter while another section holds the lock")
			return nil
		})
		assert.True(t, infra.IsKind(err, infra.KindLockAborted))

		close(release)
		require.NoError(t, g.Wait())
	})

	t.Run("configured lock timeout bounds the wait", func(t *testing.T) {
		c := newCatalog(20 * time.Millisecond)
		require.NoError(t, c.Seed(ctx, builder.NewProductBuilder().WithCode("P1").MustBuildDomain()))

		held := make(chan struct{})
		release := make(chan struct{})
		var g errgroup.Group
		g.Go(func() error {
			return c.WithinLock(ctx, "P1", func(context.Context, *memstore.LockedProduct) error {
				close(held)
				<-release
				return nil
			})
		})
		<-held

		err := c.WithinLock(ctx, "P1", func(context.Context, *memstore.LockedProduct) error { return nil })
		assert.True(t, infra.IsKind(err, infra.KindLockAborted))

		close(release)
		require.NoError(t, g.Wait())
	})

	t.Run("different codes never block each other", func(t *testing.T) {
		c := seededCatalog(t,
			builder.NewProductBuilder().WithCode("P1").MustBuildDomain(),
			builder.NewProductBuilder().WithCode("P2").MustBuildDomain(),
		)

		held := make(chan struct{})
		release := make(chan struct{})
		var g errgroup.Group
		g.Go(func() error {
			return c.WithinLock(ctx, "P1", func(context.Context, *memstore.LockedProduct) error {
				close(held)
				<-release
				return nil
			})
		})
		<-held

		waitCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		entered := false
		err := c.WithinLock(waitCtx, "P2", func(context.Context, *memstore.LockedProduct) error {
			entered = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, entered)

		close(release)
		require.NoError(t, g.Wait())
	})

	t.Run("concurrent decrements never oversell", func(t *testing.T) {
		const stock, workers = 10, 50
		c := seededCatalog(t, builder.NewProductBuilder().WithCode("P1").WithStock(stock).MustBuildDomain())

		var succeeded atomic.Int32
		var g errgroup.Group
		for i := 0; i < workers; i++ {
			g.Go(func() error {
				return c.WithinLock(ctx, "P1", func(ctx context.Context, locked *memstore.LockedProduct) error {
					p := locked.Product()
					if !p.CanFulfill(1) {
						return nil
					}
					updated, err := p.Decrease(1)
					if err != nil {
						return err
					}
					if err := locked.ApplyUpdate(updated); err != nil {
						return err
					}
					succeeded.Add(1)
					return nil
				})
			})
		}
		require.NoError(t, g.Wait())

		got, err := c.Lookup(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Stock())
		assert.Equal(t, int32(stock), succeeded.Load())
	})
}

func TestCatalog_RemoveReplace(t *testing.T) {
	ctx := context.Background()
	c := seededCatalog(t, builder.NewProductBuilder().WithCode("P1").MustBuildDomain())

	assert.True(t, infra.IsKind(c.Remove(ctx, "NOPE"), infra.KindNotFound))
	assert.True(t, infra.IsKind(c.Replace(ctx, builder.NewProductBuilder().WithCode("NOPE").MustBuildDomain()), infra.KindNotFound))

	require.NoError(t, c.Remove(ctx, "P1"))
	_, err := c.Lookup(ctx, "P1")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = c.WithinLock(ctx, "P1", func(context.Context, *memstore.LockedProduct) error { return nil })
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
