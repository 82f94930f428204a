package memstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/internal/pkg/errs"
)

// catalogEntry owns the exclusive lock for one product code. The snapshot is
// published atomically so readers never wait on a writer.
type catalogEntry struct {
	lock    chan struct{}
	current atomic.Pointer[product.Product]
}

func newCatalogEntry(p product.Product) *catalogEntry {
	e := &catalogEntry{lock: make(chan struct{}, 1)}
	e.current.Store(&p)
	return e
}

func (e *catalogEntry) snapshot() product.Product {
	return *e.current.Load()
}

// Catalog is the in-memory product store. mu guards the code→entry map only;
// per-product mutation is serialized by each entry's lock.
type Catalog struct {
	mu          sync.RWMutex
	entries     map[string]*catalogEntry
	logger      *slog.Logger
	lockTimeout time.Duration
}

func NewCatalog(logger *slog.Logger, cfg config.CatalogConfig) *Catalog {
	return &Catalog{
		entries:     make(map[string]*catalogEntry),
		logger:      logger,
		lockTimeout: cfg.LockTimeout,
	}
}

func (c *Catalog) entry(code string) (*catalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[code]
	return e, ok
}

func (c *Catalog) notFound(code string) error {
	return infra.WrapRepoErr(c.logger, infra.KindNotFound, "product not found",
		errs.Newf("product code %q is not registered", code))
}

// Lookup reads the latest published snapshot without taking the product lock.
// A locked section may still roll that stock back if its order is not committed.
func (c *Catalog) Lookup(ctx context.Context, code string) (product.Product, error) {
	e, ok := c.entry(code)
	if !ok {
		return product.Product{}, c.notFound(code)
	}
	return e.snapshot(), nil
}

// List returns lock-free snapshots ordered by code, with the same visibility as Lookup.
func (c *Catalog) List(ctx context.Context) ([]product.Product, error) {
	c.mu.RLock()
	products := make([]product.Product, 0, len(c.entries))
	for _, e := range c.entries {
		products = append(products, e.snapshot())
	}
	c.mu.RUnlock()

	sort.Slice(products, func(i, j int) bool {
		return products[i].Code() < products[j].Code()
	})
	return products, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Seed registers products at start-up. The batch is rejected as a whole if any
// code is already registered or repeated.
func (c *Catalog) Seed(ctx context.Context, products ...product.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.IsZero() {
			return infra.WrapRepoErr(c.logger, infra.KindInvalidEntity, "cannot seed zero product", nil)
		}
		if _, dup := batch[p.Code()]; dup {
			return infra.WrapRepoErr(c.logger, infra.KindDuplicateKey, "duplicate product code in seed",
				errs.Newf("product code %q", p.Code()))
		}
		if _, exists := c.entries[p.Code()]; exists {
			return infra.WrapRepoErr(c.logger, infra.KindDuplicateKey, "product already registered",
				errs.Newf("product code %q", p.Code()))
		}
		batch[p.Code()] = struct{}{}
	}

	for _, p := range products {
		c.entries[p.Code()] = newCatalogEntry(p)
	}
	c.logger.Info("catalog seeded", slog.Int("products", len(products)), slog.Int("total", len(c.entries)))
	return nil
}

// Remove unregisters a product. A section still holding the old entry's lock
// will see NotFound on its next update.
func (c *Catalog) Remove(ctx context.Context, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[code]; !ok {
		return c.notFound(code)
	}
	delete(c.entries, code)
	c.logger.Info("product removed", slog.String("product_code", code))
	return nil
}

// Replace re-registers a product under a fresh entry, detaching any in-flight
// locked section from the old one.
func (c *Catalog) Replace(ctx context.Context, p product.Product) error {
	if p.IsZero() {
		return infra.WrapRepoErr(c.logger, infra.KindInvalidEntity, "cannot register zero product", nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[p.Code()]; !ok {
		return c.notFound(p.Code())
	}
	c.entries[p.Code()] = newCatalogEntry(p)
	c.logger.Info("product replaced", slog.String("product_code", p.Code()))
	return nil
}

// ApplyUpdate replaces the product sharing p's code, taking the per-code lock
// for the duration of the write.
func (c *Catalog) ApplyUpdate(ctx context.Context, p product.Product) error {
	return c.WithinLock(ctx, p.Code(), func(ctx context.Context, locked *LockedProduct) error {
		return locked.ApplyUpdate(p)
	})
}

// WithinLock runs fn while holding the exclusive lock of code. Other codes are
// never blocked. Waiting is bounded by ctx and the configured lock timeout.
func (c *Catalog) WithinLock(ctx context.Context, code string, fn func(ctx context.Context, locked *LockedProduct) error) error {
	locked, err := c.acquire(ctx, code)
	if err != nil {
		return err
	}
	defer locked.release()

	return fn(ctx, locked)
}

func (c *Catalog) acquire(ctx context.Context, code string) (*LockedProduct, error) {
	waitCtx := ctx
	if c.lockTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.lockTimeout)
		defer cancel()
	}

	for {
		e, ok := c.entry(code)
		if !ok {
			return nil, c.notFound(code)
		}

		select {
		case e.lock <- struct{}{}:
		case <-waitCtx.Done():
			return nil, infra.WrapRepoErr(c.logger, infra.KindLockAborted, "failed to acquire product lock",
				errs.Wrapf(waitCtx.Err(), "product code %q", code))
		}

		current, ok := c.entry(code)
		if ok && current == e {
			return &LockedProduct{catalog: c, entry: e, code: code}, nil
		}

		// entry changed while waiting
		<-e.lock
		if !ok {
			return nil, c.notFound(code)
		}
	}
}

// LockedProduct is valid only inside the WithinLock callback that produced it.
type LockedProduct struct {
	catalog *Catalog
	entry   *catalogEntry
	code    string
}

func (l *LockedProduct) Code() string {
	return l.code
}

func (l *LockedProduct) Product() product.Product {
	return l.entry.snapshot()
}

// ApplyUpdate publishes p as the new snapshot. NotFound when the entry was
// removed or replaced since the lock was taken.
func (l *LockedProduct) ApplyUpdate(p product.Product) error {
	if p.Code() != l.code {
		return infra.WrapRepoErr(l.catalog.logger, infra.KindInvalidEntity, "product code does not match locked entry",
			errs.Newf("locked %q, got %q", l.code, p.Code()))
	}

	l.catalog.mu.RLock()
	defer l.catalog.mu.RUnlock()

	if l.catalog.entries[l.code] != l.entry {
		return l.catalog.notFound(l.code)
	}
	l.entry.current.Store(&p)
	return nil
}

func (l *LockedProduct) release() {
	<-l.entry.lock
}
