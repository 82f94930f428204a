package uow

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/shared"
)

type MemoryUoW struct {
	catalog *memstore.Catalog
	ledger  *memstore.Ledger
	logger  *slog.Logger
}

func NewMemoryUoW(catalog *memstore.Catalog, ledger *memstore.Ledger, logger *slog.Logger) shared.UnitOfWork {
	return &MemoryUoW{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

func (u *MemoryUoW) WithinProduct(ctx context.Context, code string, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.catalog.WithinLock(ctx, code, func(ctx context.Context, locked *memstore.LockedProduct) error {
		tx := &memTx{
			locked:   locked,
			original: locked.Product(),
		}

		if err := fn(ctx, tx); err != nil {
			u.rollback(tx)
			return err
		}

		if len(tx.pending) == 0 {
			return nil
		}

		if err := u.ledger.AppendAll(ctx, tx.pending); err != nil {
			u.rollback(tx)
			return errs.Mark(err, shared.ErrTxCommit)
		}
		return nil
	})
}

// rollback restores the snapshot taken when the lock was acquired.
func (u *MemoryUoW) rollback(tx *memTx) {
	if !tx.dirty {
		return
	}
	if err := tx.locked.ApplyUpdate(tx.original); err != nil {
		// entry is gone; nothing left to restore
		u.logger.Warn("rollback failed",
			slog.String("product_code", tx.locked.Code()),
			slog.String("error", err.Error()))
		return
	}
	u.logger.Info("product update rolled back",
		slog.String("product_code", tx.locked.Code()),
		slog.Int("stock", tx.original.Stock()))
}

type memTx struct {
	locked   *memstore.LockedProduct
	original product.Product
	dirty    bool
	pending  []*order.Order
}

func (t *memTx) Product() product.Product {
	return t.locked.Product()
}

func (t *memTx) UpdateProduct(ctx context.Context, p product.Product) error {
	if err := t.locked.ApplyUpdate(p); err != nil {
		return err
	}
	t.dirty = true
	return nil
}

func (t *memTx) AppendOrder(ctx context.Context, o *order.Order) error {
	t.pending = append(t.pending, o)
	return nil
}
