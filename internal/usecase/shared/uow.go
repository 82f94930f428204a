package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/pkg/errs"
)

var ErrTxCommit = errs.New("failed to commit unit of work")

type UnitOfWork interface {
	// WithinProduct: exclusive section on one product code. Staged orders are
	// committed to the ledger only when fn succeeds; product updates are
	// rolled back when fn or the commit fails.
	WithinProduct(ctx context.Context, code string, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// Product: snapshot as of the latest update inside this section
	Product() product.Product
	UpdateProduct(ctx context.Context, p product.Product) error
	AppendOrder(ctx context.Context, o *order.Order) error
}
