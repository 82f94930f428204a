package memstore

import (
	"context"
	"log/slog"
	"sync"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
)

// Ledger is an append-only, insertion-ordered order log. Orders are never
// updated or deleted.
type Ledger struct {
	mu     sync.RWMutex
	orders []*order.Order
	byID   map[string]int
	byCode map[string][]int
	logger *slog.Logger
}

func NewLedger(logger *slog.Logger) *Ledger {
	return &Ledger{
		byID:   make(map[string]int),
		byCode: make(map[string][]int),
		logger: logger,
	}
}

func (l *Ledger) Append(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := l.AppendAll(ctx, []*order.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// AppendAll records every order or none of them.
func (l *Ledger) AppendAll(ctx context.Context, orders []*order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	batch := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if o == nil {
			return infra.WrapRepoErr(l.logger, infra.KindInvalidEntity, "cannot append nil order", nil)
		}
		if _, dup := batch[o.ID()]; dup {
			return infra.WrapRepoErr(l.logger, infra.KindDuplicateKey, "duplicate order id in batch",
				errs.Newf("order id %q", o.ID()))
		}
		if _, exists := l.byID[o.ID()]; exists {
			return infra.WrapRepoErr(l.logger, infra.KindDuplicateKey, "order id already recorded",
				errs.Newf("order id %q", o.ID()))
		}
		batch[o.ID()] = struct{}{}
	}

	for _, o := range orders {
		idx := len(l.orders)
		l.orders = append(l.orders, o)
		l.byID[o.ID()] = idx
		l.byCode[o.ProductCode()] = append(l.byCode[o.ProductCode()], idx)
	}
	return nil
}

func (l *Ledger) FindByID(ctx context.Context, id string) (*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(l.logger, infra.KindNotFound, "order not found",
			errs.Newf("order id %q", id))
	}
	return l.orders[idx], nil
}

func (l *Ledger) FindByProductCode(ctx context.Context, code string) ([]*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	indexes := l.byCode[code]
	orders := make([]*order.Order, 0, len(indexes))
	for _, idx := range indexes {
		orders = append(orders, l.orders[idx])
	}
	return orders, nil
}

func (l *Ledger) All(ctx context.Context) ([]*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	orders := make([]*order.Order, len(l.orders))
	copy(orders, l.orders)
	return orders, nil
}

func (l *Ledger) Count(ctx context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders), nil
}
