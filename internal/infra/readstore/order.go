package readstore

import (
	"context"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/usecase/queries"
)

type OrderReadStore struct {
	ledger *memstore.Ledger
}

func NewOrderReadStore(ledger *memstore.Ledger) *OrderReadStore {
	return &OrderReadStore{ledger: ledger}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id string) (*queries.OrderView, error) {
	o, err := r.ledger.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderView(o), nil
}

func (r *OrderReadStore) FindByProductCode(ctx context.Context, code string) ([]*queries.OrderView, error) {
	orders, err := r.ledger.FindByProductCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toOrderViews(orders), nil
}

func (r *OrderReadStore) FindAll(ctx context.Context) ([]*queries.OrderView, error) {
	orders, err := r.ledger.All(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderViews(orders), nil
}

func (r *OrderReadStore) Count(ctx context.Context) (int, error) {
	return r.ledger.Count(ctx)
}

func toOrderViews(orders []*order.Order) []*queries.OrderView {
	views := make([]*queries.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views
}

func toOrderView(o *order.Order) *queries.OrderView {
	return &queries.OrderView{
		ID:          o.ID(),
		ProductCode: o.ProductCode(),
		Quantity:    o.Quantity(),
		Amount:      o.Amount(),
		Timestamp:   o.Timestamp(),
		Type:        o.Type().String(),
		TypeLabel:   o.Type().DisplayName(),
	}
}
