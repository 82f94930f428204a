package readstore

import (
	"context"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/usecase/queries"
)

type ProductReadStore struct {
	catalog *memstore.Catalog
}

func NewProductReadStore(catalog *memstore.Catalog) *ProductReadStore {
	return &ProductReadStore{catalog: catalog}
}

func (r *ProductReadStore) FindByCode(ctx context.Context, code string) (*queries.ProductView, error) {
	p, err := r.catalog.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	return toProductView(p), nil
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	products, err := r.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views, nil
}

func toProductView(p product.Product) *queries.ProductView {
	return &queries.ProductView{
		Code:        p.Code(),
		Name:        p.Name(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Reservation: p.IsReservation(),
	}
}
