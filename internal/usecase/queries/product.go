package queries

//go:generate mockgen -source=product.go -destination=../../../tests/mock/queries/product.go -package=queriesmock

import (
	"context"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
)

type ProductReadStore interface {
	FindByCode(ctx context.Context, code string) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByCode(ctx context.Context, code string) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	repo ProductReadStore
}

func NewProductQueries(repo ProductReadStore) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByCode(ctx context.Context, code string) (*ProductView, error) {
	pv, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return pv, nil
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	return q.repo.FindAll(ctx)
}
