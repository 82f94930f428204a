package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

import (
	"context"

	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id string) (*OrderView, error)
	FindByProductCode(ctx context.Context, code string) ([]*OrderView, error)
	FindAll(ctx context.Context) ([]*OrderView, error)
	Count(ctx context.Context) (int, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id string) (*OrderView, error)
	List(ctx context.Context) (*OrderList, error)
	ListByProductCode(ctx context.Context, code string) (*OrderList, error)
	Count(ctx context.Context) (int, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id string) (*OrderView, error) {
	ov, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return ov, nil
}

func (q *orderQueriesImpl) List(ctx context.Context) (*OrderList, error) {
	rows, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return q.withTotal(ctx, rows)
}

func (q *orderQueriesImpl) ListByProductCode(ctx context.Context, code string) (*OrderList, error) {
	rows, err := q.repo.FindByProductCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return q.withTotal(ctx, rows)
}

func (q *orderQueriesImpl) Count(ctx context.Context) (int, error) {
	return q.repo.Count(ctx)
}

func (q *orderQueriesImpl) withTotal(ctx context.Context, rows []*OrderView) (*OrderList, error) {
	total, err := q.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &OrderList{Orders: rows, Total: total}, nil
}
