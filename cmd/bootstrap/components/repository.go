package components

import (
	"order-fulfillment/internal/infra/readstore"
	"order-fulfillment/internal/infra/uow"
	"order-fulfillment/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// UnitOfWork (already returns shared.UnitOfWork)
		uow.NewMemoryUoW,
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
	),
)
