package components

import (
	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/pkg/clock"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		order.NewDefaultPriceCalculator,
		fx.As(new(order.PriceCalculator)),
	),
	fx.Annotate(
		order.NewUUIDGenerator,
		fx.As(new(order.IDGenerator)),
	),
	order.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewProductQueries,
	),
)
