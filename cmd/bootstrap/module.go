package bootstrap

import (
	"order-fulfillment/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
