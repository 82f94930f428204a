package bootstrap

import (
	"order-fulfillment/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CatalogConfig {
			return cfg.Catalog
		},
	),
)
