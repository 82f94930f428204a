package bootstrap

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		memstore.NewCatalog,
		memstore.NewLedger,
		NewSeedProducts,
	),
	fx.Invoke(SeedCatalog),
)

// NewSeedProducts reads CATALOG_SEED_FILE when set, the built-in list otherwise.
func NewSeedProducts(cfg config.CatalogConfig) ([]memstore.SeedProduct, error) {
	if cfg.SeedFile == "" {
		return memstore.DefaultSeed(), nil
	}
	return memstore.LoadSeedFile(cfg.SeedFile)
}

func SeedCatalog(lc fx.Lifecycle, catalog *memstore.Catalog, seeds []memstore.SeedProduct, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			products, err := memstore.BuildProducts(seeds)
			if err != nil {
				return err
			}
			if err := catalog.Seed(ctx, products...); err != nil {
				return err
			}
			logger.Info("商品カタログを初期化しました", "products", len(products))
			return nil
		},
	})
}
