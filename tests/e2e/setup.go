//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"order-fulfillment/cmd/bootstrap"
	"order-fulfillment/cmd/bootstrap/components"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, stores, and fx.App for proper lifecycle management
// ------------------------------------------------------------
type E2EApp struct {
	Router  *gin.Engine
	Config  config.Config
	Catalog *memstore.Catalog
	Ledger  *memstore.Ledger
	app     *fx.App
}

func buildE2EApp(t *testing.T, seeds []memstore.SeedProduct) *E2EApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var e E2EApp

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			config.NewTestConfig,
			func(cfg config.Config) config.CatalogConfig {
				return cfg.Catalog
			},
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CatalogModule,
		// テストごとの商品データに差し替え
		fx.Decorate(func([]memstore.SeedProduct) []memstore.SeedProduct {
			return seeds
		}),
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&e.Router, &e.Config, &e.Catalog, &e.Ledger),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	require.NotNil(t, e.Router, "Routerのセットアップに失敗")

	e.app = app
	return &e
}

func (e *E2EApp) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.app.Stop(ctx); err != nil {
		slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
	}
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	*E2EApp
	// Seeds defaults to the built-in catalog when nil
	Seeds []memstore.SeedProduct
}

// Every subtest runs against a freshly seeded catalog and an empty ledger.
func (s *SharedSuite) reset() {
	if s.E2EApp != nil {
		s.E2EApp.stop()
	}
	seeds := s.Seeds
	if seeds == nil {
		seeds = memstore.DefaultSeed()
	}
	s.E2EApp = buildE2EApp(s.T(), seeds)
}

func (s *SharedSuite) SetupTest() {
	s.reset()
}

func (s *SharedSuite) SetupSubTest() {
	s.reset()
}

func (s *SharedSuite) TearDownSuite() {
	if s.E2EApp != nil {
		s.E2EApp.stop()
	}
}
