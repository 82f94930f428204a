//go:build unit

package memstore_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/internal/pkg/config"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalog(lockTimeout time.Duration) *memstore.Catalog {
	return memstore.NewCatalog(discardLogger(), config.CatalogConfig{LockTimeout: lockTimeout})
}
