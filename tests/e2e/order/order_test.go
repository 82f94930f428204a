//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"order-fulfillment/internal/handler/dto/response"
	"order-fulfillment/internal/infra/memstore"
	"order-fulfillment/tests/common/builder"
	"order-fulfillment/tests/common/httptest"
	"order-fulfillment/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	ordersURL   = "/api/orders"
	productsURL = "/api/products"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	s := new(OrderSuite)
	s.Seeds = []memstore.SeedProduct{
		builder.NewProductBuilder().WithCode("P1").WithPrice(100).WithStock(3).BuildSeed(),
		builder.NewProductBuilder().WithCode("R1").WithPrice(500).WithStock(0).AsReservation().BuildSeed(),
		builder.NewProductBuilder().WithCode("HOT").WithPrice(1000).WithStock(5).BuildSeed(),
	}
	suite.Run(t, s)
}

func (s *OrderSuite) stockOf(code string) int {
	p, err := s.Catalog.Lookup(context.Background(), code)
	s.Require().NoError(err)
	return p.Stock()
}

func (s *OrderSuite) ledgerCount() int {
	n, err := s.Ledger.Count(context.Background())
	s.Require().NoError(err)
	return n
}

// =============================================================================
// TestCreateOrder - 注文作成 API
// =============================================================================

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Normal case: stock is decremented and amount is price × quantity", func() {
		t := s.T()
		start := time.Now()

		reqBody := builder.NewOrderBuilder().WithProductCode("P1").WithQuantity(2).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		_, err := uuid.Parse(created.ID)
		require.NoError(t, err, "order id should be a UUID")
		require.Equal(t, int64(200), created.Amount)

		ts, err := time.Parse(time.RFC3339Nano, created.Timestamp)
		require.NoError(t, err)
		require.False(t, ts.Before(start.Truncate(time.Second)), "timestamp must not precede the request")

		require.Equal(t, 1, s.stockOf("P1"))
		require.Equal(t, 1, s.ledgerCount())
	})

	s.Run("Error case: second order exceeding remaining stock", func() {
		t := s.T()
		first := builder.NewOrderBuilder().WithProductCode("P1").WithQuantity(2).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, first)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, first)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "requested 2, available 1")

		require.Equal(t, 1, s.stockOf("P1"))
		require.Equal(t, 1, s.ledgerCount())
	})

	s.Run("Normal case: reservation never touches stock", func() {
		t := s.T()
		reqBody := builder.NewOrderBuilder().WithProductCode("R1").WithQuantity(5).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Equal(t, int64(2500), created.Amount)
		require.Equal(t, 0, s.stockOf("R1"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+created.ID, nil)
		var detail response.OrderDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, "reservation", detail.Type)
		require.Equal(t, "予約注文", detail.TypeLabel)
		require.Equal(t, 5, detail.Quantity)
	})

	s.Run("Error case: unknown product code", func() {
		t := s.T()
		reqBody := builder.NewOrderBuilder().WithProductCode("NOPE").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "NOPE")
		require.Equal(t, 0, s.ledgerCount())
	})

	s.Run("Error case: request validation", func() {
		t := s.T()
		cases := []struct {
			name string
			body any
		}{
			{name: "quantity zero", body: map[string]any{"productCode": "P1", "quantity": 0}},
			{name: "quantity negative", body: map[string]any{"productCode": "P1", "quantity": -1}},
			{name: "missing product code", body: map[string]any{"quantity": 1}},
			{name: "blank product code", body: map[string]any{"productCode": "   ", "quantity": 1}},
			{name: "unknown field", body: map[string]any{"productCode": "P1", "quantity": 1, "coupon": "X"}},
			{name: "malformed json", body: httptest.RawJSON(`{"productCode":`)},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		}
		require.Equal(t, 3, s.stockOf("P1"))
		require.Equal(t, 0, s.ledgerCount())
	})

	s.Run("Concurrency: exactly stock-many orders succeed", func() {
		t := s.T()
		const requests = 20
		var ok, rejected atomic.Int32

		var g errgroup.Group
		for i := 0; i < requests; i++ {
			g.Go(func() error {
				reqBody := builder.NewOrderBuilder().WithProductCode("HOT").WithQuantity(1).BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
				switch w.Code {
				case http.StatusOK:
					ok.Add(1)
				case http.StatusBadRequest:
					rejected.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(5), ok.Load())
		require.Equal(t, int32(requests-5), rejected.Load())
		require.Equal(t, 0, s.stockOf("HOT"))
		require.Equal(t, 5, s.ledgerCount())
	})
}

// =============================================================================
// TestListOrders - 注文一覧 API
// =============================================================================

func (s *OrderSuite) TestListOrders() {
	s.Run("Normal case: filter by product code keeps total", func() {
		t := s.T()
		for _, code := range []string{"P1", "R1", "P1"} {
			reqBody := builder.NewOrderBuilder().WithProductCode(code).WithQuantity(1).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)
			httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"?productCode=P1", nil)
		var list response.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 2, list.Count)
		require.Equal(t, 3, list.Total)
		for _, o := range list.Orders {
			require.Equal(t, "P1", o.ProductCode)
			require.Equal(t, "normal", o.Type)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 3, list.Count)
	})

	s.Run("Error case: unknown order id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ordersURL+"/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
	})
}

// =============================================================================
// TestProducts - 商品 API
// =============================================================================

func (s *OrderSuite) TestProducts() {
	s.Run("Normal case: catalog is listed by code", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL, nil)
		var list response.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		require.Equal(s.T(), 3, list.Count)
		require.Equal(s.T(), "HOT", list.Products[0].Code)
	})

	s.Run("Normal case: product reflects decrement", func() {
		reqBody := builder.NewOrderBuilder().WithProductCode("P1").WithQuantity(1).BuildCreateRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, reqBody)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/P1", nil)
		var p response.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &p)
		require.Equal(s.T(), 2, p.Stock)
		require.True(s.T(), p.Price.Equal(builder.NewProductBuilder().WithPrice(100).Price))
	})

	s.Run("Error case: unknown product code", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/NOPE", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})
}
