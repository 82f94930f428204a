//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"order-fulfillment/internal/handler/httperr"
	"order-fulfillment/internal/handler/middleware"
	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })
	engine.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("store down"), "Internal error", nil)
	})
	engine.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("unlabelled"))
	})
	engine.POST("/json", middleware.RequireJSON(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return engine
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine := newEngine()

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ok", nil)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		httptest.AssertHeaderPresent(t, rec, middleware.RequestIDHeader)
	})

	t.Run("propagated when supplied", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ok", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "req-123"})
	})
}

func TestErrorHandling(t *testing.T) {
	engine := newEngine()

	t.Run("panic becomes 500 envelope", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("aborted error keeps its message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/fail", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	})

	t.Run("unrendered private error falls back to 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/silent", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequireJSON(t *testing.T) {
	engine := newEngine()

	t.Run("json body passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodPost, "/json", map[string]any{"a": 1})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other content type is rejected", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodPost, "/json", nil,
			map[string]string{"Content-Type": "text/plain"})
		httptest.AssertErrorResponse(t, rec, http.StatusUnsupportedMediaType, "application/json")
	})
}
