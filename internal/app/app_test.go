package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestTraceMiddleware(t *testing.T) {
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("nil provider passes requests through", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := traceMiddleware(nil)(handler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("live provider wraps the request in a span", func(t *testing.T) {
		traceProvider := trace.NewTracerProvider()
		defer traceProvider.Shutdown(context.Background())

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := traceMiddleware(traceProvider)(handler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
