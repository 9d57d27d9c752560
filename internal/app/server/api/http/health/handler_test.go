package health

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler_Routes(t *testing.T) {
	_, api := humatest.New(t)
	handler := NewHandler(slog.Default(), huma.Middlewares{})
	handler.SetupRoutes(api)

	t.Run("health check", func(t *testing.T) {
		resp := api.Do("GET", "/api/health")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"status":"OK"`)
	})

	t.Run("root probe", func(t *testing.T) {
		resp := api.Do("GET", "/api/")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Secure Auth API Server")
	})
}
