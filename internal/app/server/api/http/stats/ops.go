package stats

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) storageOp() huma.Operation {
	return huma.Operation{
		OperationID: "storage-stats",
		Method:      http.MethodGet,
		Path:        "/api/storage/stats",
		Summary:     "Usage totals and quota for the caller",
		Tags:        []string{"stats"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) analyticsOp() huma.Operation {
	return huma.Operation{
		OperationID: "analytics",
		Method:      http.MethodGet,
		Path:        "/api/analytics",
		Summary:     "Dashboard aggregates: category breakdown and recent upload activity",
		Tags:        []string{"stats"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
