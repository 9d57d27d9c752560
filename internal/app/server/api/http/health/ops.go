package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check endpoint",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) rootOp() huma.Operation {
	return huma.Operation{
		OperationID: "api-root",
		Method:      http.MethodGet,
		Path:        "/api/",
		Summary:     "API identification probe",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
