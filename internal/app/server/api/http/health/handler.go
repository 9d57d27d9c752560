package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.rootOp(), h.root)
}

func (h *Handler) healthCheck(_ context.Context, _ *struct{}) (*healthOutput, error) {
	h.log.Debug("health check request received")

	return &healthOutput{Body: HealthResponse{Status: "OK"}}, nil
}

func (h *Handler) root(_ context.Context, _ *struct{}) (*rootOutput, error) {
	return &rootOutput{Body: RootResponse{Message: "Secure Auth API Server"}}, nil
}
