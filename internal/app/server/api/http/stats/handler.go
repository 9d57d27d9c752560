package stats

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/stats"
)

type Handler struct {
	service    stats.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service stats.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.storageOp(), h.storage)
	huma.Register(api, h.analyticsOp(), h.analytics)
}

func (h *Handler) storage(ctx context.Context, _ *struct{}) (*storageOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Storage(ctx, userID)
	if err != nil {
		h.log.Error("failed to compute storage stats", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch storage stats")
	}

	return &storageOutput{Body: s}, nil
}

func (h *Handler) analytics(ctx context.Context, _ *struct{}) (*analyticsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Analytics(ctx, userID)
	if err != nil {
		h.log.Error("failed to compute analytics", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch analytics")
	}

	return &analyticsOutput{Body: a}, nil
}
