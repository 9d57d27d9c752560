package text

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/text"
)

type Handler struct {
	service    text.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service text.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("failed to fetch texts", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch texts")
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*textOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	t, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Content)
	if err != nil {
		if errors.Is(err, text.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(text.ErrInvalidInput.Error())
		}
		h.log.Error("failed to create text", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to save text")
	}

	return &textOutput{Body: TextResponse{Message: "Text saved successfully", Text: t}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*textOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	t, err := h.service.Update(ctx, userID, input.ID, input.Body.Title, input.Body.Content)
	if err != nil {
		switch {
		case errors.Is(err, text.ErrNotFound):
			return nil, huma.Error404NotFound("Text not found")
		case errors.Is(err, text.ErrInvalidInput):
			return nil, huma.Error400BadRequest(text.ErrInvalidInput.Error())
		default:
			h.log.Error("failed to update text", "text_id", input.ID, "error", err)
			return nil, huma.Error500InternalServerError("Failed to update text")
		}
	}

	return &textOutput{Body: TextResponse{Text: t}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, text.ErrNotFound) {
			return nil, huma.Error404NotFound("Text not found")
		}
		h.log.Error("failed to delete text", "text_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to delete text")
	}

	return &deleteOutput{Body: DeleteResponse{Message: "Text deleted successfully"}}, nil
}
