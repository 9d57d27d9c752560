package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/note"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
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
		h.log.Error("failed to fetch notes", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch notes")
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Content)
	if err != nil {
		if errors.Is(err, note.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(note.ErrInvalidInput.Error())
		}
		h.log.Error("failed to create note", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to save note")
	}

	return &noteOutput{Body: NoteResponse{Message: "Note saved successfully", Note: n}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Update(ctx, userID, input.ID, input.Body.Title, input.Body.Content)
	if err != nil {
		switch {
		case errors.Is(err, note.ErrNotFound):
			return nil, huma.Error404NotFound("Note not found")
		case errors.Is(err, note.ErrInvalidInput):
			return nil, huma.Error400BadRequest(note.ErrInvalidInput.Error())
		default:
			h.log.Error("failed to update note", "note_id", input.ID, "error", err)
			return nil, huma.Error500InternalServerError("Failed to update note")
		}
	}

	return &noteOutput{Body: NoteResponse{Note: n}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		h.log.Error("failed to delete note", "note_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to delete note")
	}

	return &deleteOutput{Body: DeleteResponse{Message: "Note deleted successfully"}}, nil
}
