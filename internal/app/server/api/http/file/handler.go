package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/domain/file"
)

type Handler struct {
	service    file.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service file.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.downloadOp(), h.download)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	resp, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("failed to fetch files", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch files")
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	formFile := input.RawBody.Data().File
	if !formFile.IsSet {
		return nil, huma.Error400BadRequest("No file uploaded")
	}

	f, err := h.service.Upload(ctx, userID, formFile, formFile.Filename, formFile.ContentType, formFile.Size)
	if err != nil {
		switch {
		case errors.Is(err, file.ErrForbiddenType):
			return nil, huma.Error400BadRequest(file.ErrForbiddenType.Error())
		case errors.Is(err, file.ErrTooLarge):
			return nil, huma.NewError(http.StatusRequestEntityTooLarge, file.ErrTooLarge.Error())
		case errors.Is(err, file.ErrInvalidInput):
			return nil, huma.Error400BadRequest(err.Error())
		default:
			h.log.Error("upload failed", "user_id", userID, "error", err)
			return nil, huma.Error500InternalServerError("File upload failed")
		}
	}

	return &uploadOutput{
		Body: UploadResponse{
			Message: "File uploaded successfully",
			File:    f,
		},
	}, nil
}

func (h *Handler) download(ctx context.Context, input *downloadInput) (*huma.StreamResponse, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	f, rc, err := h.service.Download(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return nil, huma.Error404NotFound("File not found")
		}
		h.log.Error("download failed", "file_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to download file")
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			defer rc.Close()

			hctx.SetHeader("Content-Type", f.FileType)
			hctx.SetHeader("Content-Length", strconv.FormatInt(f.FileSize, 10))
			hctx.SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.OriginalName))

			if _, err := io.Copy(hctx.BodyWriter(), rc); err != nil {
				h.log.Error("failed to stream blob", "file_id", f.ID, "error", err)
			}
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, file.ErrNotFound) {
			return nil, huma.Error404NotFound("File not found")
		}
		h.log.Error("delete failed", "file_id", input.ID, "error", err)
		return nil, huma.Error500InternalServerError("Failed to delete file")
	}

	return &deleteOutput{Body: DeleteResponse{Message: "File deleted successfully"}}, nil
}
