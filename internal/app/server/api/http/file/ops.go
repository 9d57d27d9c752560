package file

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"cloudvault/internal/domain/file"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "files-list",
		Method:      http.MethodGet,
		Path:        "/api/files",
		Summary:     "List the caller's files, newest first",
		Tags:        []string{"files"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "files-upload",
		Method:        http.MethodPost,
		Path:          "/api/files/upload",
		Summary:       "Upload a file",
		Description:   "Multipart upload, 50 MiB ceiling. Executable-style extensions are rejected.",
		Tags:          []string{"files"},
		DefaultStatus: http.StatusCreated,
		// Leave headroom above the blob ceiling for multipart framing.
		MaxBodyBytes: file.MaxFileSize + 1<<20,
		Security:     []map[string][]string{{"bearer": {}}},
		Middlewares:  h.middleware,
	}
}

func (h *Handler) downloadOp() huma.Operation {
	return huma.Operation{
		OperationID: "files-download",
		Method:      http.MethodGet,
		Path:        "/api/files/download/{id}",
		Summary:     "Download a file's content",
		Tags:        []string{"files"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "files-delete",
		Method:      http.MethodDelete,
		Path:        "/api/files/{id}",
		Summary:     "Delete a file",
		Tags:        []string{"files"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
