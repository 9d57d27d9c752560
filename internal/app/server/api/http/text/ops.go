package text

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "texts-list",
		Method:      http.MethodGet,
		Path:        "/api/texts",
		Summary:     "List the caller's text snippets, most recently updated first",
		Tags:        []string{"texts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "texts-create",
		Method:        http.MethodPost,
		Path:          "/api/texts",
		Summary:       "Create a text snippet",
		Tags:          []string{"texts"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "texts-update",
		Method:      http.MethodPut,
		Path:        "/api/texts/{id}",
		Summary:     "Update a text snippet",
		Tags:        []string{"texts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "texts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/texts/{id}",
		Summary:     "Delete a text snippet",
		Tags:        []string{"texts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
