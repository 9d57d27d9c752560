package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Register with email and password",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in with email and password",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) phoneLoginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-phone-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/phone-login",
		Summary:     "Log in with a provider-verified phone number",
		Description: "Verifies the identity-provider token and signs the caller in, creating the account on first login.",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-update",
		Method:      http.MethodPut,
		Path:        "/api/profile",
		Summary:     "Update the caller's display name",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
