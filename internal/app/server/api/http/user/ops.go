package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-createuser",
		Method:      http.MethodPost,
		Path:        "/api/auth/createuser",
		Summary:     "Register a new user",
		Description: "Creates a user and returns a signed token for the new identity.",
		Tags:        []string{"auth"},
		Middlewares: h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Authenticate a user",
		Tags:        []string{"auth"},
		Middlewares: h.public,
	}
}

func (h *Handler) getUserOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-getuser",
		Method:      http.MethodPost,
		Path:        "/api/auth/getuser",
		Summary:     "Get the authenticated user's profile",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"authToken": {}}},
		Middlewares: h.protected,
	}
}
