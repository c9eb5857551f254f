package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-fetchall",
		Method:      http.MethodGet,
		Path:        "/api/notes/fetchallnotes",
		Summary:     "List the authenticated user's notes",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"authToken": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-add",
		Method:      http.MethodPost,
		Path:        "/api/notes/addnote",
		Summary:     "Create a note",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"authToken": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPut,
		Path:        "/api/notes/updatenote/{id}",
		Summary:     "Update a note",
		Description: "Applies only the supplied fields; the rest are left as stored.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"authToken": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/notes/deletenote/{id}",
		Summary:     "Delete a note",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"authToken": {}}},
		Middlewares: h.middleware,
	}
}
