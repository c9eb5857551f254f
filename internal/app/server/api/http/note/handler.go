package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"inotebook/internal/app/server/api/http/middleware/auth"
	"inotebook/internal/domain/note"
	"inotebook/internal/domain/validation"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
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

	notes, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &listOutput{Body: notes}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Description, input.Body.Tag)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &noteOutput{Body: created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	updated, err := h.service.Update(ctx, userID, input.ID, note.Patch{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Tag:         input.Body.Tag,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &noteOutput{Body: updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	deleted, err := h.service.Delete(ctx, userID, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{Body: DeleteNoteResponse{
		Success: "Note deleted successfully",
		Note:    deleted,
	}}, nil
}

func (h *Handler) mapError(err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return validationError(verrs)
	case errors.Is(err, note.ErrNotFound):
		return huma.Error404NotFound("Not Found")
	case errors.Is(err, note.ErrNotOwner):
		return huma.Error401Unauthorized("Unauthorized")
	}
	h.log.Error("notes handler failure", "error", err)
	return huma.Error500InternalServerError("Server Error")
}

func validationError(verrs validation.Errors) error {
	details := make([]error, len(verrs))
	for i, fe := range verrs {
		details[i] = &huma.ErrorDetail{Message: fe.Message, Location: "body." + fe.Field}
	}
	return huma.Error400BadRequest("Invalid input", details...)
}
