package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"inotebook/internal/app/server/api/http/middleware/auth"
	"inotebook/internal/domain/token"
	"inotebook/internal/domain/user"
	"inotebook/internal/domain/validation"
)

type Handler struct {
	service   user.Servicer
	tokens    token.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service user.Servicer, tokens token.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.getUserOp(), h.getUser)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authTokenOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, h.mapError(err)
	}

	authToken, err := h.tokens.Issue(userID)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Server Error")
	}

	return &authTokenOutput{Body: AuthTokenResponse{AuthToken: authToken}}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authTokenOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, h.mapError(err)
	}

	authToken, err := h.tokens.Issue(u.ID)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Server Error")
	}

	return &authTokenOutput{Body: AuthTokenResponse{AuthToken: authToken}}, nil
}

func (h *Handler) getUser(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.GetByID(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &profileOutput{Body: u}, nil
}

func (h *Handler) mapError(err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return validationError(verrs)
	case errors.Is(err, user.ErrExists):
		return huma.Error400BadRequest("User already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		return huma.Error400BadRequest("Please enter correct credentials")
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("Not Found")
	}
	h.log.Error("auth handler failure", "error", err)
	return huma.Error500InternalServerError("Server Error")
}

func validationError(verrs validation.Errors) error {
	details := make([]error, len(verrs))
	for i, fe := range verrs {
		details[i] = &huma.ErrorDetail{Message: fe.Message, Location: "body." + fe.Field}
	}
	return huma.Error400BadRequest("Invalid input", details...)
}
