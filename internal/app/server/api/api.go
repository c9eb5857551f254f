package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	healthAPI "inotebook/internal/app/server/api/http/health"
	"inotebook/internal/app/server/api/http/middleware/auth"
	"inotebook/internal/app/server/api/http/middleware/logger"
	"inotebook/internal/app/server/api/http/middleware/requestid"
	noteAPI "inotebook/internal/app/server/api/http/note"
	userAPI "inotebook/internal/app/server/api/http/user"
	"inotebook/internal/app/server/config"
	"inotebook/internal/domain/note"
	"inotebook/internal/domain/token"
	"inotebook/internal/domain/user"
	"inotebook/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Note   *noteAPI.Handler
}

// New builds the chi mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)
	mux.Use(corsMiddleware)

	humaCfg := huma.DefaultConfig("iNotebook API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"authToken": {Type: "apiKey", In: "header", Name: auth.HeaderName},
	}

	API := humachi.New(mux, humaCfg)

	h, err := handlers(cfg, storage, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux, nil
}

func handlers(cfg *config.Config, storage *postgres.Storage, log *slog.Logger) (*Handlers, error) {
	tokens, err := token.NewService(cfg.Auth.Secret)
	if err != nil {
		return nil, err
	}

	authMW := auth.New(tokens, log)
	loggerMW := logger.New(log)

	public := huma.Middlewares{requestid.Middleware(), loggerMW.Middleware()}
	protected := huma.Middlewares{requestid.Middleware(), loggerMW.Middleware(), authMW.Middleware()}

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	userHandler := userAPI.NewHandler(userService, tokens, log, public, protected)

	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)
	noteService := note.NewService(noteRepo, note.NewFieldValidator(), log)
	noteHandler := noteAPI.NewHandler(noteService, log, protected)

	healthHandler := healthAPI.NewHandler(log, public)

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Note:   noteHandler,
	}, nil
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+auth.HeaderName)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
