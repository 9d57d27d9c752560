// Package api assembles the HTTP surface: auth, files, notes, texts,
// stats and health, all registered through huma on a chi mux. Protected
// resources get the auth middleware; identity always comes from the
// verified token, never from the request body.
package api

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/config"
	fileAPI "cloudvault/internal/app/server/api/http/file"
	healthAPI "cloudvault/internal/app/server/api/http/health"
	"cloudvault/internal/app/server/api/http/middleware"
	"cloudvault/internal/app/server/api/http/middleware/auth"
	"cloudvault/internal/app/server/api/http/middleware/logger"
	noteAPI "cloudvault/internal/app/server/api/http/note"
	statsAPI "cloudvault/internal/app/server/api/http/stats"
	textAPI "cloudvault/internal/app/server/api/http/text"
	userAPI "cloudvault/internal/app/server/api/http/user"
	"cloudvault/internal/domain/file"
	"cloudvault/internal/domain/note"
	"cloudvault/internal/domain/session"
	"cloudvault/internal/domain/stats"
	"cloudvault/internal/domain/text"
	"cloudvault/internal/domain/user"
	"cloudvault/internal/infrastructure/blob"
	"cloudvault/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	File   *fileAPI.Handler
	Note   *noteAPI.Handler
	Text   *textAPI.Handler
	Stats  *statsAPI.Handler
}

// New builds the chi mux with all operations registered through huma,
// plus the public static prefix for published blobs.
func New(cfg *config.Config, storage *postgres.Storage, blobs *blob.FS, verifier user.PhoneVerifier, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("CloudVault API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, blobs, verifier, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.File.SetupRoutes(API)
	h.Note.SetupRoutes(API)
	h.Text.SetupRoutes(API)
	h.Stats.SetupRoutes(API)

	// Published blobs are public by path; the download API is the
	// access-controlled route. Temp blobs are dot-prefixed and hidden.
	mux.Handle("/uploads/*", http.StripPrefix("/uploads/", noDotFiles(http.FileServer(http.Dir(blobs.Dir())))))

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, blobs *blob.FS, verifier user.PhoneVerifier, log *slog.Logger) *Handlers {
	sessionService := session.NewService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewCredentialsValidator(), verifier, log)
	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, public, middlewares.GetAllAndClear())

	fileRepo := postgres.NewFileRepository(storage.Pool(), log)
	fileService := file.NewService(fileRepo, blobs, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	fileHandler := fileAPI.NewHandler(fileService, log, middlewares.GetAllAndClear())

	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)
	noteService := note.NewService(noteRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	textRepo := postgres.NewTextRepository(storage.Pool(), log)
	textService := text.NewService(textRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	textHandler := textAPI.NewHandler(textService, log, middlewares.GetAllAndClear())

	statsService := stats.NewService(fileRepo, noteRepo, textRepo, cfg.Files.QuotaBytes, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	statsHandler := statsAPI.NewHandler(statsService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		File:   fileHandler,
		Note:   noteHandler,
		Text:   textHandler,
		Stats:  statsHandler,
	}
}

func noDotFiles(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(strings.TrimPrefix(r.URL.Path, "/"), ".") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
