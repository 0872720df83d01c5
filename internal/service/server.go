package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"teenpatti_tracker/internal/app"
	"teenpatti_tracker/internal/pkg/auth"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/pkg/metrics"
	"teenpatti_tracker/internal/pkg/upload"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, and the middleware dependencies.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
	metrics    *metrics.Metrics
	issuer     *auth.Issuer
	uploads    *upload.Store
	staticDir  string
}

// NewService creates and initializes a new Service instance.
// m, issuer and uploads may be nil; staticDir may be empty to disable the frontend.
func NewService(app *app.App, runAddress string, l *logger.Logger, m *metrics.Metrics,
	issuer *auth.Issuer, uploads *upload.Store, staticDir string) *Service {
	handlers := newHandlers(app, uploads, l)
	return &Service{
		handlers:   handlers,
		app:        app,
		runAddress: runAddress,
		log:        l,
		metrics:    m,
		issuer:     issuer,
		uploads:    uploads,
		staticDir:  staticDir,
	}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// Request logging and metrics apply globally; the JWT middleware guards mutating API routes.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	if service.metrics != nil {
		router.Use(service.metrics.Middleware())
		router.Method(http.MethodGet, "/metrics", service.metrics.Handler())
	}

	h := service.handlers
	router.Route("/api", func(r chi.Router) {
		r.NotFound(h.notFoundHandler)
		r.Get("/health", h.healthHandler)
		r.Post("/auth", h.authHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.CheckJWTMiddleware(service.issuer))

			r.Route("/players", func(r chi.Router) {
				r.Get("/", h.listPlayersHandler)
				r.Post("/", h.createPlayerHandler)
				r.Get("/{id}", h.getPlayerHandler)
				r.Put("/{id}", h.updatePlayerHandler)
				r.Delete("/{id}", h.deletePlayerHandler)
			})

			r.Route("/games", func(r chi.Router) {
				r.Get("/", h.listGamesHandler)
				r.Post("/", h.createGameHandler)
				r.Get("/{id}", h.getGameHandler)
				r.Put("/{id}", h.updateGameHandler)
				r.Delete("/{id}", h.deleteGameHandler)
				r.Post("/{id}/players", h.addGamePlayerHandler)
				r.Put("/{id}/players/{playerId}/balance", h.setBalanceHandler)
				r.Get("/{id}/stats", h.gameStatsHandler)
				r.Get("/{id}/loans", h.gameLoansHandler)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Get("/", h.listLoansHandler)
				r.Post("/", h.createLoanHandler)
				r.Get("/{id}", h.getLoanHandler)
				r.Put("/{id}", h.updateLoanHandler)
				r.Delete("/{id}", h.deleteLoanHandler)
				r.Post("/{id}/repayments", h.repaymentHandler)
			})

			r.Post("/upload", h.uploadHandler)
		})
	})

	if service.uploads != nil {
		router.Handle(upload.PublicPrefix+"*",
			http.StripPrefix(upload.PublicPrefix, http.FileServer(http.Dir(service.uploads.Dir()))))
	}
	if service.staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(service.staticDir)))
	}
	return router
}
