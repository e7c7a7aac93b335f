package router

import (
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
	Observer       middleware.RequestObserver
	MetricsHandler http.Handler
}

// New mounts the tracker API plus /health and /metrics behind the shared middleware chain.
func New(logger *zap.SugaredLogger, th *handler.TrackerHandler, opts Options) http.Handler {
	logging := middleware.NewLoggingMiddleware(logger)

	r := chi.NewRouter()
	r.Use(
		middleware.NewRequestIDMiddleware().RequestID,
		logging.Logging,
		logging.Recover,
		middleware.NewMetricsMiddleware(opts.Observer).Metrics,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler)
	}

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", th.HandleRegisterUser)
		r.Get("/", th.HandleListUsers)
		r.Post("/{"+handler.UserIDParam+"}/exercises", th.HandleAddExercise)
		r.Get("/{"+handler.UserIDParam+"}/logs", th.HandleGetLog)
	})

	return r
}
