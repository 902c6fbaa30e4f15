package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/solstice-id/solstice-id/internal/observability"
	"github.com/solstice-id/solstice-id/internal/signup"
	"github.com/solstice-id/solstice-id/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger        *slog.Logger
	Config        *Config
	SignupHandler *signup.Handler
	JobsHandler   *jobs.Handler
	Metrics       *observability.Metrics
	Pool          *pgxpool.Pool
	Redis         *redis.Client
}

// NewRouter constructs the chi.Router with service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	r.Get("/healthz", HealthHandler(params.Pool, params.Redis))

	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}

	params.SignupHandler.MountRoutes(r)

	return r
}
