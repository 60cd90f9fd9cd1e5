package handler

import (
	"net/http"
	"time"

	"github.com/campaignforge/campaignforge-go/internal/infra/observability"
	"github.com/campaignforge/campaignforge-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Everything under /api except registration and login requires a
// valid session cookie.
func NewRouter(svc *service.MarketingService, authSvc *service.AuthService, metrics *observability.Metrics, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(requestMetricsMiddleware(metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API ---
	r.Route("/api", func(r chi.Router) {

		// Public routes
		r.Post("/auth/register", authRegisterHandler(authSvc, logger))
		r.Post("/auth/login", authLoginHandler(authSvc, logger))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(SessionAuthMiddleware(authSvc, logger))

			r.Post("/auth/logout", authLogoutHandler(authSvc, logger))
			r.Get("/auth/me", authMeHandler(authSvc, logger))

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", listCampaignsHandler(svc, logger))
				r.Post("/", createCampaignHandler(svc, logger))
				r.Get("/{id}", getCampaignHandler(svc, logger))
				r.Patch("/{id}", updateCampaignHandler(svc, logger))
				r.Delete("/{id}", deleteCampaignHandler(svc, logger))
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", listContactsHandler(svc, logger))
				r.Post("/", createContactHandler(svc, logger))
				r.Get("/{id}", getContactHandler(svc, logger))
				r.Patch("/{id}", updateContactHandler(svc, logger))
				r.Delete("/{id}", deleteContactHandler(svc, logger))
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", listTasksHandler(svc, logger))
				r.Post("/", createTaskHandler(svc, logger))
				r.Get("/{id}", getTaskHandler(svc, logger))
				r.Patch("/{id}", updateTaskHandler(svc, logger))
				r.Delete("/{id}", deleteTaskHandler(svc, logger))
			})

			r.Get("/activities", listActivitiesHandler(svc, logger))
			r.Get("/dashboard/metrics", dashboardMetricsHandler(svc, logger))
		})
	})

	return r
}

// requestMetricsMiddleware records per-route request durations, labeled
// by the chi route pattern so path params don't explode cardinality.
func requestMetricsMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			metrics.RecordRequestDuration(r.Method+" "+pattern, time.Since(start))
		})
	}
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
