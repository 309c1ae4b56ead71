package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkouthttp "funnelkit/internal/http/checkout"
	upsellhttp "funnelkit/internal/http/upsell"
	"funnelkit/internal/http/webhook"
)

func New(
	checkoutV1 *checkouthttp.Handler,
	upsellV1 *upsellhttp.Handler,
	webhookV1 *webhook.Handler,
	db *sql.DB,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/checkout", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			checkoutV1.Routes(r)
		})

		r.Route("/upsell", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			upsellV1.Routes(r)
		})
	})

	// The gateway signs raw bodies, so the webhook route stays outside the
	// JSON content-type guard.
	router.Route("/webhooks", webhookV1.Routes)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}
