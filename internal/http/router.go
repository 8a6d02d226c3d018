package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atelierhq/atelier/internal/http/bootstrap"
	"github.com/atelierhq/atelier/internal/http/catalog"
	"github.com/atelierhq/atelier/internal/http/client"
	"github.com/atelierhq/atelier/internal/http/quote"
	"github.com/atelierhq/atelier/internal/http/receipt"
	"github.com/atelierhq/atelier/internal/http/settings"
	"github.com/atelierhq/atelier/internal/http/transaction"
)

func New(
	bootstrapV1 *bootstrap.Handler,
	catalogV1 *catalog.Handler,
	clientsV1 *client.Handler,
	quotesV1 *quote.Handler,
	receiptsV1 *receipt.Handler,
	transactionsV1 *transaction.Handler,
	settingsV1 *settings.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/bootstrap", bootstrapV1.Routes)

		r.Route("/materials", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			catalogV1.MaterialRoutes(r)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			catalogV1.ProductRoutes(r)
		})

		r.Route("/clients", clientsV1.Routes)

		r.Route("/quotes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			quotesV1.Routes(r)
		})

		r.Route("/receipts", receiptsV1.Routes)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/settings", settingsV1.Routes)
	})

	return router
}
