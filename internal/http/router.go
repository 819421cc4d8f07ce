package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tajerhq/tajer/internal/http/client"
	"github.com/tajerhq/tajer/internal/http/export"
	"github.com/tajerhq/tajer/internal/http/importcsv"
	"github.com/tajerhq/tajer/internal/http/invoice"
	"github.com/tajerhq/tajer/internal/http/product"
	"github.com/tajerhq/tajer/internal/http/report"
)

func New(
	clientsV1 *client.Handler,
	productsV1 *product.Handler,
	invoicesV1 *invoice.Handler,
	importV1 *importcsv.Handler,
	dashboardV1 *report.Handler,
	exportV1 *export.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The frontend is a desktop webview served from its own origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productsV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/dashboard", func(r chi.Router) {
			dashboardV1.Routes(r)
		})

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
