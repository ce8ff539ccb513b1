package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moneta-app/moneta/internal/auth"
	advisorHandler "github.com/moneta-app/moneta/internal/http/advisor"
	budgetHandler "github.com/moneta-app/moneta/internal/http/budget"
	"github.com/moneta-app/moneta/internal/http/respond"
	txHandler "github.com/moneta-app/moneta/internal/http/transaction"
)

func New(
	verifier *auth.Verifier,
	frontendURL string,
	transactionsV1 *txHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	advisorV1 *advisorHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			advisorV1.Routes(r)
		})
	})

	return router
}
