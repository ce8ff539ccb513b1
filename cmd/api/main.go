package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/advisor/gemini"
	"github.com/moneta-app/moneta/internal/auth"
	"github.com/moneta-app/moneta/internal/budget"
	budgetStore "github.com/moneta-app/moneta/internal/budget/store"
	"github.com/moneta-app/moneta/internal/config"
	"github.com/moneta-app/moneta/internal/database"
	monetaHttp "github.com/moneta-app/moneta/internal/http"
	advisorHandler "github.com/moneta-app/moneta/internal/http/advisor"
	budgetHandler "github.com/moneta-app/moneta/internal/http/budget"
	txHandler "github.com/moneta-app/moneta/internal/http/transaction"
	"github.com/moneta-app/moneta/internal/money"
	"github.com/moneta-app/moneta/internal/transaction"
	txStore "github.com/moneta-app/moneta/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	formatter, err := money.NewFormatter(cfg.Currency)
	if err != nil {
		slog.Error("failed to build currency formatter", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		geminiClient       = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
		advisorService     = advisor.NewService(transactionService, geminiClient, formatter)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		advisorH     = advisorHandler.NewHandler(advisorService)
	)

	verifier := auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Algorithm)

	router := monetaHttp.New(verifier, cfg.CORS.FrontendURL, transactionH, budgetH, advisorH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
