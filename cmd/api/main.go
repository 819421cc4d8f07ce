package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tajerhq/tajer/internal/client"
	clientStore "github.com/tajerhq/tajer/internal/client/store"
	"github.com/tajerhq/tajer/internal/config"
	"github.com/tajerhq/tajer/internal/database"
	"github.com/tajerhq/tajer/internal/export"
	tajerHttp "github.com/tajerhq/tajer/internal/http"
	clientHandler "github.com/tajerhq/tajer/internal/http/client"
	exportHandler "github.com/tajerhq/tajer/internal/http/export"
	importHandler "github.com/tajerhq/tajer/internal/http/importcsv"
	invoiceHandler "github.com/tajerhq/tajer/internal/http/invoice"
	productHandler "github.com/tajerhq/tajer/internal/http/product"
	reportHandler "github.com/tajerhq/tajer/internal/http/report"
	"github.com/tajerhq/tajer/internal/importer"
	"github.com/tajerhq/tajer/internal/invoice"
	invoiceStore "github.com/tajerhq/tajer/internal/invoice/store"
	"github.com/tajerhq/tajer/internal/product"
	productStore "github.com/tajerhq/tajer/internal/product/store"
	"github.com/tajerhq/tajer/internal/report"
)

func main() {
	// Optional local overrides; absence is not an error.
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

	var (
		clientService  = client.NewService(clientStore.New(db))
		productService = product.NewService(productStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db))
		reportService  = report.NewService(invoiceStore.New(db), clientStore.New(db), productStore.New(db))
		importService  = importer.NewService()
		exportService  = export.NewService(invoiceService, clientService)
	)

	var (
		clientH  = clientHandler.NewHandler(clientService)
		productH = productHandler.NewHandler(productService)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
		importH  = importHandler.NewHandler(importService, productService)
		reportH  = reportHandler.NewHandler(reportService)
		exportH  = exportHandler.NewHandler(exportService)
	)

	router := tajerHttp.New(clientH, productH, invoiceH, importH, reportH, exportH, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.App.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
