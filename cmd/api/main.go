package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "medication-cart/internal/adapters/storage/postgres"
	"medication-cart/internal/platform/config"
	"medication-cart/internal/platform/logger"
	"medication-cart/internal/router"
	"medication-cart/internal/seed"

	"github.com/spf13/cobra"
)

var (
	port        string
	catalogFile string
	seedDB      bool
)

// @title Medication Cart Simulator API
// @version 1.0
// @description Catálogo del carro de medicación y ejercicio de preparación de dosis.
// @BasePath /
var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Servidor HTTP del simulador de carro de medicación",
	Long: `Sirve el catálogo del carro (cajones y medicaciones) y el ejercicio de
preparación de dosis. Con DB_DSN lee el catálogo de Postgres; sin DB_DSN usa
el catálogo YAML (CATALOG_FILE o el embebido) en memoria.`,
	SilenceUsage: true,
	RunE:         serve,
}

func init() {
	rootCmd.Flags().StringVar(&port, "port", "", "Puerto de escucha (default: PORT o 8080)")
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "Archivo YAML del catálogo (default: CATALOG_FILE o embebido)")
	rootCmd.Flags().BoolVar(&seedDB, "seed-db", false, "Con DB_DSN: crear schema y cargar el catálogo si la base está vacía")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	if catalogFile != "" {
		cfg.CatalogFile = catalogFile
	}

	log := logger.New(cfg.LoggerOptions())
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := seed.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if seedDB {
			if err := pg.EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
			inserted, err := pg.SeedIfEmpty(ctx, db, cat.Drawers, cat.Medications)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			log.Info("catalog seed", map[string]any{"inserted": inserted})
		}
	}

	h, err := router.NewRouter(router.Options{
		Logger:         log,
		DB:             db,
		Catalog:        &cat,
		SessionTTL:     cfg.SessionTTL,
		DefaultStudent: cfg.DefaultStudent,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
