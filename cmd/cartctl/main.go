package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"medication-cart/internal/adapters/remote"
	mem "medication-cart/internal/adapters/storage/memory"
	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/middleware"
	"medication-cart/internal/platform/config"
	"medication-cart/internal/platform/httpclient"
	"medication-cart/internal/platform/logger"
	"medication-cart/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	catalogFile string
	serverURL   string
	studentID   string
	timeout     time.Duration
	noColor     bool

	cfg config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cartctl",
	Short: "Herramientas de línea de comandos del carro de medicación",
	Long: `cartctl valida catálogos, lista el contenido del carro y corre el
ejercicio de preparación de dosis en la terminal.

El catálogo se lee de --catalog (YAML), de --server (un servidor api en marcha)
o, si no se indica nada, del catálogo embebido.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if catalogFile == "" {
			catalogFile = cfg.CatalogFile
		}
		if studentID == "" {
			studentID = cfg.DefaultStudent
		}
		if noColor {
			color.NoColor = true
		}

		opts := cfg.LoggerOptions()
		opts.Output = os.Stderr
		log = logger.New(opts)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Archivo YAML del catálogo (default: CATALOG_FILE o embebido)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL de un servidor api (p.ej. http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&studentID, "student", "", "ID del estudiante (default: DEFAULT_STUDENT o \"student\")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout de cada request al servidor")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Desactivar colores")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// catalogService arma el servicio de catálogo sobre el origen elegido.
// Con --server, cada lectura se completa (con reintentos acotados) o falla antes de seguir.
func catalogService() (*catalog.Service, error) {
	if serverURL != "" {
		if catalogFile != "" && catalogFile != cfg.CatalogFile {
			return nil, errors.New("use either --catalog or --server, not both")
		}
		c, err := httpclient.New(serverURL, timeout)
		if err != nil {
			return nil, err
		}
		c.Headers = map[string]string{middleware.StudentHeader: studentID}
		log.Debug("remote catalog", map[string]any{"server": serverURL})
		return catalog.NewService(remote.NewCatalogRepo(c)), nil
	}

	cat, err := seed.Load(catalogFile)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(mem.NewCatalogRepo(cat.Drawers, cat.Medications)), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
