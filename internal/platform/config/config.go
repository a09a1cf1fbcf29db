package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"medication-cart/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	defaultPort       = "8080"
	defaultStudent    = "student"
	defaultSessionTTL = 1 * time.Hour
)

// Config de la app. Orden de precedencia: defaults < archivo YAML (CART_CONFIG) < env < flags.
type Config struct {
	Port  string `yaml:"port"`
	DBDSN string `yaml:"db_dsn"`

	// CatalogFile: YAML del catálogo; vacío = catálogo embebido.
	CatalogFile string `yaml:"catalog_file"`

	// DefaultStudent se usa cuando el request no trae X-Student-ID.
	DefaultStudent string `yaml:"default_student"`

	SessionTTL time.Duration `yaml:"-"`
	RawTTL     string        `yaml:"session_ttl"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
	File   string `yaml:"file"`
}

// Load lee CART_CONFIG (opcional) y luego las variables de entorno.
func Load() (Config, error) {
	return LoadFrom(os.Getenv("CART_CONFIG"), os.Getenv)
}

// LoadFrom permite inyectar path y getenv (tests).
func LoadFrom(path string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:           defaultPort,
		DefaultStudent: defaultStudent,
		SessionTTL:     defaultSessionTTL,
		Log:            LogConfig{App: "medication-cart"},
	}

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	override(&cfg.Port, getenv("PORT"))
	override(&cfg.DBDSN, getenv("DB_DSN"))
	override(&cfg.CatalogFile, getenv("CATALOG_FILE"))
	override(&cfg.DefaultStudent, getenv("DEFAULT_STUDENT"))
	override(&cfg.RawTTL, getenv("SESSION_TTL"))
	override(&cfg.Log.Level, getenv("LOG_LEVEL"))
	override(&cfg.Log.Format, getenv("LOG_FORMAT"))
	override(&cfg.Log.App, getenv("APP_NAME"))
	override(&cfg.Log.File, getenv("LOG_FILE"))

	if raw := strings.TrimSpace(cfg.RawTTL); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: session_ttl %q", ErrInvalidConfig, raw)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Addr es la dirección de escucha (":8080").
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
		File:   c.Log.File,
	}
}
