package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "medication-cart/docs"
	mem "medication-cart/internal/adapters/storage/memory"
	pg "medication-cart/internal/adapters/storage/postgres"
	"medication-cart/internal/domain/catalog"
	"medication-cart/internal/domain/practice"
	"medication-cart/internal/middleware"
	"medication-cart/internal/platform/logger"
	"medication-cart/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => nop

	// Opcional: si viene, el catálogo se lee de Postgres. Si no, del seed en memoria.
	DB *sql.DB

	// Catálogo para el modo in-memory; nil => catálogo embebido.
	Catalog *seed.Catalog

	// Sesiones de práctica; nil => go-cache con SessionTTL.
	Sessions   practice.SessionStore
	SessionTTL time.Duration

	// DefaultStudent se usa si el request no trae X-Student-ID.
	DefaultStudent string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.StudentContext(opts.DefaultStudent))
	r.Use(middleware.AccessLog(log))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if opts.DB != nil {
			if err := pg.Ping(req.Context(), opts.DB); err != nil {
				log.Warn("health check failed", map[string]any{"error": err})
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var catalogRepo catalog.Repository
	if opts.DB != nil {
		catalogRepo = pg.NewCatalogRepo(opts.DB)
		log.Info("catalog backend", map[string]any{"backend": "postgres"})
	} else {
		c := opts.Catalog
		if c == nil {
			def, err := seed.Default()
			if err != nil {
				return nil, err
			}
			c = &def
		}
		catalogRepo = mem.NewCatalogRepo(c.Drawers, c.Medications)
		log.Info("catalog backend", map[string]any{
			"backend":     "memory",
			"drawers":     len(c.Drawers),
			"medications": len(c.Medications),
		})
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = mem.NewSessionStore(opts.SessionTTL)
	}

	// Services por módulo
	catalogSvc := catalog.NewService(catalogRepo)
	practiceSvc := practice.NewService(catalogSvc, sessions, log)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	practice.RegisterRoutes(r, practiceSvc)

	return r, nil
}
