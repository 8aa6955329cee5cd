package catalog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"InventoryAPI/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// CORSAllowedOrigins defaults to every origin.
	CORSAllowedOrigins []string

	// WriteRateLimit <= 0 leaves mutations unthrottled.
	WriteRateLimit  int
	WriteRateWindow time.Duration
}

const (
	productsPath = "/api/Products"
	productPath  = "/api/Products/{id}"
)

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupRoutes(r, s, deps)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(kit.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePattern))
	}

	r.Use(cors.Handler(corsOptions(deps.CORSAllowedOrigins)))
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{kit.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func setupRoutes(r *chi.Mux, s *Server, deps HTTPDeps) {
	writeLimiter := kit.NewIPRateLimiter(deps.WriteRateLimit, deps.WriteRateWindow)

	r.Get("/", redirectToDocs)
	r.Get(docsPath, serveHTML(swaggerHTML))
	r.Get(redocPath, serveHTML(redocHTML))
	r.Get(openAPIPath, serveOpenAPI)

	r.Get("/healthz", healthz)
	r.Get("/readyz", healthz)

	r.Get(productsPath, s.list)
	r.Get(productPath, s.get)
	r.Group(func(wr chi.Router) {
		wr.Use(writeLimiter.Middleware)
		wr.Post(productsPath, s.create)
		wr.Put(productPath, s.update)
		wr.Delete(productPath, s.delete)
	})

	setupMetrics(r, s, deps)
}

func setupMetrics(r *chi.Mux, s *Server, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "catalog_products",
			Help:        "Products currently held in the store",
			ConstLabels: prometheus.Labels{"service": deps.Service},
		},
		func() float64 { return float64(s.Store.Len()) },
	))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
