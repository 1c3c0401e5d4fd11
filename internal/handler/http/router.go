package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srujan0404/coffee-main/internal/service"
	"github.com/srujan0404/coffee-main/pkg/health"
	"github.com/srujan0404/coffee-main/pkg/middleware"
)

// RouterConfig carries the services and knobs the router needs.
type RouterConfig struct {
	Cart      *service.CartService
	Catalog   *service.CatalogService
	Orders    *service.OrderService
	Favorites *service.FavoritesService

	Health         *health.Handler
	Logger         *slog.Logger
	RateLimitRPS   int
	RateLimitBurst int
	PprofCIDRs     []string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.ContextLogger(cfg.Logger))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}

	r.Get("/health/live", cfg.Health.Liveness())
	r.Get("/health/ready", cfg.Health.Readiness())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	orderHandler := NewOrderHandler(cfg.Orders, cfg.Logger)
	favoritesHandler := NewFavoritesHandler(cfg.Favorites, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog is public; carts, orders and favorites are per-user.
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/coffees", catalogHandler.ListCoffees)
			r.Get("/beans", catalogHandler.ListBeans)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/products/{productID}", catalogHandler.GetProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(UserIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Post("/items", cartHandler.AddItem)
				r.Post("/items/{productID}/{size}/increment", cartHandler.IncrementItem)
				r.Post("/items/{productID}/{size}/decrement", cartHandler.DecrementItem)
				r.Post("/checkout", orderHandler.Checkout)
			})

			r.Get("/orders", orderHandler.ListOrders)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", favoritesHandler.List)
				r.Put("/{productID}", favoritesHandler.Add)
				r.Delete("/{productID}", favoritesHandler.Remove)
			})
		})
	})

	return r
}
