package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bestshop/storefront-backend/api/controllers"
	cartcontrollers "github.com/bestshop/storefront-backend/api/controllers/cart"
	"github.com/bestshop/storefront-backend/api/middleware"
	cartsvc "github.com/bestshop/storefront-backend/internal/cart"
	"github.com/bestshop/storefront-backend/internal/catalog"
	"github.com/bestshop/storefront-backend/pkg/config"
	"github.com/bestshop/storefront-backend/pkg/logger"
	"github.com/bestshop/storefront-backend/pkg/metrics"
	"github.com/bestshop/storefront-backend/pkg/redis"
)

// RouterParams groups everything the router wires together.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	Metrics         *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
	Redis           redis.Pinger
	Catalog         *catalog.Service
	Cart            *cartsvc.Service
}

// NewRouter assembles the storefront API.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.Metrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		checks := []controllers.ReadinessCheck{}
		if params.Redis != nil {
			checks = append(checks, controllers.ReadinessCheck{Name: "redis", Check: params.Redis.Ping})
		}
		if params.Catalog != nil {
			checks = append(checks, controllers.ReadinessCheck{Name: "catalog", Check: params.Catalog.Ready})
		}
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, checks...))
	})

	if params.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.Ping())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", controllers.Home(params.Catalog, logg))
		r.Get("/catalog", controllers.CatalogPage(params.Catalog, logg, cfg.Catalog.ItemsPerPage))
		r.Get("/product", controllers.ProductDetail(params.Catalog, logg))
		r.Get("/chrome/nav", controllers.Chrome())

		r.Post("/contact", controllers.Contact(logg))
		r.Post("/auth/login", controllers.Login(logg))
		r.Post("/reviews", controllers.SubmitReview(params.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(logg, cfg.Cart.SessionTTL))
			r.Get("/", cartcontrollers.Fetch(params.Cart, logg))
			r.Delete("/", cartcontrollers.Clear(params.Cart, logg))
			r.Post("/items", cartcontrollers.AddItem(params.Cart, logg))
			r.Patch("/items/{productID}", cartcontrollers.UpdateItem(params.Cart, logg))
			r.Delete("/items/{productID}", cartcontrollers.RemoveItem(params.Cart, logg))
			r.Post("/checkout", cartcontrollers.Checkout(params.Cart, logg))
		})
	})

	return r
}
