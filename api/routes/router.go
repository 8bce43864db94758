package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jak-krittin/minishop-backend/api/controllers"
	"github.com/jak-krittin/minishop-backend/api/middleware"
	"github.com/jak-krittin/minishop-backend/internal/auth"
	"github.com/jak-krittin/minishop-backend/internal/products"
	"github.com/jak-krittin/minishop-backend/pkg/config"
	"github.com/jak-krittin/minishop-backend/pkg/logger"
	"github.com/jak-krittin/minishop-backend/pkg/metrics"
	"github.com/jak-krittin/minishop-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	AuthService auth.Service
	Products    products.Service
	Images      controllers.ImageStore
	Metrics     *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, redisPinger(deps.Redis), logg))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	var limiter middleware.RateLimiter
	if deps.Redis != nil {
		limiter = deps.Redis
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, limiter, logg)).
			Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	productDeps := controllers.ProductsDeps{
		Service:  deps.Products,
		Images:   deps.Images,
		MaxBytes: cfg.Uploads.MaxBytes(),
		Logger:   logg,
	}

	r.Route("/api/products", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/", controllers.ListProducts(productDeps))
		r.Get("/{productId}", controllers.GetProduct(productDeps))
		r.Post("/", controllers.CreateProduct(productDeps))
		r.Put("/{productId}", controllers.UpdateProduct(productDeps))
		r.Delete("/{productId}", controllers.DeleteProduct(productDeps))
	})

	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir)))
	r.Method(http.MethodGet, "/uploads/*", uploads)

	return r
}

// redisPinger avoids handing a typed nil pointer to an interface field.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
