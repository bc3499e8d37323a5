// Package salesstatistics собирает зависимости приложения и регистрирует маршруты.
package salesstatistics

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/sales-statistics/docs"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/sales/allstatistics"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/sales/categories"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/sales/items"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/sales/list"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/sales/statistics"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/system/health"
	"github.com/magabrotheeeer/sales-statistics/internal/http/handlers/system/root"
	"github.com/magabrotheeeer/sales-statistics/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sales-statistics/internal/services/aggregator"
	salesservice "github.com/magabrotheeeer/sales-statistics/internal/services/sales"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	salesService *salesservice.Service,
	aggregatorService *aggregator.Service,
	db health.Pinger,
	metrics *middlewarectx.Metrics,
	gatherer prometheus.Gatherer,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware(metrics),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}),
	)

	r.Get("/", root.New().ServeHTTP)
	r.Get("/sales", list.New(logger, salesService).ServeHTTP)
	r.Get("/statistics", statistics.New(logger, salesService).ServeHTTP)
	r.Get("/items", items.New(logger, salesService).ServeHTTP)
	r.Get("/categories", categories.New(logger, salesService).ServeHTTP)
	r.Get("/all-statistics", allstatistics.New(logger, aggregatorService).ServeHTTP)

	r.Get("/healthz", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
