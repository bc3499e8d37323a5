package salesstatistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/sales-statistics/internal/config"
	"github.com/magabrotheeeer/sales-statistics/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sales-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/sales-statistics/internal/peer"
	"github.com/magabrotheeeer/sales-statistics/internal/services/aggregator"
	salesservice "github.com/magabrotheeeer/sales-statistics/internal/services/sales"
	"github.com/magabrotheeeer/sales-statistics/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New открывает хранилище, проверяет его готовность и собирает HTTP-сервер.
// Без рабочего хранилища приложение не создаётся.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.Driver, cfg.StorageDSN())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := storage.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage is not ready: %w", err)
	}
	logger.Info("storage is ready", slog.String("driver", db.Driver()))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := NewRouter(logger, db, peer.NewClient(cfg.BaseURL, cfg.PeerTimeout, registry), registry)

	return &App{
		server: newHTTPServer(cfg, router),
		logger: logger,
		db:     db,
	}, nil
}

// NewRouter собирает сервисы поверх хранилища и peer-клиента и возвращает роутер.
func NewRouter(logger *slog.Logger, db *storage.Storage, source aggregator.StatsSource, registry *prometheus.Registry) chi.Router {
	salesService := salesservice.NewService(db, logger)
	aggregatorService := aggregator.NewService(source, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, salesService, aggregatorService, db,
		middlewarectx.NewMetrics(registry), registry)
	return router
}

// newHTTPServer ограничивает только чтение запроса и простой соединения.
// Время ответа не ограничено: /all-statistics ждёт peer столько, сколько
// позволяют контекст клиента и PEER_TIMEOUT.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:        cfg.AddressHTTP,
		Handler:     handler,
		ReadTimeout: cfg.TimeoutHTTP,
		IdleTimeout: cfg.IdleTimeout,
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Error("failed to close storage", sl.Err(cerr))
		}
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.Close(); cerr != nil {
			a.logger.Error("failed to close storage", sl.Err(cerr))
		}
		return err
	}
}
