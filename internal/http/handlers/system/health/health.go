// Package health реализует проверку готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sales-statistics/internal/lib/sl"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает запросы GET /healthz.
type Handler struct {
	log *slog.Logger
	db  Pinger
}

// New создаёт новый Handler.
func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

// ServeHTTP отвечает 200, если хранилище доступно, и 503 в противном случае.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.system.health"

	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("storage is unavailable", sl.Op(op), sl.Err(err))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]any{
			"status": "unavailable",
		})
		return
	}

	render.JSON(w, r, map[string]any{
		"status": "ok",
	})
}
