// Package categories реализует HTTP-обработчик подсчёта записей по категориям.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sales-statistics/internal/http/query"
	"github.com/magabrotheeeer/sales-statistics/internal/http/response"
	"github.com/magabrotheeeer/sales-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// Handler обрабатывает запросы GET /categories.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает подсчёт по категориям.
type Service interface {
	GetCategoryCounts(ctx context.Context, month int) ([]models.CategoryCount, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Категории за месяц
// @Tags Sales
// @Produce json
// @Param month query int false "Номер месяца" default(1)
// @Success 200 {array} models.CategoryCount
// @Failure 500 {object} response.ErrorResponse
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sales.categories"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	month, err := query.Month(r, 1)
	if err != nil {
		log.Error("failed to parse month", sl.Err(err))
		response.Fail(w, r, response.MsgCategories)
		return
	}

	res, err := h.service.GetCategoryCounts(r.Context(), month)
	if err != nil {
		log.Error("failed to get categories", sl.Err(err))
		response.Fail(w, r, response.MsgCategories)
		return
	}

	render.JSON(w, r, res)
}
