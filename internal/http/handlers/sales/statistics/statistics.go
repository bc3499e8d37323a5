// Package statistics реализует HTTP-обработчик сводки продаж за месяц.
package statistics

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

// Handler обрабатывает запросы GET /statistics.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает расчёт сводки продаж.
type Service interface {
	GetStatistics(ctx context.Context, month int) (models.Statistics, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка продаж за месяц
// @Description Сумма цен проданных товаров, количество проданных и непроданных.
// @Tags Sales
// @Produce json
// @Param month query int false "Номер месяца" default(1)
// @Success 200 {object} models.Statistics
// @Failure 500 {object} response.ErrorResponse
// @Router /statistics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sales.statistics"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	month, err := query.Month(r, 1)
	if err != nil {
		log.Error("failed to parse month", sl.Err(err))
		response.Fail(w, r, response.MsgStatistics)
		return
	}

	res, err := h.service.GetStatistics(r.Context(), month)
	if err != nil {
		log.Error("failed to get statistics", sl.Err(err))
		response.Fail(w, r, response.MsgStatistics)
		return
	}

	render.JSON(w, r, res)
}
