// Package items реализует HTTP-обработчик гистограммы цен за месяц.
package items

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

// Handler обрабатывает запросы GET /items. Параметр month обязателен.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает расчёт гистограммы цен.
type Service interface {
	GetPriceHistogram(ctx context.Context, month int) (models.PriceRanges, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Гистограмма цен за месяц
// @Description Количество записей в каждом из десяти ценовых диапазонов.
// @Tags Sales
// @Produce json
// @Param month query int true "Номер месяца"
// @Success 200 {object} models.PriceRanges
// @Failure 500 {object} response.ErrorResponse
// @Router /items [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sales.items"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	month, err := query.RequiredMonth(r)
	if err != nil {
		log.Error("failed to parse month", sl.Err(err))
		response.Fail(w, r, response.MsgPriceRanges)
		return
	}

	res, err := h.service.GetPriceHistogram(r.Context(), month)
	if err != nil {
		log.Error("failed to get price ranges", sl.Err(err))
		response.Fail(w, r, response.MsgPriceRanges)
		return
	}

	render.JSON(w, r, res)
}
