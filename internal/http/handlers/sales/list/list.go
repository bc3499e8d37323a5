// Package list реализует HTTP-обработчик постраничного поиска записей о продажах за месяц.
package list

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

// Handler обрабатывает запросы GET /sales.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает поиск записей о продажах.
type Service interface {
	ListSales(ctx context.Context, filter models.QueryFilter) ([]models.SalesRecord, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список продаж за месяц
// @Description Возвращает до 10 записей за месяц, у которых title, price или description содержат search_q.
// @Tags Sales
// @Produce json
// @Param month query int false "Номер месяца" default(1)
// @Param search_q query string false "Подстрока для поиска" default()
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {array} models.SalesRecord
// @Failure 500 {object} response.ErrorResponse
// @Router /sales [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sales.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := query.Filter(r)
	if err != nil {
		log.Error("failed to parse query", sl.Err(err))
		response.Fail(w, r, response.MsgSales)
		return
	}

	res, err := h.service.ListSales(r.Context(), filter)
	if err != nil {
		log.Error("failed to list sales", sl.Err(err))
		response.Fail(w, r, response.MsgSales)
		return
	}

	log.Debug("sales listed", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
