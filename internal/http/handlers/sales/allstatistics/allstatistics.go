// Package allstatistics реализует HTTP-обработчик объединённой статистики за месяц.
package allstatistics

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

// Handler обрабатывает запросы GET /all-statistics.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает сборку объединённой статистики.
type Service interface {
	GetCombinedStatistics(ctx context.Context, month int) (models.CombinedStatistics, error)
}

// New создаёт новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Объединённая статистика за месяц
// @Description Название месяца, сводка, гистограмма цен и категории. Ошибка любого из трёх запросов даёт 500.
// @Tags Statistics
// @Produce json
// @Param month query int false "Номер месяца" default(3)
// @Success 200 {object} models.CombinedStatistics
// @Failure 500 {object} response.ErrorResponse
// @Router /all-statistics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.sales.allstatistics"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	month, err := query.Month(r, 3)
	if err != nil {
		log.Error("failed to parse month", sl.Err(err))
		response.Fail(w, r, response.MsgAllStatistics)
		return
	}

	res, err := h.service.GetCombinedStatistics(r.Context(), month)
	if err != nil {
		log.Error("failed to get all statistics", sl.Err(err))
		response.Fail(w, r, response.MsgAllStatistics)
		return
	}

	log.Info("all statistics assembled", slog.Int("month", month))
	render.JSON(w, r, res)
}
