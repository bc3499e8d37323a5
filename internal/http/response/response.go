// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков, в том числе фиксированных сообщений об ошибках.
package response

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrorResponse — тело ответа при ошибке. Детали ошибки клиенту не передаются.
type ErrorResponse struct {
	Error string `json:"error" example:"An error occurred while fetching statistics."`
}

// Сообщения об ошибках по эндпоинтам.
const (
	MsgSales         = "An error occurred while fetching sales data."
	MsgStatistics    = "An error occurred while fetching statistics."
	MsgPriceRanges   = "An error occurred while fetching item price ranges."
	MsgCategories    = "An error occurred while fetching categories."
	MsgAllStatistics = "An error occurred while fetching all statistics."
)

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Fail пишет ErrorResponse со статусом 500.
func Fail(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Error(msg))
}
