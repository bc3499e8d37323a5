// Package root реализует обработчик корневого пути.
package root

import (
	"net/http"

	"github.com/go-chi/render"
)

// Message — текст ответа на GET /.
const Message = "Backend Server is running!"

// Handler отвечает фиксированной строкой, пока процесс жив.
type Handler struct{}

// New создаёт новый Handler.
func New() *Handler {
	return &Handler{}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, Message)
}
