// Package query разбирает параметры строки запроса с учётом значений по умолчанию.
package query

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/sales-statistics/internal/lib/month"
	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// ErrMissingMonth возвращается, если обязательный параметр month не передан.
var ErrMissingMonth = errors.New("month is required")

const (
	paramMonth  = "month"
	paramSearch = "search_q"
	paramPage   = "page"
)

// Month возвращает параметр month или def, если он не передан.
// Диапазон значения не проверяется.
func Month(r *http.Request, def int) (int, error) {
	return month.Parse(r.URL.Query().Get(paramMonth), def)
}

// RequiredMonth возвращает параметр month или ErrMissingMonth.
func RequiredMonth(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(paramMonth))
	if raw == "" {
		return 0, ErrMissingMonth
	}
	return month.Parse(raw, 0)
}

// Page возвращает номер страницы или def, если он не передан.
func Page(r *http.Request, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(paramPage))
	if raw == "" {
		return def, nil
	}
	p, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("page %q is not an integer: %w", raw, err)
	}
	return p, nil
}

// Filter собирает models.QueryFilter для /sales: month=1, search_q="", page=1
// по умолчанию. Поисковая строка используется как есть.
func Filter(r *http.Request) (models.QueryFilter, error) {
	m, err := Month(r, 1)
	if err != nil {
		return models.QueryFilter{}, err
	}
	p, err := Page(r, 1)
	if err != nil {
		return models.QueryFilter{}, err
	}
	return models.QueryFilter{
		Month:      m,
		SearchTerm: r.URL.Query().Get(paramSearch),
		Page:       p,
	}, nil
}
