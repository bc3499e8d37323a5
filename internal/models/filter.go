package models

import "math"

// PageSize — количество записей на одной странице выдачи /sales.
const PageSize = 10

// MaxPage — наибольший номер страницы, для которого Offset не переполняет int.
const MaxPage = math.MaxInt/PageSize + 1

// QueryFilter содержит разобранные параметры запроса к списку продаж.
// Правила валидации описаны тегами для go-playground/validator.
type QueryFilter struct {
	Month      int    `validate:"min=1,max=12"` // Номер месяца продажи
	SearchTerm string // Подстрока для поиска по title, price и description
	Page       int    `validate:"min=1"` // Номер страницы, начиная с 1
}

// InRange сообщает, можно ли вычислить Offset без переполнения.
func (f QueryFilter) InRange() bool {
	return f.Page >= 1 && f.Page <= MaxPage
}

// Offset возвращает количество пропускаемых записей для текущей страницы.
// Для страниц вне InRange результат не определён.
func (f QueryFilter) Offset() int {
	return (f.Page - 1) * PageSize
}
