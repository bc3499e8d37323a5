package sales

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter возвращается, если параметры запроса не прошли валидацию.
var ErrInvalidFilter = errors.New("invalid query filter")

// QueryError — ошибка чтения данных о продажах: неверный фильтр или
// недоступное хранилище. Причина доступна через errors.Unwrap.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
