// Package month содержит справочник названий месяцев и разбор номера
// месяца из параметров запроса.
package month

import (
	"fmt"
	"strconv"
	"strings"
)

var names = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// Name возвращает английское название месяца по его номеру.
// Для номера вне 1–12 возвращает пустую строку и false, это не ошибка.
func Name(m int) (string, bool) {
	name, ok := names[m]
	return name, ok
}

// Parse разбирает номер месяца из строки. Пустая строка даёт def.
// Проверка диапазона не выполняется: это задача сервисного слоя.
func Parse(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("month %q is not an integer: %w", raw, err)
	}
	return m, nil
}
