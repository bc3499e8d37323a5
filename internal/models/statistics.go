package models

// Statistics — сводка продаж за месяц.
// Sales равен nil, если в месяце нет проданных товаров: сумма по пустому
// множеству в SQL даёт NULL, и в JSON это поле становится null.
type Statistics struct {
	Sales       *float64 `json:"sales"`
	SoldItems   int64    `json:"soldItems"`
	UnSoldItems int64    `json:"unSoldItems"`
}

// PriceRanges — гистограмма цен по десяти фиксированным диапазонам.
// Порядок полей задаёт порядок ключей в JSON.
type PriceRanges struct {
	Range0to100   int64 `json:"0-100"`
	Range101to200 int64 `json:"101-200"`
	Range201to300 int64 `json:"201-300"`
	Range301to400 int64 `json:"301-400"`
	Range401to500 int64 `json:"401-500"`
	Range501to600 int64 `json:"501-600"`
	Range601to700 int64 `json:"601-700"`
	Range701to800 int64 `json:"701-800"`
	Range801to900 int64 `json:"801-900"`
	Range901Above int64 `json:"901-above"`
}

// Total возвращает сумму всех диапазонов.
func (p PriceRanges) Total() int64 {
	return p.Range0to100 + p.Range101to200 + p.Range201to300 + p.Range301to400 +
		p.Range401to500 + p.Range501to600 + p.Range601to700 + p.Range701to800 +
		p.Range801to900 + p.Range901Above
}

// CombinedStatistics — объединённый ответ /all-statistics.
// MonthName опускается, если номер месяца вне диапазона 1–12.
type CombinedStatistics struct {
	MonthName      string          `json:"monthName,omitempty"`
	Statistics     Statistics      `json:"statistics"`
	ItemPriceRange PriceRanges     `json:"itemPriceRange"`
	Categories     []CategoryCount `json:"categories"`
}
