// Package models содержит доменные структуры записей о продажах и
// производные от них агрегаты, которые отдаются наружу в JSON.
package models

// SalesRecord представляет одну строку таблицы продаж.
// Сервис только читает эти записи и никогда их не изменяет.
type SalesRecord struct {
	ID          int64   `json:"id"`          // Идентификатор, назначенный при загрузке данных
	Title       string  `json:"title"`       // Название товара
	Description string  `json:"description"` // Описание товара
	Price       float64 `json:"price"`       // Цена, не отрицательная
	Category    string  `json:"category"`    // Категория товара
	DateOfSale  string  `json:"dateOfSale"`  // Дата продажи в том виде, в каком она хранится
	Sold        bool    `json:"sold"`        // Признак того, что товар продан
}

// CategoryCount — количество записей одной категории за месяц.
type CategoryCount struct {
	Category string `json:"category"`
	Items    int64  `json:"items"`
}
