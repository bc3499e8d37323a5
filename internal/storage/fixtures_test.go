package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

const sqliteSchema = `
	CREATE TABLE salesData (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL,
		category TEXT NOT NULL,
		dateOfSale TEXT NOT NULL,
		sold BOOLEAN NOT NULL
	)`

// marchSales — записи за март, на которых проверяются все агрегаты.
// Продано: 2, 3, 5, 6. Не продано: 1, 4, 7.
var marchSales = []models.SalesRecord{
	{ID: 1, Title: "Mens Casual Premium Slim Fit T-Shirts", Description: "Slim-fitting style", Price: 22.3, Category: "men's clothing", DateOfSale: "2021-03-27T20:29:54+05:30", Sold: false},
	{ID: 2, Title: "Fjallraven Backpack", Description: "Your perfect pack for everyday use", Price: 329.85, Category: "men's clothing", DateOfSale: "2022-03-15T20:29:54+05:30", Sold: true},
	{ID: 3, Title: "WD 2TB Elements Portable Hard Drive", Description: "USB 3.0 and USB 2.0 compatibility", Price: 64, Category: "electronics", DateOfSale: "2021-03-05T20:29:54+05:30", Sold: true},
	{ID: 4, Title: "Samsung 49-Inch Monitor", Description: "49 inch super ultrawide monitor", Price: 999.99, Category: "electronics", DateOfSale: "2022-03-10T20:29:54+05:30", Sold: false},
	{ID: 5, Title: "Silver Dragon Station Chain Bracelet Ring", Description: "Classic dragon design", Price: 100.5, Category: "jewelery", DateOfSale: "2021-03-01T20:29:54+05:30", Sold: true},
	{ID: 6, Title: "Solid Gold Petite Micropave Ring", Description: "Solid gold", Price: 100, Category: "jewelery", DateOfSale: "2022-03-20T20:29:54+05:30", Sold: true},
	{ID: 7, Title: "White Gold Plated Princess", Description: "Price on a bucket edge", Price: 101, Category: "jewelery", DateOfSale: "2021-03-31T20:29:54+05:30", Sold: false},
}

// novemberSale — запись другого месяца, которая не должна попадать в выборки за март.
var novemberSale = models.SalesRecord{
	ID: 8, Title: "Winter Jacket Ring", Description: "Warm", Price: 56.99, Category: "women's clothing", DateOfSale: "2021-11-27T20:29:54+05:30", Sold: true,
}

// setupSQLiteStorage создаёт файл SQLite во временном каталоге, заполняет
// его записями и открывает через New.
func setupSQLiteStorage(t *testing.T, records ...models.SalesRecord) *Storage {
	t.Helper()

	path := filepath.Join(t.TempDir(), "salesDatabase.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err, "failed to create salesData table")

	for _, r := range records {
		_, err = db.Exec(`INSERT INTO salesData (id, title, description, price, category, dateOfSale, sold)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Title, r.Description, r.Price, r.Category, r.DateOfSale, r.Sold)
		require.NoError(t, err, "failed to insert sale %d", r.ID)
	}
	require.NoError(t, db.Close())

	s, err := New(DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, CheckDatabaseReady(context.Background(), s))

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// julySales генерирует n записей за июль для проверки постраничной выдачи.
func julySales(n int) []models.SalesRecord {
	records := make([]models.SalesRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.SalesRecord{
			ID:          int64(100 + i),
			Title:       fmt.Sprintf("Item %d", i),
			Description: "generated",
			Price:       float64(i * 10),
			Category:    "misc",
			DateOfSale:  fmt.Sprintf("2021-07-%02dT10:00:00+05:30", 1+i%28),
			Sold:        i%2 == 0,
		})
	}
	return records
}

func allFixtures() []models.SalesRecord {
	return append(append([]models.SalesRecord{}, marchSales...), novemberSale)
}
