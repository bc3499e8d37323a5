package storage

import (
	"fmt"
	"strings"
)

// dialect описывает различия SQL между поддерживаемыми базами.
type dialect struct {
	table      string
	columns    []string // id, title, description, price, category, дата продажи, sold
	dateColumn string
	monthOf    func(col string) string
	contains   func(haystack, needle string) string
	priceText  string
	bind       func(n int) string
}

var sqliteDialect = dialect{
	table:      "salesData",
	columns:    []string{"id", "title", "description", "price", "category", "dateOfSale", "sold"},
	dateColumn: "dateOfSale",
	monthOf: func(col string) string {
		return "CAST(strftime('%m', " + col + ") AS INTEGER)"
	},
	contains: func(haystack, needle string) string {
		return "instr(" + haystack + ", " + needle + ") > 0"
	},
	priceText: "CAST(price AS TEXT)",
	bind:      func(int) string { return "?" },
}

var postgresDialect = dialect{
	table:      "sales_data",
	columns:    []string{"id", "title", "description", "price", "category", "date_of_sale", "sold"},
	dateColumn: "date_of_sale",
	monthOf: func(col string) string {
		return "EXTRACT(MONTH FROM " + col + ")"
	},
	contains: func(haystack, needle string) string {
		return "strpos(" + haystack + ", " + needle + ") > 0"
	},
	priceText: "price::text",
	bind:      func(n int) string { return fmt.Sprintf("$%d", n) },
}

// priceBounds — верхние границы диапазонов гистограммы цен.
// Диапазон i включает цены (priceBounds[i-1], priceBounds[i]], первый
// начинается с нуля, последний открыт сверху. Так каждая запись попадает
// ровно в один диапазон, в том числе при дробной цене вроде 100.5.
var priceBounds = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}

// queries — готовые тексты запросов для конкретного диалекта.
type queries struct {
	table       string
	probe       string
	listSales   string
	statistics  string
	priceRanges string
	categories  string
}

func newQueries(driver string) (queries, error) {
	switch driver {
	case DriverSQLite:
		return buildQueries(sqliteDialect), nil
	case DriverPostgres:
		return buildQueries(postgresDialect), nil
	default:
		return queries{}, fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}
}

func buildQueries(d dialect) queries {
	monthFilter := d.monthOf(d.dateColumn) + " = " + d.bind(1)

	// Порядок не задаётся: выдача идёт в порядке хранения.
	listSales := fmt.Sprintf(`SELECT %s
			  FROM %s
			  WHERE %s
			    AND (%s OR %s OR %s)
			  LIMIT %s OFFSET %s`,
		strings.Join(d.columns, ", "), d.table, monthFilter,
		d.contains("title", d.bind(2)),
		d.contains(d.priceText, d.bind(3)),
		d.contains("description", d.bind(4)),
		d.bind(5), d.bind(6))

	statistics := fmt.Sprintf(`SELECT
			    SUM(CASE WHEN sold = TRUE THEN price END) AS sales,
			    COUNT(CASE WHEN sold = TRUE THEN price END) AS soldItems,
			    COUNT(CASE WHEN sold <> TRUE THEN price END) AS unSoldItems
			  FROM %s
			  WHERE %s`, d.table, monthFilter)

	buckets := make([]string, 0, len(priceBounds)+1)
	lower := -1
	for _, upper := range priceBounds {
		cond := fmt.Sprintf("price <= %d", upper)
		if lower >= 0 {
			cond = fmt.Sprintf("price > %d AND %s", lower, cond)
		}
		buckets = append(buckets, fmt.Sprintf("COUNT(CASE WHEN %s THEN 1 END)", cond))
		lower = upper
	}
	buckets = append(buckets, fmt.Sprintf("COUNT(CASE WHEN price > %d THEN 1 END)", lower))

	priceRanges := fmt.Sprintf(`SELECT
			    %s
			  FROM %s
			  WHERE %s`, strings.Join(buckets, ",\n\t\t\t    "), d.table, monthFilter)

	categories := fmt.Sprintf(`SELECT category, COUNT(*) AS items
			  FROM %s
			  WHERE %s
			  GROUP BY category`, d.table, monthFilter)

	return queries{
		table:       d.table,
		probe:       fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", d.table),
		listSales:   listSales,
		statistics:  statistics,
		priceRanges: priceRanges,
		categories:  categories,
	}
}
