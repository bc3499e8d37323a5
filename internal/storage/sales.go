package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// ListSales возвращает одну страницу записей за месяц, у которых title,
// цена в текстовом виде или description содержат подстроку поиска.
func (s *Storage) ListSales(ctx context.Context, filter models.QueryFilter) ([]models.SalesRecord, error) {
	const op = "storage.ListSales"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	// Такая страница заведомо пуста, а её смещение не помещается в int.
	if filter.Page > models.MaxPage {
		return []models.SalesRecord{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, s.queries.listSales,
		filter.Month, filter.SearchTerm, filter.SearchTerm, filter.SearchTerm,
		models.PageSize, filter.Offset())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]models.SalesRecord, 0, models.PageSize)
	for rows.Next() {
		var item models.SalesRecord
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price,
			&item.Category, &item.DateOfSale, &item.Sold); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Statistics считает сумму и количество проданных и непроданных товаров за месяц.
func (s *Storage) Statistics(ctx context.Context, month int) (models.Statistics, error) {
	const op = "storage.Statistics"
	select {
	case <-ctx.Done():
		return models.Statistics{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var (
		sales  sql.NullFloat64
		result models.Statistics
	)
	err := s.DB.QueryRowContext(ctx, s.queries.statistics, month).
		Scan(&sales, &result.SoldItems, &result.UnSoldItems)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("%s: %w", op, err)
	}
	if sales.Valid {
		result.Sales = &sales.Float64
	}
	return result, nil
}

// PriceRanges считает количество записей месяца в каждом из десяти диапазонов цен.
func (s *Storage) PriceRanges(ctx context.Context, month int) (models.PriceRanges, error) {
	const op = "storage.PriceRanges"
	select {
	case <-ctx.Done():
		return models.PriceRanges{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var r models.PriceRanges
	err := s.DB.QueryRowContext(ctx, s.queries.priceRanges, month).Scan(
		&r.Range0to100, &r.Range101to200, &r.Range201to300, &r.Range301to400,
		&r.Range401to500, &r.Range501to600, &r.Range601to700, &r.Range701to800,
		&r.Range801to900, &r.Range901Above)
	if err != nil {
		return models.PriceRanges{}, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// Categories возвращает количество записей месяца по каждой категории.
// Категории без записей в выдачу не попадают, порядок не гарантируется.
func (s *Storage) Categories(ctx context.Context, month int) ([]models.CategoryCount, error) {
	const op = "storage.Categories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, s.queries.categories, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]models.CategoryCount, 0)
	for rows.Next() {
		var (
			category sql.NullString
			item     models.CategoryCount
		)
		if err := rows.Scan(&category, &item.Items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Category = category.String
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
