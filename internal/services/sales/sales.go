// Package sales содержит бизнес-логику чтения записей о продажах:
// поиск с пагинацией, статистику, гистограмму цен и подсчёт по категориям.
package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// SalesRepository определяет методы чтения таблицы продаж.
type SalesRepository interface {
	// ListSales возвращает страницу записей месяца, подходящих под поиск.
	ListSales(ctx context.Context, filter models.QueryFilter) ([]models.SalesRecord, error)
	// Statistics считает сумму и количество проданных и непроданных товаров.
	Statistics(ctx context.Context, month int) (models.Statistics, error)
	// PriceRanges считает гистограмму цен.
	PriceRanges(ctx context.Context, month int) (models.PriceRanges, error)
	// Categories считает записи по категориям.
	Categories(ctx context.Context, month int) ([]models.CategoryCount, error)
}

// Service реализует запросы к данным о продажах поверх репозитория.
type Service struct {
	repo     SalesRepository
	log      *slog.Logger
	validate *validator.Validate
}

// NewService создаёт новый экземпляр Service.
func NewService(repo SalesRepository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		log:      log,
		validate: validator.New(),
	}
}

// ListSales возвращает не более models.PageSize записей за месяц filter.Month,
// у которых title, цена или description содержат filter.SearchTerm.
// Порядок записей не определён.
func (s *Service) ListSales(ctx context.Context, filter models.QueryFilter) ([]models.SalesRecord, error) {
	const op = "sales.ListSales"

	if err := s.validate.Struct(filter); err != nil {
		return nil, &QueryError{Op: op, Err: fmt.Errorf("%w: %v", ErrInvalidFilter, err)}
	}
	if !filter.InRange() {
		return nil, &QueryError{Op: op, Err: fmt.Errorf("%w: page %d is out of range", ErrInvalidFilter, filter.Page)}
	}

	res, err := s.repo.ListSales(ctx, filter)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}

	s.log.Debug("listed sales",
		slog.Int("month", filter.Month),
		slog.String("search_q", filter.SearchTerm),
		slog.Int("page", filter.Page),
		slog.Int("count", len(res)))
	return res, nil
}

// GetStatistics возвращает сводку продаж за месяц.
func (s *Service) GetStatistics(ctx context.Context, month int) (models.Statistics, error) {
	const op = "sales.GetStatistics"

	if err := s.validateMonth(month); err != nil {
		return models.Statistics{}, &QueryError{Op: op, Err: err}
	}

	res, err := s.repo.Statistics(ctx, month)
	if err != nil {
		return models.Statistics{}, &QueryError{Op: op, Err: err}
	}
	return res, nil
}

// GetPriceHistogram возвращает количество записей месяца по диапазонам цен.
// Все десять диапазонов присутствуют всегда, даже нулевые.
func (s *Service) GetPriceHistogram(ctx context.Context, month int) (models.PriceRanges, error) {
	const op = "sales.GetPriceHistogram"

	if err := s.validateMonth(month); err != nil {
		return models.PriceRanges{}, &QueryError{Op: op, Err: err}
	}

	res, err := s.repo.PriceRanges(ctx, month)
	if err != nil {
		return models.PriceRanges{}, &QueryError{Op: op, Err: err}
	}
	return res, nil
}

// GetCategoryCounts возвращает количество записей месяца по категориям.
func (s *Service) GetCategoryCounts(ctx context.Context, month int) ([]models.CategoryCount, error) {
	const op = "sales.GetCategoryCounts"

	if err := s.validateMonth(month); err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}

	res, err := s.repo.Categories(ctx, month)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	if res == nil {
		res = []models.CategoryCount{}
	}
	return res, nil
}

func (s *Service) validateMonth(month int) error {
	if err := s.validate.Var(month, "min=1,max=12"); err != nil {
		return fmt.Errorf("%w: month %d is out of range", ErrInvalidFilter, month)
	}
	return nil
}
