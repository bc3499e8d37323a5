// Package aggregator собирает сводную статистику за месяц, запрашивая
// три агрегата у peer-сервиса параллельно.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/sales-statistics/internal/lib/month"
	"github.com/magabrotheeeer/sales-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// StatsSource определяет источник трёх агрегатов за месяц.
type StatsSource interface {
	Statistics(ctx context.Context, month int) (models.Statistics, error)
	PriceRanges(ctx context.Context, month int) (models.PriceRanges, error)
	Categories(ctx context.Context, month int) ([]models.CategoryCount, error)
}

// AggregationError означает, что хотя бы один из запросов к peer не удался.
type AggregationError struct {
	Endpoint string
	Err      error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate %s: %v", e.Endpoint, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// Service объединяет ответы peer в models.CombinedStatistics.
type Service struct {
	source StatsSource
	log    *slog.Logger
}

// NewService создаёт новый экземпляр Service.
func NewService(source StatsSource, log *slog.Logger) *Service {
	return &Service{source: source, log: log}
}

// GetCombinedStatistics запрашивает статистику, гистограмму цен и категории
// за месяц. Результат возвращается только если успешны все три запроса.
// Название месяца заполняется для значений 1..12, иначе остаётся пустым.
func (s *Service) GetCombinedStatistics(ctx context.Context, m int) (models.CombinedStatistics, error) {
	const op = "aggregator.GetCombinedStatistics"
	log := s.log.With(sl.Op(op), slog.Int("month", m))

	var (
		stats      models.Statistics
		ranges     models.PriceRanges
		categories []models.CategoryCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.source.Statistics(gctx, m)
		if err != nil {
			return &AggregationError{Endpoint: "statistics", Err: err}
		}
		stats = res
		return nil
	})
	g.Go(func() error {
		res, err := s.source.PriceRanges(gctx, m)
		if err != nil {
			return &AggregationError{Endpoint: "items", Err: err}
		}
		ranges = res
		return nil
	})
	g.Go(func() error {
		res, err := s.source.Categories(gctx, m)
		if err != nil {
			return &AggregationError{Endpoint: "categories", Err: err}
		}
		categories = res
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to aggregate statistics", sl.Err(err))
		return models.CombinedStatistics{}, err
	}

	if categories == nil {
		categories = []models.CategoryCount{}
	}
	name, _ := month.Name(m)

	return models.CombinedStatistics{
		MonthName:      name,
		Statistics:     stats,
		ItemPriceRange: ranges,
		Categories:     categories,
	}, nil
}
