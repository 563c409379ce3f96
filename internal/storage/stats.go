package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gitlab.com/modaluna/aftersales/internal/domain"
)

// ReturnStats is the dashboard payload for returns: overall aggregate plus
// a month-by-month breakdown, oldest month first.
type ReturnStats struct {
	domain.ReturnAggregate
	Monthly []ReturnMonthStats `json:"monthly"`
}

type ReturnMonthStats struct {
	domain.MonthKey
	domain.ReturnAggregate
}

// ExchangeStats is the dashboard payload for exchanges.
type ExchangeStats struct {
	domain.ExchangeAggregate
	Monthly []ExchangeMonthStats `json:"monthly"`
}

type ExchangeMonthStats struct {
	domain.MonthKey
	domain.ExchangeAggregate
}

// GetReturnStats aggregates the returns matching the filter. The filter may
// be zero-valued to cover everything.
func (s *PostgresStorage) GetReturnStats(ctx context.Context, filter domain.ReturnFilter) (*ReturnStats, error) {
	records, err := s.ListReturns(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load returns for stats: %w", err)
	}

	now := time.Now()
	stats := &ReturnStats{ReturnAggregate: domain.AggregateReturns(records, now)}
	for key, agg := range domain.MonthlyReturnAggregates(records, now) {
		stats.Monthly = append(stats.Monthly, ReturnMonthStats{MonthKey: key, ReturnAggregate: agg})
	}
	sort.Slice(stats.Monthly, func(i, j int) bool {
		a, b := stats.Monthly[i].MonthKey, stats.Monthly[j].MonthKey
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return stats, nil
}

// GetExchangeStats aggregates the exchanges matching the filter.
func (s *PostgresStorage) GetExchangeStats(ctx context.Context, filter domain.ExchangeFilter) (*ExchangeStats, error) {
	records, err := s.ListExchanges(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchanges for stats: %w", err)
	}

	now := time.Now()
	stats := &ExchangeStats{ExchangeAggregate: domain.AggregateExchanges(records, now)}
	for key, agg := range domain.MonthlyExchangeAggregates(records, now) {
		stats.Monthly = append(stats.Monthly, ExchangeMonthStats{MonthKey: key, ExchangeAggregate: agg})
	}
	sort.Slice(stats.Monthly, func(i, j int) bool {
		a, b := stats.Monthly[i].MonthKey, stats.Monthly[j].MonthKey
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return stats, nil
}
