package domain

import (
	"math"
	"time"
)

// ReturnAggregate summarizes a collection of returns. All numeric fields are
// safe on an empty collection: counts, sums and ratios come back zero.
type ReturnAggregate struct {
	Total         int                  `json:"total"`
	CountByStatus map[ReturnStatus]int `json:"count_by_status"`

	RefundSum   float64 `json:"refund_sum"`
	ShippingSum float64 `json:"shipping_sum"`
	CombinedSum float64 `json:"combined_sum"`
	// AverageRefund is RefundSum divided by Total, zero when Total is zero.
	AverageRefund float64 `json:"average_refund"`

	// PercentComplete is the share of records in a terminal status, 0-100,
	// rounded to one decimal.
	PercentComplete   float64 `json:"percent_complete"`
	CurrentMonthCount int     `json:"current_month_count"`
}

// ExchangeAggregate summarizes a collection of exchanges.
type ExchangeAggregate struct {
	Total         int                    `json:"total"`
	CountByStatus map[ExchangeStatus]int `json:"count_by_status"`

	DiffChargedSum float64 `json:"diff_charged_sum"`
	DiffOwedSum    float64 `json:"diff_owed_sum"`
	// NetDiff is what the business collected minus what it still owes back.
	NetDiff            float64 `json:"net_diff"`
	AverageDiffCharged float64 `json:"average_diff_charged"`

	PercentComplete   float64 `json:"percent_complete"`
	CurrentMonthCount int     `json:"current_month_count"`
}

// AggregateReturns folds a return collection into per-status counts and
// monetary totals. The caller supplies "now" for the current-month count so
// the fold stays deterministic and testable. The input is never mutated and
// the fold is idempotent.
func AggregateReturns(records []ReturnRecord, now time.Time) ReturnAggregate {
	agg := ReturnAggregate{
		Total:         len(records),
		CountByStatus: make(map[ReturnStatus]int, len(ReturnStatuses)),
	}
	for _, s := range ReturnStatuses {
		agg.CountByStatus[s] = 0
	}

	thisMonth := MonthOf(now)
	completed := 0
	for _, r := range records {
		agg.CountByStatus[r.Status()]++
		agg.RefundSum += r.RefundAmount
		agg.ShippingSum += r.ShippingCost
		if r.IsComplete() {
			completed++
		}
		if MonthOf(r.Date) == thisMonth {
			agg.CurrentMonthCount++
		}
	}

	agg.CombinedSum = agg.RefundSum + agg.ShippingSum
	if agg.Total > 0 {
		agg.AverageRefund = agg.RefundSum / float64(agg.Total)
		agg.PercentComplete = roundPercent(completed, agg.Total)
	}
	return agg
}

// AggregateExchanges folds an exchange collection the same way.
func AggregateExchanges(records []ExchangeRecord, now time.Time) ExchangeAggregate {
	agg := ExchangeAggregate{
		Total:         len(records),
		CountByStatus: make(map[ExchangeStatus]int, len(ExchangeStatuses)),
	}
	for _, s := range ExchangeStatuses {
		agg.CountByStatus[s] = 0
	}

	thisMonth := MonthOf(now)
	completed := 0
	for _, e := range records {
		agg.CountByStatus[e.Status()]++
		agg.DiffChargedSum += e.DiffCharged
		agg.DiffOwedSum += e.DiffOwed
		if e.IsComplete() {
			completed++
		}
		if MonthOf(e.Date) == thisMonth {
			agg.CurrentMonthCount++
		}
	}

	agg.NetDiff = agg.DiffChargedSum - agg.DiffOwedSum
	if agg.Total > 0 {
		agg.AverageDiffCharged = agg.DiffChargedSum / float64(agg.Total)
		agg.PercentComplete = roundPercent(completed, agg.Total)
	}
	return agg
}

// MonthlyReturnAggregates buckets returns by calendar month and aggregates
// each bucket, for month-over-month statistics.
func MonthlyReturnAggregates(records []ReturnRecord, now time.Time) map[MonthKey]ReturnAggregate {
	out := make(map[MonthKey]ReturnAggregate)
	for key, bucket := range GroupReturnsByMonth(records) {
		out[key] = AggregateReturns(bucket, now)
	}
	return out
}

// MonthlyExchangeAggregates buckets exchanges by calendar month and
// aggregates each bucket.
func MonthlyExchangeAggregates(records []ExchangeRecord, now time.Time) map[MonthKey]ExchangeAggregate {
	out := make(map[MonthKey]ExchangeAggregate)
	for key, bucket := range GroupExchangesByMonth(records) {
		out[key] = AggregateExchanges(bucket, now)
	}
	return out
}

// roundPercent converts part/total to a 0-100 percentage rounded to one
// decimal. Callers guarantee total > 0.
func roundPercent(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}
