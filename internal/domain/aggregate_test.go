package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateReturns(t *testing.T) {
	now := date(2024, time.June, 15)

	records := []ReturnRecord{
		{ID: 1, RefundAmount: 100, ShippingCost: 5, MoneyRefunded: true, Date: date(2024, time.June, 1)},
		{ID: 2, RefundAmount: 200, ShippingCost: 7, CreditNoteIssued: true, Date: date(2024, time.May, 20)},
		{ID: 3, RefundAmount: 0, ShippingCost: 0, ArrivedAtWarehouse: true, Date: date(2024, time.June, 10)},
		{ID: 4, RefundAmount: 50, Date: date(2024, time.April, 2)},
	}

	agg := AggregateReturns(records, now)

	assert.Equal(t, 4, agg.Total)
	assert.Equal(t, 1, agg.CountByStatus[ReturnMoneyRefunded])
	assert.Equal(t, 1, agg.CountByStatus[ReturnCreditNoteIssued])
	assert.Equal(t, 1, agg.CountByStatus[ReturnArrivedUnprocessed])
	assert.Equal(t, 1, agg.CountByStatus[ReturnPendingArrival])
	assert.Equal(t, 0, agg.CountByStatus[ReturnNotArrived])

	assert.Equal(t, 350.0, agg.RefundSum)
	assert.Equal(t, 12.0, agg.ShippingSum)
	assert.Equal(t, 362.0, agg.CombinedSum)
	assert.Equal(t, 87.5, agg.AverageRefund)

	// Two of four records are terminal.
	assert.Equal(t, 50.0, agg.PercentComplete)
	assert.Equal(t, 2, agg.CurrentMonthCount)
}

func TestAggregateReturnsAverage(t *testing.T) {
	records := []ReturnRecord{
		{RefundAmount: 100},
		{RefundAmount: 200},
		{RefundAmount: 0},
	}
	agg := AggregateReturns(records, time.Now())
	assert.Equal(t, 300.0, agg.RefundSum)
	assert.Equal(t, 100.0, agg.AverageRefund)
}

func TestAggregateReturnsEmpty(t *testing.T) {
	agg := AggregateReturns(nil, time.Now())

	assert.Equal(t, 0, agg.Total)
	assert.Equal(t, 0.0, agg.RefundSum)
	assert.Equal(t, 0.0, agg.AverageRefund)
	assert.Equal(t, 0.0, agg.PercentComplete)
	assert.Equal(t, 0, agg.CurrentMonthCount)
	for _, s := range ReturnStatuses {
		assert.Equal(t, 0, agg.CountByStatus[s])
	}
}

func TestAggregateReturnsCountsSumToTotal(t *testing.T) {
	var records []ReturnRecord
	for i := 0; i < 16; i++ {
		records = append(records, ReturnRecord{
			ID:                 int64(i),
			ArrivedAtWarehouse: i&1 != 0,
			MoneyRefunded:      i&2 != 0,
			CreditNoteIssued:   i&4 != 0,
			Cancelled:          i&8 != 0,
		})
	}

	agg := AggregateReturns(records, time.Now())
	sum := 0
	for _, c := range agg.CountByStatus {
		sum += c
	}
	assert.Equal(t, agg.Total, sum)
}

func TestAggregateReturnsIdempotent(t *testing.T) {
	now := date(2024, time.June, 15)
	records := []ReturnRecord{
		{ID: 1, RefundAmount: 10, MoneyRefunded: true, Date: now},
		{ID: 2, RefundAmount: 20, Date: now},
	}

	first := AggregateReturns(records, now)
	second := AggregateReturns(records, now)
	assert.Equal(t, first, second)
}

func TestAggregateMatchesFilterCount(t *testing.T) {
	var records []ReturnRecord
	for i := 0; i < 10; i++ {
		records = append(records, ReturnRecord{
			ID:                 int64(i),
			ArrivedAtWarehouse: i%2 == 0,
			MoneyRefunded:      i%3 == 0,
		})
	}

	agg := AggregateReturns(records, time.Now())
	filtered := ReturnFilter{Status: string(ReturnPendingArrival)}.Apply(records)

	require.Equal(t, agg.CountByStatus[ReturnPendingArrival], len(filtered))
	for _, r := range filtered {
		assert.Equal(t, ReturnPendingArrival, r.Status())
	}
}

func TestAggregateExchanges(t *testing.T) {
	now := date(2024, time.June, 15)

	records := []ExchangeRecord{
		{ID: 1, DiffCharged: 15, RegisteredInSystem: true, ArrivedAtWarehouse: true, Shipped: true, Date: date(2024, time.June, 3)},
		{ID: 2, DiffOwed: 10, RegisteredInSystem: true, Shipped: true, Date: date(2024, time.June, 4)},
		{ID: 3, RegisteredInSystem: true, Date: date(2024, time.May, 1)},
		{ID: 4, DiffCharged: 5, Date: date(2024, time.May, 2)},
	}

	agg := AggregateExchanges(records, now)

	assert.Equal(t, 4, agg.Total)
	assert.Equal(t, 1, agg.CountByStatus[ExchangeCompleted])
	assert.Equal(t, 1, agg.CountByStatus[ExchangeShipped])
	assert.Equal(t, 1, agg.CountByStatus[ExchangePendingArrival])
	assert.Equal(t, 1, agg.CountByStatus[ExchangeUnregistered])

	assert.Equal(t, 20.0, agg.DiffChargedSum)
	assert.Equal(t, 10.0, agg.DiffOwedSum)
	assert.Equal(t, 10.0, agg.NetDiff)
	assert.Equal(t, 5.0, agg.AverageDiffCharged)

	assert.Equal(t, 50.0, agg.PercentComplete)
	assert.Equal(t, 2, agg.CurrentMonthCount)
}

func TestAggregateExchangesEmpty(t *testing.T) {
	agg := AggregateExchanges([]ExchangeRecord{}, time.Now())
	assert.Equal(t, 0, agg.Total)
	assert.Equal(t, 0.0, agg.PercentComplete)
	assert.Equal(t, 0.0, agg.AverageDiffCharged)
}

func TestPercentCompleteRounding(t *testing.T) {
	// One terminal record out of three: 33.333...% rounds to 33.3.
	records := []ReturnRecord{
		{MoneyRefunded: true},
		{},
		{},
	}
	agg := AggregateReturns(records, time.Now())
	assert.Equal(t, 33.3, agg.PercentComplete)

	// Two of three: 66.666...% rounds to 66.7.
	records = append(records[:2], ReturnRecord{CreditNoteIssued: true})
	agg = AggregateReturns(records, time.Now())
	assert.Equal(t, 66.7, agg.PercentComplete)
}

func TestMonthlyReturnAggregates(t *testing.T) {
	now := date(2024, time.June, 15)
	records := []ReturnRecord{
		{ID: 1, RefundAmount: 100, Date: date(2024, time.May, 1)},
		{ID: 2, RefundAmount: 50, Date: date(2024, time.May, 30)},
		{ID: 3, RefundAmount: 10, Date: date(2024, time.June, 2)},
	}

	monthly := MonthlyReturnAggregates(records, now)
	require.Len(t, monthly, 2)

	may := monthly[MonthKey{Year: 2024, Month: 5}]
	assert.Equal(t, 2, may.Total)
	assert.Equal(t, 150.0, may.RefundSum)

	june := monthly[MonthKey{Year: 2024, Month: 6}]
	assert.Equal(t, 1, june.Total)
	assert.Equal(t, 10.0, june.RefundSum)
}
