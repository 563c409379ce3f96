package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnStatus(t *testing.T) {
	tests := []struct {
		name     string
		record   ReturnRecord
		expected ReturnStatus
	}{
		{
			name:     "no flags set",
			record:   ReturnRecord{},
			expected: ReturnPendingArrival,
		},
		{
			name:     "arrived only",
			record:   ReturnRecord{ArrivedAtWarehouse: true},
			expected: ReturnArrivedUnprocessed,
		},
		{
			name:     "refunded wins over arrived",
			record:   ReturnRecord{ArrivedAtWarehouse: true, MoneyRefunded: true},
			expected: ReturnMoneyRefunded,
		},
		{
			name:     "credit note wins over refund",
			record:   ReturnRecord{MoneyRefunded: true, CreditNoteIssued: true},
			expected: ReturnCreditNoteIssued,
		},
		{
			name: "credit note wins with every flag set",
			record: ReturnRecord{
				ArrivedAtWarehouse: true,
				MoneyRefunded:      true,
				CreditNoteIssued:   true,
			},
			expected: ReturnCreditNoteIssued,
		},
		{
			name:     "refund without arrival",
			record:   ReturnRecord{MoneyRefunded: true},
			expected: ReturnMoneyRefunded,
		},
		{
			name:     "cancelled wins over everything",
			record:   ReturnRecord{Cancelled: true, MoneyRefunded: true, CreditNoteIssued: true},
			expected: ReturnNotArrived,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.Status())
		})
	}
}

func TestReturnStatusTotality(t *testing.T) {
	// Every flag combination must map to exactly one known status.
	for i := 0; i < 16; i++ {
		r := ReturnRecord{
			ArrivedAtWarehouse: i&1 != 0,
			MoneyRefunded:      i&2 != 0,
			CreditNoteIssued:   i&4 != 0,
			Cancelled:          i&8 != 0,
		}
		s := r.Status()
		assert.Contains(t, ReturnStatuses, s)
		assert.Equal(t, s, r.Status(), "derivation must be deterministic")
	}
}

func TestExchangeStatus(t *testing.T) {
	tests := []struct {
		name     string
		record   ExchangeRecord
		expected ExchangeStatus
	}{
		{
			name:     "unregistered fresh record",
			record:   ExchangeRecord{},
			expected: ExchangeUnregistered,
		},
		{
			name: "unregistered wins over shipped and arrived",
			record: ExchangeRecord{
				ArrivedAtWarehouse: true,
				Shipped:            true,
			},
			expected: ExchangeUnregistered,
		},
		{
			name:     "registered only",
			record:   ExchangeRecord{RegisteredInSystem: true},
			expected: ExchangePendingArrival,
		},
		{
			name: "arrived and registered",
			record: ExchangeRecord{
				RegisteredInSystem: true,
				ArrivedAtWarehouse: true,
			},
			expected: ExchangeReadyToShip,
		},
		{
			name: "shipped without arrival",
			record: ExchangeRecord{
				RegisteredInSystem: true,
				Shipped:            true,
			},
			expected: ExchangeShipped,
		},
		{
			name: "shipped and arrived",
			record: ExchangeRecord{
				RegisteredInSystem: true,
				ArrivedAtWarehouse: true,
				Shipped:            true,
			},
			expected: ExchangeCompleted,
		},
		{
			name: "pair order flag does not affect status",
			record: ExchangeRecord{
				RegisteredInSystem: true,
				ArrivedAtWarehouse: true,
				IsPairOrder:        true,
			},
			expected: ExchangeReadyToShip,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.Status())
		})
	}
}

func TestExchangeStatusTotality(t *testing.T) {
	for i := 0; i < 8; i++ {
		e := ExchangeRecord{
			ArrivedAtWarehouse: i&1 != 0,
			Shipped:            i&2 != 0,
			RegisteredInSystem: i&4 != 0,
		}
		assert.Contains(t, ExchangeStatuses, e.Status())
	}
}

func TestIsComplete(t *testing.T) {
	t.Run("return refund alone is terminal", func(t *testing.T) {
		assert.True(t, ReturnRecord{MoneyRefunded: true}.IsComplete())
	})
	t.Run("return credit note alone is terminal", func(t *testing.T) {
		assert.True(t, ReturnRecord{CreditNoteIssued: true}.IsComplete())
	})
	t.Run("cancelled return is not terminal", func(t *testing.T) {
		assert.False(t, ReturnRecord{Cancelled: true, MoneyRefunded: true}.IsComplete())
	})
	t.Run("arrived return is open", func(t *testing.T) {
		assert.False(t, ReturnRecord{ArrivedAtWarehouse: true}.IsComplete())
	})
	t.Run("shipped exchange is terminal", func(t *testing.T) {
		assert.True(t, ExchangeRecord{RegisteredInSystem: true, Shipped: true}.IsComplete())
	})
	t.Run("unregistered exchange is open", func(t *testing.T) {
		assert.False(t, ExchangeRecord{Shipped: true}.IsComplete())
	})
}

func TestMotiveVocabularies(t *testing.T) {
	assert.True(t, IsReturnMotive("defective"))
	assert.False(t, IsReturnMotive("no_such_motive"))
	assert.True(t, IsExchangeMotive("size_change"))
	assert.False(t, IsExchangeMotive("changed_mind"))
	assert.Len(t, ReturnMotives, 11)
}
