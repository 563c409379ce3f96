package domain

import "time"

// MonthKey identifies one calendar month. Month runs 1-12 so the key
// round-trips to user-facing labels without an off-by-one.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthOf extracts the month key from a timestamp using the local calendar.
// The business operates in a single timezone, so no conversion policy is
// needed beyond consistent local-date extraction.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month())}
}

// SameMonth reports whether two timestamps fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return MonthOf(a) == MonthOf(b)
}

// ReturnsInMonth selects the returns whose business date falls in the given
// month. The input is never mutated.
func ReturnsInMonth(records []ReturnRecord, key MonthKey) []ReturnRecord {
	out := make([]ReturnRecord, 0, len(records))
	for _, r := range records {
		if MonthOf(r.Date) == key {
			out = append(out, r)
		}
	}
	return out
}

// ExchangesInMonth selects the exchanges whose business date falls in the
// given month.
func ExchangesInMonth(records []ExchangeRecord, key MonthKey) []ExchangeRecord {
	out := make([]ExchangeRecord, 0, len(records))
	for _, e := range records {
		if MonthOf(e.Date) == key {
			out = append(out, e)
		}
	}
	return out
}

// GroupReturnsByMonth partitions returns into month buckets.
func GroupReturnsByMonth(records []ReturnRecord) map[MonthKey][]ReturnRecord {
	buckets := make(map[MonthKey][]ReturnRecord)
	for _, r := range records {
		key := MonthOf(r.Date)
		buckets[key] = append(buckets[key], r)
	}
	return buckets
}

// GroupExchangesByMonth partitions exchanges into month buckets.
func GroupExchangesByMonth(records []ExchangeRecord) map[MonthKey][]ExchangeRecord {
	buckets := make(map[MonthKey][]ExchangeRecord)
	for _, e := range records {
		key := MonthOf(e.Date)
		buckets[key] = append(buckets[key], e)
	}
	return buckets
}
