package domain

import (
	"strings"
	"time"
)

// ReturnFilter enumerates every supported filter dimension for returns.
// All set dimensions are combined with AND. Status compares against the
// derived canonical status, so a filtered list can never disagree with the
// status shown per record.
type ReturnFilter struct {
	// Status is a canonical status key, StatusCompleted, or StatusAll.
	// Empty behaves like StatusAll.
	Status string
	Motive string
	// DateFrom/DateTo bound the business date by calendar day, inclusive
	// on both ends. Zero values leave the corresponding bound open.
	DateFrom time.Time
	DateTo   time.Time
	// Free-text dimensions, case-insensitive substring match.
	OrderRef    string
	Phone       string
	Model       string
	Responsible string
}

// Matches reports whether the record passes every set dimension.
func (f ReturnFilter) Matches(r ReturnRecord) bool {
	switch f.Status {
	case "", StatusAll:
	case StatusCompleted:
		if !r.IsComplete() {
			return false
		}
	default:
		if r.Status() != ReturnStatus(f.Status) {
			return false
		}
	}

	if f.Motive != "" && r.Motive != f.Motive {
		return false
	}
	if !inDateRange(r.Date, f.DateFrom, f.DateTo) {
		return false
	}

	return containsFold(r.OrderRef, f.OrderRef) &&
		containsFold(r.CustomerPhone, f.Phone) &&
		containsFold(r.ProductModel, f.Model) &&
		containsFold(r.Responsible, f.Responsible)
}

// Predicate returns the filter as a standalone predicate function.
func (f ReturnFilter) Predicate() func(ReturnRecord) bool {
	return f.Matches
}

// Apply returns the matching subset of records, leaving the input untouched.
func (f ReturnFilter) Apply(records []ReturnRecord) []ReturnRecord {
	out := make([]ReturnRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// ExchangeFilter enumerates every supported filter dimension for exchanges.
type ExchangeFilter struct {
	Status   string
	Motive   string
	DateFrom time.Time
	DateTo   time.Time

	OrderRef     string
	Phone        string
	CustomerName string
	// Model matches either the original or the replacement model.
	Model string
}

func (f ExchangeFilter) Matches(e ExchangeRecord) bool {
	// Unlike returns, "completed" is a canonical exchange status, so it is
	// matched exactly through the default branch.
	switch f.Status {
	case "", StatusAll:
	default:
		if e.Status() != ExchangeStatus(f.Status) {
			return false
		}
	}

	if f.Motive != "" && e.Motive != f.Motive {
		return false
	}
	if !inDateRange(e.Date, f.DateFrom, f.DateTo) {
		return false
	}
	if f.Model != "" &&
		!containsFold(e.OriginalModel, f.Model) &&
		!containsFold(e.ReplacementModel, f.Model) {
		return false
	}

	return containsFold(e.OrderRef, f.OrderRef) &&
		containsFold(e.CustomerPhone, f.Phone) &&
		containsFold(e.CustomerName, f.CustomerName)
}

func (f ExchangeFilter) Predicate() func(ExchangeRecord) bool {
	return f.Matches
}

func (f ExchangeFilter) Apply(records []ExchangeRecord) []ExchangeRecord {
	out := make([]ExchangeRecord, 0, len(records))
	for _, e := range records {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// inDateRange compares by calendar date, so a record whose business date
// carries a time of day still matches a bound parsed as plain midnight.
func inDateRange(date, from, to time.Time) bool {
	day := dayOf(date)
	if !from.IsZero() && day.Before(dayOf(from)) {
		return false
	}
	if !to.IsZero() && day.After(dayOf(to)) {
		return false
	}
	return true
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
