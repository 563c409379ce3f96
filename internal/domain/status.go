package domain

// ReturnStatus is the canonical lifecycle state of a ReturnRecord, always
// derived from its flags at read time.
type ReturnStatus string

const (
	ReturnPendingArrival     ReturnStatus = "pending_arrival"
	ReturnArrivedUnprocessed ReturnStatus = "arrived_unprocessed"
	ReturnMoneyRefunded      ReturnStatus = "money_refunded"
	ReturnCreditNoteIssued   ReturnStatus = "credit_note_issued"
	ReturnNotArrived         ReturnStatus = "not_arrived"
)

// ExchangeStatus is the canonical lifecycle state of an ExchangeRecord.
type ExchangeStatus string

const (
	ExchangeUnregistered   ExchangeStatus = "unregistered"
	ExchangePendingArrival ExchangeStatus = "pending_arrival"
	ExchangeReadyToShip    ExchangeStatus = "ready_to_ship"
	ExchangeShipped        ExchangeStatus = "shipped"
	ExchangeCompleted      ExchangeStatus = "completed"
)

// StatusCompleted is a filter-level pseudo status matching any terminal
// canonical status. It is never returned by the derivation functions.
const StatusCompleted = "completed"

// StatusAll is the filter sentinel matching every record.
const StatusAll = "all"

// ReturnStatuses lists every canonical return status, in lifecycle order.
// Filter UIs build their option lists from this plus StatusAll and
// StatusCompleted.
var ReturnStatuses = []ReturnStatus{
	ReturnPendingArrival,
	ReturnArrivedUnprocessed,
	ReturnMoneyRefunded,
	ReturnCreditNoteIssued,
	ReturnNotArrived,
}

// ExchangeStatuses lists every canonical exchange status.
var ExchangeStatuses = []ExchangeStatus{
	ExchangeUnregistered,
	ExchangePendingArrival,
	ExchangeReadyToShip,
	ExchangeShipped,
	ExchangeCompleted,
}

// Status collapses the return's independent flags into exactly one canonical
// status. The rules form an ordered decision list and the first match wins:
// the flags are not mutually exclusive, so the ordering is the precedence
// policy. A record with both money refunded and a credit note issued reports
// credit_note_issued.
func (r ReturnRecord) Status() ReturnStatus {
	switch {
	case r.Cancelled:
		return ReturnNotArrived
	case r.CreditNoteIssued:
		return ReturnCreditNoteIssued
	case r.MoneyRefunded:
		return ReturnMoneyRefunded
	case r.ArrivedAtWarehouse:
		return ReturnArrivedUnprocessed
	default:
		return ReturnPendingArrival
	}
}

// IsComplete reports whether the return reached a terminal status. Policy:
// either a refund or a credit note alone settles the return; requiring both
// would leave most real records open forever since staff record only one
// form of compensation per return.
func (r ReturnRecord) IsComplete() bool {
	s := r.Status()
	return s == ReturnMoneyRefunded || s == ReturnCreditNoteIssued
}

// Status collapses the exchange's flags into exactly one canonical status.
// Registration precedes the physical-movement flags: an exchange that was
// never entered in the business system is not yet real from an accounting
// perspective, whatever happened to the package.
func (e ExchangeRecord) Status() ExchangeStatus {
	switch {
	case !e.RegisteredInSystem:
		return ExchangeUnregistered
	case e.Shipped && e.ArrivedAtWarehouse:
		return ExchangeCompleted
	case e.Shipped:
		return ExchangeShipped
	case e.ArrivedAtWarehouse:
		return ExchangeReadyToShip
	default:
		return ExchangePendingArrival
	}
}

// IsComplete reports whether the exchange reached a terminal status. Shipped
// counts: once the replacement left the warehouse there is no further action
// for staff, even if the original item never physically arrived.
func (e ExchangeRecord) IsComplete() bool {
	s := e.Status()
	return s == ExchangeCompleted || s == ExchangeShipped
}
