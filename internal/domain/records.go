package domain

import "time"

// ExchangeRecord is one customer product exchange ("cambio"). The three
// lifecycle flags are set independently as physical and administrative
// events happen; the canonical status is always recomputed from them and
// never stored.
type ExchangeRecord struct {
	ID               int64     `json:"id"`
	OrderRef         string    `json:"order_ref"`
	CustomerPhone    string    `json:"customer_phone"`
	CustomerName     string    `json:"customer_name"`
	OriginalModel    string    `json:"original_model"`
	ReplacementModel string    `json:"replacement_model"`
	Motive           string    `json:"motive"`
	DiffCharged      float64   `json:"diff_charged"`
	DiffOwed         float64   `json:"diff_owed"`
	CarrierRef       string    `json:"carrier_ref,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	WarehouseLabel   string    `json:"warehouse_label,omitempty"`
	LabelDispatched  bool      `json:"label_dispatched"`

	ArrivedAtWarehouse bool `json:"arrived_at_warehouse"`
	Shipped            bool `json:"shipped"`
	RegisteredInSystem bool `json:"registered_in_system"`
	// IsPairOrder marks exchanges belonging to a matched pair order. It is
	// stored alongside the lifecycle flags but never participates in status
	// derivation.
	IsPairOrder bool `json:"is_pair_order"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReturnRecord is one customer return ("devolucion").
type ReturnRecord struct {
	ID            int64   `json:"id"`
	OrderRef      string  `json:"order_ref"`
	CustomerPhone string  `json:"customer_phone"`
	ProductModel  string  `json:"product_model"`
	Motive        string  `json:"motive"`
	RefundAmount  float64 `json:"refund_amount"`
	ShippingCost  float64 `json:"shipping_cost"`
	Responsible   string  `json:"responsible"`

	ArrivedAtWarehouse bool `json:"arrived_at_warehouse"`
	MoneyRefunded      bool `json:"money_refunded"`
	CreditNoteIssued   bool `json:"credit_note_issued"`
	// Cancelled marks a return the customer never sent back. It is the only
	// way a record reaches the not_arrived status.
	Cancelled bool `json:"cancelled"`

	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReturnMotives is the closed vocabulary accepted for ReturnRecord.Motive.
var ReturnMotives = []string{
	"size_too_big",
	"size_too_small",
	"defective",
	"damaged_in_transit",
	"wrong_item_sent",
	"not_as_pictured",
	"quality_below_expectation",
	"late_delivery",
	"changed_mind",
	"duplicate_order",
	"other",
}

// ExchangeMotives is the closed vocabulary accepted for ExchangeRecord.Motive.
var ExchangeMotives = []string{
	"size_change",
	"color_change",
	"model_change",
	"defective",
	"wrong_item_sent",
	"other",
}

func IsReturnMotive(motive string) bool {
	return containsString(ReturnMotives, motive)
}

func IsExchangeMotive(motive string) bool {
	return containsString(ExchangeMotives, motive)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
