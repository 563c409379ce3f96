package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

// ExchangeRow is the persisted shape of a product exchange. Lifecycle flags
// are stored as independent boolean columns; the canonical status is never
// written to the database.
type ExchangeRow struct {
	ID               int64     `db:"id"`
	OrderRef         string    `db:"order_ref"`
	CustomerPhone    string    `db:"customer_phone"`
	CustomerName     string    `db:"customer_name"`
	OriginalModel    string    `db:"original_model"`
	ReplacementModel string    `db:"replacement_model"`
	Motive           string    `db:"motive"`
	DiffCharged      float64   `db:"diff_charged"`
	DiffOwed         float64   `db:"diff_owed"`
	CarrierRef       string    `db:"carrier_ref"`
	Notes            string    `db:"notes"`
	WarehouseLabel   string    `db:"warehouse_label"`
	LabelDispatched  bool      `db:"label_dispatched"`
	Arrived          bool      `db:"arrived"`
	Shipped          bool      `db:"shipped"`
	Registered       bool      `db:"registered"`
	PairOrder        bool      `db:"pair_order"`
	Date             time.Time `db:"date"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ReturnRow is the persisted shape of a customer return.
type ReturnRow struct {
	ID            int64     `db:"id"`
	OrderRef      string    `db:"order_ref"`
	CustomerPhone string    `db:"customer_phone"`
	ProductModel  string    `db:"product_model"`
	Motive        string    `db:"motive"`
	RefundAmount  float64   `db:"refund_amount"`
	ShippingCost  float64   `db:"shipping_cost"`
	Responsible   string    `db:"responsible"`
	Arrived       bool      `db:"arrived"`
	Refunded      bool      `db:"refunded"`
	CreditNote    bool      `db:"credit_note"`
	Cancelled     bool      `db:"cancelled"`
	Date          time.Time `db:"date"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
