package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Both upstream services speak bare JSON numbers for monetary fields.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// PaymentStatus represents the payment outcome of a sale.
//
// PAID and CANCELLED are terminal from the console's perspective: once a sale
// reaches either state, edit and delete are refused and reopening to PENDING
// is the only escape hatch.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Terminal reports whether the status forbids further edits or deletion.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCancelled
}

// Sale is the sale entity owned by the sales service.
//
// Invariants (enforced upstream, assumed here):
//   - exactly one non-cancelled sale references a given vehicle at a time
//   - buyer_cpf has exactly 11 digits
//   - payment_code is a non-empty, service-assigned correlation token
type Sale struct {
	ID            string          `json:"id"`
	VehicleID     string          `json:"vehicle_id"`
	BuyerCPF      string          `json:"buyer_cpf"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentCode   string          `json:"payment_code"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SaleCreate is the payload for recording a new sale. Sales start PENDING.
type SaleCreate struct {
	VehicleID   string          `json:"vehicle_id"`
	BuyerCPF    string          `json:"buyer_cpf"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	PaymentCode string          `json:"payment_code"`
}

// SaleUpdate carries the fields of a partial sale update. Nil means "keep the
// current value"; the workflow merges before issuing the upstream PUT.
type SaleUpdate struct {
	VehicleID     *string          `json:"vehicle_id,omitempty"`
	BuyerCPF      *string          `json:"buyer_cpf,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	PaymentCode   *string          `json:"payment_code,omitempty"`
	PaymentStatus *PaymentStatus   `json:"payment_status,omitempty"`
}
