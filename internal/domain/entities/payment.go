package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the read-mostly projection exposed by the vehicle service under
// /payments. It shares PaymentStatus with Sale; no payment-specific workflow
// exists beyond what the sale workflow implies.
type Payment struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentCreate struct {
	SaleID        string          `json:"sale_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        PaymentStatus   `json:"status,omitempty"`
}

type PaymentUpdate struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Status        *PaymentStatus   `json:"status,omitempty"`
}
