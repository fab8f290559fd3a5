package request

import (
	"revenda_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentCreateRequest struct {
	SaleID        string          `json:"sale_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Status        string          `json:"status" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
}

func (r PaymentCreateRequest) ToCommand() entities.PaymentCreate {
	return entities.PaymentCreate{
		SaleID:        r.SaleID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Status:        entities.PaymentStatus(r.Status),
	}
}

type PaymentUpdateRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Status        *string          `json:"status,omitempty" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
}

func (r PaymentUpdateRequest) ToPatch() entities.PaymentUpdate {
	patch := entities.PaymentUpdate{
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
	}
	if r.Status != nil {
		status := entities.PaymentStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
