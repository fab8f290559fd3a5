package response

import (
	"time"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type SaleResponse struct {
	ID            string          `json:"id"`
	VehicleID     string          `json:"vehicle_id"`
	BuyerCPF      string          `json:"buyer_cpf"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentCode   string          `json:"payment_code"`
	PaymentStatus string          `json:"payment_status"`

	// Editable mirrors the terminal-state rule: PAID and CANCELLED sales
	// expose no edit or delete action.
	Editable bool `json:"editable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		VehicleID:     s.VehicleID,
		BuyerCPF:      s.BuyerCPF,
		SalePrice:     s.SalePrice,
		PaymentCode:   s.PaymentCode,
		PaymentStatus: string(s.PaymentStatus),
		Editable:      !s.PaymentStatus.Terminal(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

// TransitionResultResponse is the post-transition snapshot of both entities.
type TransitionResultResponse struct {
	Sale    SaleResponse    `json:"sale"`
	Vehicle VehicleResponse `json:"vehicle"`
}

func FromTransitionResult(r usecase.TransitionResult) TransitionResultResponse {
	return TransitionResultResponse{
		Sale:    FromSale(r.Sale),
		Vehicle: FromVehicle(r.Vehicle),
	}
}
