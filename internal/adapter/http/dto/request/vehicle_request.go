package request

import (
	"revenda_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type VehicleCreateRequest struct {
	Brand  string          `json:"brand" binding:"required"`
	Model  string          `json:"model" binding:"required"`
	Year   int             `json:"year" binding:"required"`
	Color  string          `json:"color" binding:"required"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Status string          `json:"status" binding:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
}

func (r VehicleCreateRequest) ToCommand() entities.VehicleCreate {
	return entities.VehicleCreate{
		Brand:  r.Brand,
		Model:  r.Model,
		Year:   r.Year,
		Color:  r.Color,
		Price:  r.Price,
		Status: entities.VehicleStatus(r.Status),
	}
}

type VehicleUpdateRequest struct {
	Brand  *string          `json:"brand,omitempty"`
	Model  *string          `json:"model,omitempty"`
	Year   *int             `json:"year,omitempty"`
	Color  *string          `json:"color,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Status *string          `json:"status,omitempty" binding:"omitempty,oneof=AVAILABLE RESERVED SOLD"`
}

func (r VehicleUpdateRequest) ToPatch() entities.VehicleUpdate {
	patch := entities.VehicleUpdate{
		Brand: r.Brand,
		Model: r.Model,
		Year:  r.Year,
		Color: r.Color,
		Price: r.Price,
	}
	if r.Status != nil {
		status := entities.VehicleStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// VehicleStatusRequest is the body of PATCH /vehicles/:id/status.
type VehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
