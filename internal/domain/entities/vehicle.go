package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleStatus represents the lifecycle of a vehicle in the catalog.
//
// Domain notes:
//   - The vehicle catalog service is the source of truth for vehicle state.
//   - AVAILABLE -> RESERVED when a sale is created against the vehicle.
//   - RESERVED -> SOLD when that sale's payment is confirmed.
//   - Any state -> AVAILABLE when the sale is cancelled or reopened.

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusReserved  VehicleStatus = "RESERVED"
	VehicleStatusSold      VehicleStatus = "SOLD"
)

// Vehicle is the catalog entity owned by the vehicle service.
//
// The console holds only transient copies, re-fetched after every transition.
type Vehicle struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
	Status    VehicleStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VehicleCreate is the payload for registering a new vehicle.
type VehicleCreate struct {
	Brand  string          `json:"brand"`
	Model  string          `json:"model"`
	Year   int             `json:"year"`
	Color  string          `json:"color"`
	Price  decimal.Decimal `json:"price"`
	Status VehicleStatus   `json:"status,omitempty"`
}

// VehicleUpdate carries the fields of a partial vehicle update. Nil means
// "keep the current value".
type VehicleUpdate struct {
	Brand  *string          `json:"brand,omitempty"`
	Model  *string          `json:"model,omitempty"`
	Year   *int             `json:"year,omitempty"`
	Color  *string          `json:"color,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Status *VehicleStatus   `json:"status,omitempty"`
}
