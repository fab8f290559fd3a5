package interfaces

import (
	"context"

	"revenda_xpto/internal/domain/entities"
)

// IVehicleCatalog abstracts the vehicle catalog REST service (base URL A).
//
// Implementations translate each operation into one HTTP request and surface
// failures unchanged apart from logging; there are no retries and no timeout
// policy beyond the underlying http.Client defaults.

type IVehicleCatalog interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByStatus(ctx context.Context, status entities.VehicleStatus) ([]entities.Vehicle, error)
	Create(ctx context.Context, v entities.VehicleCreate) (entities.Vehicle, error)
	Update(ctx context.Context, id string, v entities.VehicleUpdate) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.VehicleStatus) (entities.Vehicle, error)
	MarkAsReserved(ctx context.Context, id string) (entities.Vehicle, error)
	MarkAsAvailable(ctx context.Context, id string) (entities.Vehicle, error)
	MarkAsSold(ctx context.Context, id string) (entities.Vehicle, error)
}
