package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidVehicleID     = errors.New("invalid vehicle id")
	ErrInvalidVehicleInput  = errors.New("invalid vehicle input")
	ErrInvalidVehicleStatus = errors.New("invalid vehicle status")
)

const minVehicleYear = 1950

// IVehicleUseCase exposes the catalog operations behind the Vehicles page:
// CRUD plus the status actions the orchestration workflow also uses.

type IVehicleUseCase interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByStatus(ctx context.Context, status string) ([]entities.Vehicle, error)
	Create(ctx context.Context, v entities.VehicleCreate) (entities.Vehicle, error)
	Update(ctx context.Context, id string, v entities.VehicleUpdate) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status string) (entities.Vehicle, error)
	MarkAsReserved(ctx context.Context, id string) (entities.Vehicle, error)
	MarkAsAvailable(ctx context.Context, id string) (entities.Vehicle, error)
	MarkAsSold(ctx context.Context, id string) (entities.Vehicle, error)
}

type VehicleUseCase struct {
	catalog interfaces.IVehicleCatalog
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(catalog interfaces.IVehicleCatalog) *VehicleUseCase {
	return &VehicleUseCase{catalog: catalog}
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.catalog.List(ctx)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := u.catalog.GetByID(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

func (u *VehicleUseCase) ListByStatus(ctx context.Context, status string) ([]entities.Vehicle, error) {
	parsed, err := ParseVehicleStatus(status)
	if err != nil {
		return nil, err
	}
	return u.catalog.ListByStatus(ctx, parsed)
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.VehicleCreate) (entities.Vehicle, error) {
	if err := validateVehicleCreate(v); err != nil {
		return entities.Vehicle{}, err
	}
	if v.Status == "" {
		v.Status = entities.VehicleStatusAvailable
	}
	return u.catalog.Create(ctx, v)
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, v entities.VehicleUpdate) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if err := validateVehicleUpdate(v); err != nil {
		return entities.Vehicle{}, err
	}
	updated, err := u.catalog.Update(ctx, id, v)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, err
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	err := u.catalog.Delete(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrVehicleNotFound
	}
	return err
}

func (u *VehicleUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	parsed, err := ParseVehicleStatus(status)
	if err != nil {
		return entities.Vehicle{}, err
	}
	updated, err := u.catalog.UpdateStatus(ctx, id, parsed)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, err
}

func (u *VehicleUseCase) MarkAsReserved(ctx context.Context, id string) (entities.Vehicle, error) {
	return u.markAs(ctx, id, u.catalog.MarkAsReserved)
}

func (u *VehicleUseCase) MarkAsAvailable(ctx context.Context, id string) (entities.Vehicle, error) {
	return u.markAs(ctx, id, u.catalog.MarkAsAvailable)
}

func (u *VehicleUseCase) MarkAsSold(ctx context.Context, id string) (entities.Vehicle, error) {
	return u.markAs(ctx, id, u.catalog.MarkAsSold)
}

func (u *VehicleUseCase) markAs(ctx context.Context, id string, fn func(context.Context, string) (entities.Vehicle, error)) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	v, err := fn(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, err
}

// ParseVehicleStatus maps a wire token onto the canonical enum.
func ParseVehicleStatus(raw string) (entities.VehicleStatus, error) {
	switch entities.VehicleStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case entities.VehicleStatusAvailable:
		return entities.VehicleStatusAvailable, nil
	case entities.VehicleStatusReserved:
		return entities.VehicleStatusReserved, nil
	case entities.VehicleStatusSold:
		return entities.VehicleStatusSold, nil
	default:
		return "", ErrInvalidVehicleStatus
	}
}

func validateVehicleCreate(v entities.VehicleCreate) error {
	if strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Model) == "" || strings.TrimSpace(v.Color) == "" {
		return ErrInvalidVehicleInput
	}
	if v.Year < minVehicleYear || v.Year > time.Now().Year()+1 {
		return ErrInvalidVehicleInput
	}
	if !v.Price.IsPositive() {
		return ErrInvalidVehicleInput
	}
	if v.Status != "" {
		if _, err := ParseVehicleStatus(string(v.Status)); err != nil {
			return err
		}
	}
	return nil
}

func validateVehicleUpdate(v entities.VehicleUpdate) error {
	if v.Brand != nil && strings.TrimSpace(*v.Brand) == "" {
		return ErrInvalidVehicleInput
	}
	if v.Model != nil && strings.TrimSpace(*v.Model) == "" {
		return ErrInvalidVehicleInput
	}
	if v.Color != nil && strings.TrimSpace(*v.Color) == "" {
		return ErrInvalidVehicleInput
	}
	if v.Year != nil && (*v.Year < minVehicleYear || *v.Year > time.Now().Year()+1) {
		return ErrInvalidVehicleInput
	}
	if v.Price != nil && !v.Price.IsPositive() {
		return ErrInvalidVehicleInput
	}
	if v.Status != nil {
		if _, err := ParseVehicleStatus(string(*v.Status)); err != nil {
			return err
		}
	}
	return nil
}
