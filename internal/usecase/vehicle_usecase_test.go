package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
	mock_interfaces "revenda_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	valid := entities.VehicleCreate{
		Brand: "Fiat",
		Model: "Argo",
		Year:  2022,
		Color: "prata",
		Price: decimal.NewFromInt(48000),
	}

	t.Run("missing brand", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		bad := valid
		bad.Brand = "  "
		_, err := uc.Create(context.Background(), bad)
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("year out of range", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		bad := valid
		bad.Year = 1900
		_, err := uc.Create(context.Background(), bad)
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}

		bad.Year = time.Now().Year() + 2
		_, err = uc.Create(context.Background(), bad)
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("bad status token", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		bad := valid
		bad.Status = "PARKED"
		_, err := uc.Create(context.Background(), bad)
		if !errors.Is(err, ErrInvalidVehicleStatus) {
			t.Fatalf("expected ErrInvalidVehicleStatus, got %v", err)
		}
	})

	t.Run("defaults to available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := NewVehicleUseCase(catalog)

		catalog.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.VehicleCreate{})).DoAndReturn(
			func(_ context.Context, v entities.VehicleCreate) (entities.Vehicle, error) {
				if v.Status != entities.VehicleStatusAvailable {
					t.Fatalf("expected AVAILABLE default, got %s", v.Status)
				}
				return entities.Vehicle{ID: "v1", Status: v.Status}, nil
			},
		)

		created, err := uc.Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "v1" {
			t.Fatalf("unexpected vehicle: %+v", created)
		}
	})
}

func TestVehicleUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("not found maps sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := NewVehicleUseCase(catalog)

		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{}, interfaces.ErrNotFound)

		_, err := uc.GetByID(context.Background(), "v1")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestVehicleUseCase_ListByStatus(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.ListByStatus(context.Background(), "gone")
		if !errors.Is(err, ErrInvalidVehicleStatus) {
			t.Fatalf("expected ErrInvalidVehicleStatus, got %v", err)
		}
	})

	t.Run("lowercase token accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := NewVehicleUseCase(catalog)

		catalog.EXPECT().ListByStatus(gomock.Any(), entities.VehicleStatusReserved).Return(nil, nil)

		if _, err := uc.ListByStatus(context.Background(), "reserved"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_MarkAs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
	uc := NewVehicleUseCase(catalog)

	catalog.EXPECT().MarkAsSold(gomock.Any(), "v1").Return(entities.Vehicle{ID: "v1", Status: entities.VehicleStatusSold}, nil)

	v, err := uc.MarkAsSold(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Status != entities.VehicleStatusSold {
		t.Fatalf("expected SOLD, got %s", v.Status)
	}

	catalog.EXPECT().MarkAsAvailable(gomock.Any(), "v2").Return(entities.Vehicle{}, interfaces.ErrNotFound)
	if _, err := uc.MarkAsAvailable(context.Background(), "v2"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestVehicleUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
	uc := NewVehicleUseCase(catalog)

	catalog.EXPECT().Delete(gomock.Any(), "v1").Return(interfaces.ErrNotFound)

	if err := uc.Delete(context.Background(), "v1"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
