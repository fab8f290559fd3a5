package usecase

import (
	"context"
	"errors"
	"testing"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
	mock_interfaces "revenda_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTestWorkflow(t *testing.T, sales interfaces.ISalesService, catalog interfaces.IVehicleCatalog, transitions interfaces.ITransitionLogRepository) *SaleWorkflowUseCase {
	t.Helper()
	t.Setenv("REFRESH_DELAY_MS", "0")
	return NewSaleWorkflowUseCase(sales, catalog, transitions)
}

func pendingSale(id, vehicleID string) entities.Sale {
	return entities.Sale{
		ID:            id,
		VehicleID:     vehicleID,
		BuyerCPF:      "12345678901",
		SalePrice:     decimal.NewFromInt(50000),
		PaymentCode:   "pay-1",
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func availableVehicle(id string) entities.Vehicle {
	return entities.Vehicle{
		ID:     id,
		Brand:  "Fiat",
		Model:  "Argo",
		Year:   2022,
		Color:  "prata",
		Price:  decimal.NewFromInt(48000),
		Status: entities.VehicleStatusAvailable,
	}
}

func TestSaleWorkflowUseCase_CreateSale(t *testing.T) {
	cmd := entities.SaleCreate{
		VehicleID:   "v1",
		BuyerCPF:    "12345678901",
		SalePrice:   decimal.NewFromInt(50000),
		PaymentCode: "pay-1",
	}

	t.Run("invalid cpf", func(t *testing.T) {
		uc := newTestWorkflow(t, nil, nil, nil)
		bad := cmd
		bad.BuyerCPF = "123.456.789-01"
		_, err := uc.CreateSale(context.Background(), bad)
		if !errors.Is(err, ErrInvalidBuyerCPF) {
			t.Fatalf("expected ErrInvalidBuyerCPF, got %v", err)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		uc := newTestWorkflow(t, nil, nil, nil)
		bad := cmd
		bad.VehicleID = "   "
		_, err := uc.CreateSale(context.Background(), bad)
		if !errors.Is(err, ErrInvalidSaleVehicleID) {
			t.Fatalf("expected ErrInvalidSaleVehicleID, got %v", err)
		}
	})

	t.Run("non positive price", func(t *testing.T) {
		uc := newTestWorkflow(t, nil, nil, nil)
		bad := cmd
		bad.SalePrice = decimal.Zero
		_, err := uc.CreateSale(context.Background(), bad)
		if !errors.Is(err, ErrInvalidSalePrice) {
			t.Fatalf("expected ErrInvalidSalePrice, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := newTestWorkflow(t, nil, catalog, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vehicle{}, interfaces.ErrNotFound)

		_, err := uc.CreateSale(context.Background(), cmd)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("vehicle not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := newTestWorkflow(t, nil, catalog, nil)

		v := availableVehicle("v1")
		v.Status = entities.VehicleStatusReserved
		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(v, nil)

		_, err := uc.CreateSale(context.Background(), cmd)
		if !errors.Is(err, ErrVehicleNotAvailable) {
			t.Fatalf("expected ErrVehicleNotAvailable, got %v", err)
		}
	})

	t.Run("price below vehicle price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := newTestWorkflow(t, nil, catalog, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(availableVehicle("v1"), nil)

		cheap := cmd
		cheap.SalePrice = decimal.NewFromInt(100)
		_, err := uc.CreateSale(context.Background(), cheap)
		if !errors.Is(err, ErrSalePriceBelowVehicle) {
			t.Fatalf("expected ErrSalePriceBelowVehicle, got %v", err)
		}
	})

	t.Run("reserve fails after create surfaces out of sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		transitions := mock_interfaces.NewMockITransitionLogRepository(ctrl)
		uc := newTestWorkflow(t, sales, catalog, transitions)

		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(availableVehicle("v1"), nil)
		sales.EXPECT().Create(gomock.Any(), cmd).Return(pendingSale("s1", "v1"), nil)
		catalog.EXPECT().MarkAsReserved(gomock.Any(), "v1").Return(entities.Vehicle{}, errors.New("boom"))
		transitions.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.StatusTransition{})).DoAndReturn(
			func(_ context.Context, e entities.StatusTransition) (entities.StatusTransition, error) {
				if e.SaleID != "s1" || e.StepsCompleted != 1 || e.Failure == "" {
					t.Fatalf("unexpected transition entry: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.CreateSale(context.Background(), cmd)
		if !errors.Is(err, ErrVehicleStatusOutOfSync) {
			t.Fatalf("expected ErrVehicleStatusOutOfSync, got %v", err)
		}
	})

	t.Run("success reserves vehicle and refreshes snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		transitions := mock_interfaces.NewMockITransitionLogRepository(ctrl)
		uc := newTestWorkflow(t, sales, catalog, transitions)

		reserved := availableVehicle("v1")
		reserved.Status = entities.VehicleStatusReserved

		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(availableVehicle("v1"), nil)
		sales.EXPECT().Create(gomock.Any(), cmd).Return(pendingSale("s1", "v1"), nil)
		catalog.EXPECT().MarkAsReserved(gomock.Any(), "v1").Return(reserved, nil)
		transitions.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.StatusTransition{}, nil)
		// post-transition re-read
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(reserved, nil)

		res, err := uc.CreateSale(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sale.ID != "s1" || res.Vehicle.Status != entities.VehicleStatusReserved {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSaleWorkflowUseCase_ConfirmPayment(t *testing.T) {
	t.Run("sale not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Sale{}, interfaces.ErrNotFound)

		_, err := uc.ConfirmPayment(context.Background(), "s1")
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("terminal sale refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		paid := pendingSale("s1", "v1")
		paid.PaymentStatus = entities.PaymentStatusPaid
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)

		_, err := uc.ConfirmPayment(context.Background(), "s1")
		if !errors.Is(err, ErrSaleNotPending) {
			t.Fatalf("expected ErrSaleNotPending, got %v", err)
		}
	})

	t.Run("mark as sold fails surfaces out of sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		transitions := mock_interfaces.NewMockITransitionLogRepository(ctrl)
		uc := newTestWorkflow(t, sales, catalog, transitions)

		paid := pendingSale("s1", "v1")
		paid.PaymentStatus = entities.PaymentStatusPaid

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
		sales.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(paid, nil)
		catalog.EXPECT().MarkAsSold(gomock.Any(), "v1").Return(entities.Vehicle{}, errors.New("catalog down"))
		transitions.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.StatusTransition{})).DoAndReturn(
			func(_ context.Context, e entities.StatusTransition) (entities.StatusTransition, error) {
				if e.StepsCompleted != 1 || e.SaleStatus != entities.PaymentStatusPaid {
					t.Fatalf("unexpected transition entry: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.ConfirmPayment(context.Background(), "s1")
		if !errors.Is(err, ErrVehicleStatusOutOfSync) {
			t.Fatalf("expected ErrVehicleStatusOutOfSync, got %v", err)
		}
	})

	t.Run("success marks vehicle sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := newTestWorkflow(t, sales, catalog, nil)

		paid := pendingSale("s1", "v1")
		paid.PaymentStatus = entities.PaymentStatusPaid
		sold := availableVehicle("v1")
		sold.Status = entities.VehicleStatusSold

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
		sales.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(paid, nil)
		catalog.EXPECT().MarkAsSold(gomock.Any(), "v1").Return(sold, nil)
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(sold, nil)

		res, err := uc.ConfirmPayment(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sale.PaymentStatus != entities.PaymentStatusPaid || res.Vehicle.Status != entities.VehicleStatusSold {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSaleWorkflowUseCase_ConfirmPaymentViaWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sales := mock_interfaces.NewMockISalesService(ctrl)
	catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
	uc := newTestWorkflow(t, sales, catalog, nil)

	sale := pendingSale("s1", "v1")
	sold := availableVehicle("v1")
	sold.Status = entities.VehicleStatusSold
	paid := sale
	paid.PaymentStatus = entities.PaymentStatusPaid

	sales.EXPECT().GetByID(gomock.Any(), "s1").Return(sale, nil)
	sales.EXPECT().NotifyPaymentWebhook(gomock.Any(), "pay-1", entities.PaymentStatusPaid, "v1").Return(nil)
	catalog.EXPECT().MarkAsSold(gomock.Any(), "v1").Return(sold, nil)
	sales.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)
	catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(sold, nil)

	res, err := uc.ConfirmPaymentViaWebhook(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sale.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("expected PAID, got %s", res.Sale.PaymentStatus)
	}
}

func TestSaleWorkflowUseCase_CancelPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sales := mock_interfaces.NewMockISalesService(ctrl)
	catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
	uc := newTestWorkflow(t, sales, catalog, nil)

	cancelled := pendingSale("s1", "v1")
	cancelled.PaymentStatus = entities.PaymentStatusCancelled
	released := availableVehicle("v1")

	sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
	sales.EXPECT().CancelPayment(gomock.Any(), "s1").Return(cancelled, nil)
	catalog.EXPECT().MarkAsAvailable(gomock.Any(), "v1").Return(released, nil)
	sales.EXPECT().GetByID(gomock.Any(), "s1").Return(cancelled, nil)
	catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(released, nil)

	res, err := uc.CancelPayment(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Vehicle.Status != entities.VehicleStatusAvailable {
		t.Fatalf("expected vehicle released, got %s", res.Vehicle.Status)
	}
}

func TestSaleWorkflowUseCase_ReopenSale(t *testing.T) {
	t.Run("pending sale cannot be reopened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)

		_, err := uc.ReopenSale(context.Background(), "s1")
		if !errors.Is(err, ErrSaleNotFinalized) {
			t.Fatalf("expected ErrSaleNotFinalized, got %v", err)
		}
	})

	t.Run("cancelled sale goes back to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
		uc := newTestWorkflow(t, sales, catalog, nil)

		cancelled := pendingSale("s1", "v1")
		cancelled.PaymentStatus = entities.PaymentStatusCancelled
		pending := pendingSale("s1", "v1")
		released := availableVehicle("v1")

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(cancelled, nil)
		sales.EXPECT().MarkAsPending(gomock.Any(), "s1").Return(pending, nil)
		catalog.EXPECT().MarkAsAvailable(gomock.Any(), "v1").Return(released, nil)
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pending, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "v1").Return(released, nil)

		res, err := uc.ReopenSale(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Sale.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("expected PENDING, got %s", res.Sale.PaymentStatus)
		}
	})
}

func TestSaleWorkflowUseCase_UpdateSale(t *testing.T) {
	t.Run("terminal sale immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		paid := pendingSale("s1", "v1")
		paid.PaymentStatus = entities.PaymentStatusPaid
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)

		cpf := "10987654321"
		_, err := uc.UpdateSale(context.Background(), "s1", entities.SaleUpdate{BuyerCPF: &cpf})
		if !errors.Is(err, ErrSaleFinalized) {
			t.Fatalf("expected ErrSaleFinalized, got %v", err)
		}
	})

	t.Run("merges patch over current sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		current := pendingSale("s1", "v1")
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(current, nil)

		newPrice := decimal.NewFromInt(55000)
		sales.EXPECT().Update(gomock.Any(), "s1", gomock.AssignableToTypeOf(entities.Sale{})).DoAndReturn(
			func(_ context.Context, _ string, s entities.Sale) (entities.Sale, error) {
				if !s.SalePrice.Equal(newPrice) {
					t.Fatalf("expected merged price %s, got %s", newPrice, s.SalePrice)
				}
				if s.BuyerCPF != current.BuyerCPF {
					t.Fatalf("expected untouched cpf, got %s", s.BuyerCPF)
				}
				return s, nil
			},
		)

		updated, err := uc.UpdateSale(context.Background(), "s1", entities.SaleUpdate{SalePrice: &newPrice})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.SalePrice.Equal(newPrice) {
			t.Fatalf("unexpected price: %s", updated.SalePrice)
		}
	})

	t.Run("invalid cpf in patch", func(t *testing.T) {
		uc := newTestWorkflow(t, nil, nil, nil)
		cpf := "123"
		_, err := uc.UpdateSale(context.Background(), "s1", entities.SaleUpdate{BuyerCPF: &cpf})
		if !errors.Is(err, ErrInvalidBuyerCPF) {
			t.Fatalf("expected ErrInvalidBuyerCPF, got %v", err)
		}
	})
}

func TestSaleWorkflowUseCase_DeleteSale(t *testing.T) {
	t.Run("already gone counts as success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Sale{}, interfaces.ErrNotFound)

		if err := uc.DeleteSale(context.Background(), "s1"); err != nil {
			t.Fatalf("expected idempotent success, got %v", err)
		}
	})

	t.Run("terminal sale refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		paid := pendingSale("s1", "v1")
		paid.PaymentStatus = entities.PaymentStatusPaid
		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)

		if err := uc.DeleteSale(context.Background(), "s1"); !errors.Is(err, ErrSaleFinalized) {
			t.Fatalf("expected ErrSaleFinalized, got %v", err)
		}
	})

	t.Run("deletes pending sale and records it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		transitions := mock_interfaces.NewMockITransitionLogRepository(ctrl)
		uc := newTestWorkflow(t, sales, nil, transitions)

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
		sales.EXPECT().Delete(gomock.Any(), "s1").Return(nil)
		transitions.EXPECT().Record(gomock.Any(), gomock.Any()).Return(entities.StatusTransition{}, nil)

		if err := uc.DeleteSale(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("404 on delete call still succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISalesService(ctrl)
		uc := newTestWorkflow(t, sales, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "s1").Return(pendingSale("s1", "v1"), nil)
		sales.EXPECT().Delete(gomock.Any(), "s1").Return(interfaces.ErrNotFound)

		if err := uc.DeleteSale(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSaleWorkflowUseCase_ListAvailableVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIVehicleCatalog(ctrl)
	uc := newTestWorkflow(t, nil, catalog, nil)

	catalog.EXPECT().ListByStatus(gomock.Any(), entities.VehicleStatusAvailable).Return([]entities.Vehicle{availableVehicle("v1")}, nil)

	vehicles, err := uc.ListAvailableVehicles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].ID != "v1" {
		t.Fatalf("unexpected vehicles: %+v", vehicles)
	}
}

func TestSaleWorkflowUseCase_ListTransitions(t *testing.T) {
	t.Run("blank sale id", func(t *testing.T) {
		uc := newTestWorkflow(t, nil, nil, nil)
		_, err := uc.ListTransitions(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("returns audit trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transitions := mock_interfaces.NewMockITransitionLogRepository(ctrl)
		uc := newTestWorkflow(t, nil, nil, transitions)

		transitions.EXPECT().ListBySaleID(gomock.Any(), "s1").Return([]entities.StatusTransition{{ID: "t1", SaleID: "s1"}}, nil)

		got, err := uc.ListTransitions(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "t1" {
			t.Fatalf("unexpected transitions: %+v", got)
		}
	})
}
