package usecase

import (
	"context"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates both upstream collections for the console's
// landing view.
type DashboardSummary struct {
	TotalVehicles    int                           `json:"total_vehicles"`
	VehiclesByStatus map[entities.VehicleStatus]int `json:"vehicles_by_status"`
	TotalSales       int                           `json:"total_sales"`
	SalesByStatus    map[entities.PaymentStatus]int `json:"sales_by_status"`

	// Revenue sums the sale price of PAID sales.
	Revenue decimal.Decimal `json:"revenue"`
	// InventoryValue sums the catalog price of AVAILABLE vehicles.
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	catalog interfaces.IVehicleCatalog
	sales   interfaces.ISalesService
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(catalog interfaces.IVehicleCatalog, sales interfaces.ISalesService) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog, sales: sales}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	vehicles, err := u.catalog.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	sales, err := u.sales.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		TotalVehicles:    len(vehicles),
		VehiclesByStatus: map[entities.VehicleStatus]int{},
		TotalSales:       len(sales),
		SalesByStatus:    map[entities.PaymentStatus]int{},
		Revenue:          decimal.Zero,
		InventoryValue:   decimal.Zero,
	}

	for _, v := range vehicles {
		summary.VehiclesByStatus[v.Status]++
		if v.Status == entities.VehicleStatusAvailable {
			summary.InventoryValue = summary.InventoryValue.Add(v.Price)
		}
	}
	for _, s := range sales {
		summary.SalesByStatus[s.PaymentStatus]++
		if s.PaymentStatus == entities.PaymentStatusPaid {
			summary.Revenue = summary.Revenue.Add(s.SalePrice)
		}
	}
	return summary, nil
}
