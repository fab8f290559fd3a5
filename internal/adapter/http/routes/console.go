package routes

import (
	"revenda_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles  = "/vehicles"
	PathSales     = "/sales"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
)

func addConsoleRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, saleHandler *handlers.SaleHandler, paymentHandler *handlers.PaymentHandler, dashboardHandler *handlers.DashboardHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("/status/:status", vehicleHandler.ListVehiclesByStatus)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		vehicles.PATCH("/:id/status", vehicleHandler.UpdateVehicleStatus)
		vehicles.POST("/:id/mark-as-reserved", vehicleHandler.MarkAsReserved)
		vehicles.POST("/:id/mark-as-available", vehicleHandler.MarkAsAvailable)
		vehicles.POST("/:id/mark-as-sold", vehicleHandler.MarkAsSold)
	}

	sales := rg.Group(PathSales)
	{
		sales.GET("", saleHandler.ListSales)
		sales.POST("", saleHandler.CreateSale)
		// The selector for new sales: AVAILABLE vehicles only.
		sales.GET("/available-vehicles", saleHandler.ListAvailableVehicles)
		sales.GET("/:id", saleHandler.GetSale)
		sales.PUT("/:id", saleHandler.UpdateSale)
		sales.DELETE("/:id", saleHandler.DeleteSale)
		sales.PATCH("/:id/payment/confirm", saleHandler.ConfirmPayment)
		sales.POST("/:id/payment/notify", saleHandler.NotifyPayment)
		sales.PATCH("/:id/payment/cancel", saleHandler.CancelPayment)
		sales.PATCH("/:id/reopen", saleHandler.ReopenSale)
		sales.GET("/:id/transitions", saleHandler.ListTransitions)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.POST("", paymentHandler.CreatePayment)
		payments.PUT("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
		payments.PATCH("/:id/status/:status", paymentHandler.UpdatePaymentStatus)
	}

	rg.GET(PathDashboard, dashboardHandler.GetSummary)
}
