package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "revenda_xpto/internal/adapter/http/dto/request"
	response "revenda_xpto/internal/adapter/http/dto/response"
	"revenda_xpto/internal/usecase"
	"revenda_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)

// SaleHandler exposes the sale workflow: CRUD plus the status transitions
// that keep the sale and its vehicle consistent across the two services.

type SaleHandler struct {
	workflow usecase.ISaleWorkflowUseCase
}

func NewSaleHandler(workflow usecase.ISaleWorkflowUseCase) *SaleHandler {
	return &SaleHandler{workflow: workflow}
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.workflow.ListSales(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.workflow.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// ListAvailableVehicles backs the vehicle selector of the new-sale form.
// RESERVED and SOLD vehicles never appear here.
func (h *SaleHandler) ListAvailableVehicles(c *gin.Context) {
	vehicles, err := h.workflow.ListAvailableVehicles(c.Request.Context())
	if err != nil {
		h.fail(c, "available-vehicles", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.SaleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	result, err := h.workflow.CreateSale(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	log.Printf("[sale][handler] create success sale_id=%s vehicle_id=%s", result.Sale.ID, result.Vehicle.ID)
	c.JSON(http.StatusCreated, response.FromTransitionResult(result))
}

func (h *SaleHandler) UpdateSale(c *gin.Context) {
	var payload request.SaleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	updated, err := h.workflow.UpdateSale(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(updated))
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	if err := h.workflow.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SaleHandler) ConfirmPayment(c *gin.Context) {
	h.runTransition(c, "confirm", h.workflow.ConfirmPayment)
}

func (h *SaleHandler) NotifyPayment(c *gin.Context) {
	h.runTransition(c, "notify", h.workflow.ConfirmPaymentViaWebhook)
}

func (h *SaleHandler) CancelPayment(c *gin.Context) {
	h.runTransition(c, "cancel", h.workflow.CancelPayment)
}

func (h *SaleHandler) ReopenSale(c *gin.Context) {
	h.runTransition(c, "reopen", h.workflow.ReopenSale)
}

func (h *SaleHandler) ListTransitions(c *gin.Context) {
	transitions, err := h.workflow.ListTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "transitions", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusTransitions(transitions))
}

func (h *SaleHandler) runTransition(c *gin.Context, op string, fn func(context.Context, string) (usecase.TransitionResult, error)) {
	id := c.Param("id")
	result, err := fn(c.Request.Context(), id)
	if err != nil {
		h.fail(c, op, err)
		return
	}
	log.Printf("[sale][handler] %s success sale_id=%s sale_status=%s vehicle_status=%s", op, result.Sale.ID, result.Sale.PaymentStatus, result.Vehicle.Status)
	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

func (h *SaleHandler) fail(c *gin.Context, op string, err error) {
	log.Printf("[sale][handler] %s failed err=%v", op, err)
	appErr := mapSaleError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidSaleVehicleID),
		errors.Is(err, usecase.ErrInvalidPaymentCode),
		errors.Is(err, usecase.ErrInvalidSalePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBuyerCPF):
		return pkg.NewDomainErrorSimple("INVALID_BUYER_CPF", "Buyer CPF must have exactly 11 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSalePriceBelowVehicle):
		return pkg.NewDomainErrorSimple("SALE_PRICE_BELOW_VEHICLE_PRICE", "Sale price cannot be below the vehicle price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotAvailable):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_AVAILABLE", "Vehicle is not available for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleFinalized):
		return pkg.NewDomainErrorSimple("SALE_FINALIZED", "Paid or cancelled sales can no longer be changed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotPending):
		return pkg.NewDomainErrorSimple("SALE_NOT_PENDING", "Sale is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotFinalized):
		return pkg.NewDomainErrorSimple("SALE_NOT_FINALIZED", "Only paid or cancelled sales can be reopened", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleStatusOutOfSync):
		return pkg.NewDomainError("VEHICLE_STATUS_OUT_OF_SYNC", "Sale status changed but the vehicle was not updated; operator reconciliation required", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
