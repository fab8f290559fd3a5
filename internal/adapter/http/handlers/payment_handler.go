package handlers

import (
	"errors"
	"log"
	"net/http"

	request "revenda_xpto/internal/adapter/http/dto/request"
	response "revenda_xpto/internal/adapter/http/dto/response"
	"revenda_xpto/internal/usecase"
	"revenda_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler exposes the payments projection served by the vehicle
// service under /payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s sale_id=%s", created.ID, created.SaleID)
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var payload request.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), c.Param("status"))
	if err != nil {
		h.fail(c, "update-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

func (h *PaymentHandler) fail(c *gin.Context, op string, err error) {
	log.Printf("[payment][handler] %s failed err=%v", op, err)
	appErr := mapPaymentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentInput),
		errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
