package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "revenda_xpto/internal/adapter/http/dto/request"
	response "revenda_xpto/internal/adapter/http/dto/response"
	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase"
	"revenda_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler exposes the vehicle catalog surface of the console.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) ListVehiclesByStatus(c *gin.Context) {
	vehicles, err := h.usecase.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.fail(c, "list-by-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	log.Printf("[vehicle][handler] create success vehicle_id=%s", created.ID)
	c.JSON(http.StatusCreated, response.FromVehicle(created))
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) UpdateVehicleStatus(c *gin.Context) {
	var payload request.VehicleStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		h.fail(c, "update-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) MarkAsReserved(c *gin.Context) {
	h.markAs(c, "mark-as-reserved", h.usecase.MarkAsReserved)
}

func (h *VehicleHandler) MarkAsAvailable(c *gin.Context) {
	h.markAs(c, "mark-as-available", h.usecase.MarkAsAvailable)
}

func (h *VehicleHandler) MarkAsSold(c *gin.Context) {
	h.markAs(c, "mark-as-sold", h.usecase.MarkAsSold)
}

func (h *VehicleHandler) markAs(c *gin.Context, op string, fn func(context.Context, string) (entities.Vehicle, error)) {
	v, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, op, err)
		return
	}
	log.Printf("[vehicle][handler] %s success vehicle_id=%s status=%s", op, v.ID, v.Status)
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) fail(c *gin.Context, op string, err error) {
	log.Printf("[vehicle][handler] %s failed err=%v", op, err)
	appErr := mapVehicleError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidVehicleInput),
		errors.Is(err, usecase.ErrInvalidVehicleStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
