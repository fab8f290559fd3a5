package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSaleNotFound           = errors.New("sale not found")
	ErrVehicleNotAvailable    = errors.New("vehicle not available for sale")
	ErrInvalidSaleID          = errors.New("invalid sale id")
	ErrInvalidSaleVehicleID   = errors.New("invalid vehicle id")
	ErrInvalidBuyerCPF        = errors.New("buyer cpf must have exactly 11 digits")
	ErrInvalidPaymentCode     = errors.New("invalid payment code")
	ErrInvalidSalePrice       = errors.New("invalid sale price")
	ErrSalePriceBelowVehicle  = errors.New("sale price below vehicle price")
	ErrSaleFinalized          = errors.New("sale is paid or cancelled and can no longer be changed")
	ErrSaleNotPending         = errors.New("sale is not pending")
	ErrSaleNotFinalized       = errors.New("sale is still pending")
	ErrVehicleStatusOutOfSync = errors.New("vehicle status out of sync with sale")
)

var cpfDigits = regexp.MustCompile(`^[0-9]{11}$`)

// TransitionResult is the post-transition snapshot of both entities, re-read
// after the refresh delay.
type TransitionResult struct {
	Sale    entities.Sale    `json:"sale"`
	Vehicle entities.Vehicle `json:"vehicle"`
}

// ISaleWorkflowUseCase is the status-orchestration workflow that keeps
// Sale.payment_status and Vehicle.status consistent across the two
// independently-owned backend services.
//
// Contract: every transition is a sequence of independent network calls with
// no shared transaction and no compensating rollback. When the first call
// succeeds and the second fails, the entities are left mutually inconsistent
// until an operator reconciles; the workflow surfaces that case as
// ErrVehicleStatusOutOfSync and records the attempt in the transition log.

type ISaleWorkflowUseCase interface {
	ListSales(ctx context.Context) ([]entities.Sale, error)
	GetSale(ctx context.Context, id string) (entities.Sale, error)
	ListAvailableVehicles(ctx context.Context) ([]entities.Vehicle, error)
	CreateSale(ctx context.Context, cmd entities.SaleCreate) (TransitionResult, error)
	UpdateSale(ctx context.Context, id string, patch entities.SaleUpdate) (entities.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	ConfirmPayment(ctx context.Context, id string) (TransitionResult, error)
	ConfirmPaymentViaWebhook(ctx context.Context, id string) (TransitionResult, error)
	CancelPayment(ctx context.Context, id string) (TransitionResult, error)
	ReopenSale(ctx context.Context, id string) (TransitionResult, error)
	ListTransitions(ctx context.Context, saleID string) ([]entities.StatusTransition, error)
}

type SaleWorkflowUseCase struct {
	sales       interfaces.ISalesService
	catalog     interfaces.IVehicleCatalog
	transitions interfaces.ITransitionLogRepository

	// refreshDelay tolerates eventual consistency in the upstream services
	// before the post-transition re-read. Heuristic, not a guarantee.
	refreshDelay time.Duration
}

var _ ISaleWorkflowUseCase = (*SaleWorkflowUseCase)(nil)

func NewSaleWorkflowUseCase(sales interfaces.ISalesService, catalog interfaces.IVehicleCatalog, transitions interfaces.ITransitionLogRepository) *SaleWorkflowUseCase {
	return &SaleWorkflowUseCase{
		sales:        sales,
		catalog:      catalog,
		transitions:  transitions,
		refreshDelay: refreshDelayFromEnv(),
	}
}

func refreshDelayFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("REFRESH_DELAY_MS"))
	if raw == "" {
		return 500 * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("[sale][usecase] invalid REFRESH_DELAY_MS=%q, using default", raw)
		return 500 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func (u *SaleWorkflowUseCase) ListSales(ctx context.Context) ([]entities.Sale, error) {
	return u.sales.List(ctx)
}

func (u *SaleWorkflowUseCase) GetSale(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.sales.GetByID(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, err
}

// ListAvailableVehicles backs the vehicle selector for new sales. Only
// AVAILABLE vehicles may ever be offered; RESERVED and SOLD must not appear.
func (u *SaleWorkflowUseCase) ListAvailableVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return u.catalog.ListByStatus(ctx, entities.VehicleStatusAvailable)
}

// CreateSale records a new PENDING sale and then reserves the vehicle.
//
// Ordered external effects: sales.Create, then catalog.MarkAsReserved.
func (u *SaleWorkflowUseCase) CreateSale(ctx context.Context, cmd entities.SaleCreate) (TransitionResult, error) {
	log.Printf("[sale][usecase] create start vehicle_id=%s", cmd.VehicleID)
	if err := validateSaleCreate(cmd); err != nil {
		return TransitionResult{}, err
	}

	vehicle, err := u.catalog.GetByID(ctx, cmd.VehicleID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return TransitionResult{}, ErrVehicleNotFound
	}
	if err != nil {
		return TransitionResult{}, err
	}
	if vehicle.Status != entities.VehicleStatusAvailable {
		log.Printf("[sale][usecase] create refused vehicle_id=%s status=%s", vehicle.ID, vehicle.Status)
		return TransitionResult{}, ErrVehicleNotAvailable
	}
	if cmd.SalePrice.LessThan(vehicle.Price) {
		return TransitionResult{}, ErrSalePriceBelowVehicle
	}

	sale, err := u.sales.Create(ctx, cmd)
	if err != nil {
		log.Printf("[sale][usecase] create failed vehicle_id=%s err=%v", cmd.VehicleID, err)
		return TransitionResult{}, err
	}

	reserved, err := u.catalog.MarkAsReserved(ctx, cmd.VehicleID)
	if err != nil {
		u.record(ctx, entities.TransitionActionCreateSale, sale, vehicle.Status, 1, err)
		log.Printf("[sale][usecase] create partial sale_id=%s vehicle_id=%s err=%v", sale.ID, cmd.VehicleID, err)
		return TransitionResult{}, fmt.Errorf("%w: sale %s created but vehicle %s not reserved: %v", ErrVehicleStatusOutOfSync, sale.ID, cmd.VehicleID, err)
	}

	u.record(ctx, entities.TransitionActionCreateSale, sale, reserved.Status, 2, nil)
	log.Printf("[sale][usecase] create success sale_id=%s vehicle_id=%s", sale.ID, reserved.ID)
	return u.refreshSnapshot(ctx, sale, reserved), nil
}

// ConfirmPayment drives PENDING -> PAID through the confirm-payment endpoint
// and then marks the vehicle sold.
func (u *SaleWorkflowUseCase) ConfirmPayment(ctx context.Context, id string) (TransitionResult, error) {
	return u.transition(ctx, id, entities.TransitionActionConfirmPayment)
}

// ConfirmPaymentViaWebhook drives the same PENDING -> PAID transition through
// the sales-side payment webhook, standing in for a true server-to-server
// callback from a payment provider.
func (u *SaleWorkflowUseCase) ConfirmPaymentViaWebhook(ctx context.Context, id string) (TransitionResult, error) {
	return u.transition(ctx, id, entities.TransitionActionNotifyWebhook)
}

// CancelPayment drives PENDING -> CANCELLED and returns the vehicle to
// AVAILABLE.
func (u *SaleWorkflowUseCase) CancelPayment(ctx context.Context, id string) (TransitionResult, error) {
	return u.transition(ctx, id, entities.TransitionActionCancelPayment)
}

// ReopenSale is the explicit escape hatch from a terminal status: it resets
// the sale to PENDING and returns the vehicle to AVAILABLE.
func (u *SaleWorkflowUseCase) ReopenSale(ctx context.Context, id string) (TransitionResult, error) {
	return u.transition(ctx, id, entities.TransitionActionReopenSale)
}

func (u *SaleWorkflowUseCase) transition(ctx context.Context, id string, action entities.TransitionAction) (TransitionResult, error) {
	log.Printf("[sale][usecase] %s start sale_id=%s", action, id)
	sale, err := u.GetSale(ctx, id)
	if err != nil {
		return TransitionResult{}, err
	}

	switch action {
	case entities.TransitionActionReopenSale:
		if !sale.PaymentStatus.Terminal() {
			return TransitionResult{}, ErrSaleNotFinalized
		}
	default:
		if sale.PaymentStatus != entities.PaymentStatusPending {
			return TransitionResult{}, ErrSaleNotPending
		}
	}

	var updated entities.Sale
	switch action {
	case entities.TransitionActionConfirmPayment:
		updated, err = u.sales.ConfirmPayment(ctx, id)
	case entities.TransitionActionNotifyWebhook:
		err = u.sales.NotifyPaymentWebhook(ctx, sale.PaymentCode, entities.PaymentStatusPaid, sale.VehicleID)
		updated = sale
		updated.PaymentStatus = entities.PaymentStatusPaid
	case entities.TransitionActionCancelPayment:
		updated, err = u.sales.CancelPayment(ctx, id)
	case entities.TransitionActionReopenSale:
		updated, err = u.sales.MarkAsPending(ctx, id)
	}
	if err != nil {
		log.Printf("[sale][usecase] %s failed sale_id=%s err=%v", action, id, err)
		return TransitionResult{}, err
	}

	var vehicle entities.Vehicle
	if action == entities.TransitionActionConfirmPayment || action == entities.TransitionActionNotifyWebhook {
		vehicle, err = u.catalog.MarkAsSold(ctx, sale.VehicleID)
	} else {
		vehicle, err = u.catalog.MarkAsAvailable(ctx, sale.VehicleID)
	}
	if err != nil {
		u.record(ctx, action, updated, "", 1, err)
		log.Printf("[sale][usecase] %s partial sale_id=%s vehicle_id=%s err=%v", action, id, sale.VehicleID, err)
		return TransitionResult{}, fmt.Errorf("%w: sale %s is %s but vehicle %s was not updated: %v", ErrVehicleStatusOutOfSync, id, updated.PaymentStatus, sale.VehicleID, err)
	}

	u.record(ctx, action, updated, vehicle.Status, 2, nil)
	log.Printf("[sale][usecase] %s success sale_id=%s sale_status=%s vehicle_status=%s", action, id, updated.PaymentStatus, vehicle.Status)
	return u.refreshSnapshot(ctx, updated, vehicle), nil
}

// UpdateSale merges the provided fields into the current sale and issues a
// full PUT. Terminal sales are immutable.
func (u *SaleWorkflowUseCase) UpdateSale(ctx context.Context, id string, patch entities.SaleUpdate) (entities.Sale, error) {
	if err := validateSaleUpdate(patch); err != nil {
		return entities.Sale{}, err
	}

	current, err := u.GetSale(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if current.PaymentStatus.Terminal() {
		return entities.Sale{}, ErrSaleFinalized
	}

	merged := current
	if patch.VehicleID != nil {
		merged.VehicleID = *patch.VehicleID
	}
	if patch.BuyerCPF != nil {
		merged.BuyerCPF = *patch.BuyerCPF
	}
	if patch.SalePrice != nil {
		merged.SalePrice = *patch.SalePrice
	}
	if patch.PaymentCode != nil {
		merged.PaymentCode = *patch.PaymentCode
	}
	if patch.PaymentStatus != nil {
		merged.PaymentStatus = *patch.PaymentStatus
	}

	updated, err := u.sales.Update(ctx, id, merged)
	if err != nil {
		log.Printf("[sale][usecase] update failed sale_id=%s err=%v", id, err)
		return entities.Sale{}, err
	}
	return updated, nil
}

// DeleteSale removes a PENDING sale. An upstream 404 counts as success: the
// server may legitimately 404 on a retry of an already-processed deletion.
// The vehicle is deliberately not reverted by this operation.
func (u *SaleWorkflowUseCase) DeleteSale(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSaleID
	}

	current, err := u.sales.GetByID(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		log.Printf("[sale][usecase] delete idempotent sale_id=%s (already gone)", id)
		return nil
	}
	if err != nil {
		return err
	}
	if current.PaymentStatus.Terminal() {
		return ErrSaleFinalized
	}

	if err := u.sales.Delete(ctx, id); err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		log.Printf("[sale][usecase] delete failed sale_id=%s err=%v", id, err)
		return err
	}

	u.record(ctx, entities.TransitionActionDeleteSale, current, "", 1, nil)
	log.Printf("[sale][usecase] delete success sale_id=%s", id)
	return nil
}

func (u *SaleWorkflowUseCase) ListTransitions(ctx context.Context, saleID string) ([]entities.StatusTransition, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	if u.transitions == nil {
		return nil, errors.New("transition log not configured")
	}
	return u.transitions.ListBySaleID(ctx, saleID)
}

// refreshSnapshot waits the refresh delay and re-reads both entities so the
// caller sees post-transition state. A failed re-read degrades to the last
// known values.
func (u *SaleWorkflowUseCase) refreshSnapshot(ctx context.Context, sale entities.Sale, vehicle entities.Vehicle) TransitionResult {
	if u.refreshDelay > 0 {
		select {
		case <-ctx.Done():
			return TransitionResult{Sale: sale, Vehicle: vehicle}
		case <-time.After(u.refreshDelay):
		}
	}

	if s, err := u.sales.GetByID(ctx, sale.ID); err == nil {
		sale = s
	} else {
		log.Printf("[sale][usecase] refresh sale failed sale_id=%s err=%v", sale.ID, err)
	}
	if v, err := u.catalog.GetByID(ctx, vehicle.ID); err == nil {
		vehicle = v
	} else {
		log.Printf("[sale][usecase] refresh vehicle failed vehicle_id=%s err=%v", vehicle.ID, err)
	}
	return TransitionResult{Sale: sale, Vehicle: vehicle}
}

// record appends to the transition audit trail. Best-effort: a failed write is
// logged and never fails the transition itself.
func (u *SaleWorkflowUseCase) record(ctx context.Context, action entities.TransitionAction, sale entities.Sale, vehicleStatus entities.VehicleStatus, steps int, failure error) {
	if u.transitions == nil {
		return
	}

	entry := entities.StatusTransition{
		ID:             uuid.NewString(),
		SaleID:         sale.ID,
		VehicleID:      sale.VehicleID,
		Action:         action,
		SaleStatus:     sale.PaymentStatus,
		VehicleStatus:  vehicleStatus,
		StepsCompleted: steps,
		Date:           time.Now().UTC(),
	}
	if failure != nil {
		entry.Failure = failure.Error()
	}

	if _, err := u.transitions.Record(ctx, entry); err != nil {
		log.Printf("[sale][usecase] transition log write failed sale_id=%s action=%s err=%v", sale.ID, action, err)
	}
}

func validateSaleCreate(cmd entities.SaleCreate) error {
	if strings.TrimSpace(cmd.VehicleID) == "" {
		return ErrInvalidSaleVehicleID
	}
	if !cpfDigits.MatchString(cmd.BuyerCPF) {
		return ErrInvalidBuyerCPF
	}
	if strings.TrimSpace(cmd.PaymentCode) == "" {
		return ErrInvalidPaymentCode
	}
	if !cmd.SalePrice.IsPositive() {
		return ErrInvalidSalePrice
	}
	return nil
}

func validateSaleUpdate(patch entities.SaleUpdate) error {
	if patch.VehicleID != nil && strings.TrimSpace(*patch.VehicleID) == "" {
		return ErrInvalidSaleVehicleID
	}
	if patch.BuyerCPF != nil && !cpfDigits.MatchString(*patch.BuyerCPF) {
		return ErrInvalidBuyerCPF
	}
	if patch.SalePrice != nil && !patch.SalePrice.IsPositive() {
		return ErrInvalidSalePrice
	}
	if patch.PaymentCode != nil && strings.TrimSpace(*patch.PaymentCode) == "" {
		return ErrInvalidPaymentCode
	}
	return nil
}
