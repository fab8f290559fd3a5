package usecase

import (
	"context"
	"errors"
	"strings"

	"revenda_xpto/internal/domain/entities"
	"revenda_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// IPaymentUseCase exposes the read-mostly payments projection. No
// payment-specific workflow exists beyond what the sale workflow implies.

type IPaymentUseCase interface {
	List(ctx context.Context) ([]entities.Payment, error)
	Create(ctx context.Context, p entities.PaymentCreate) (entities.Payment, error)
	Update(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status string) (entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentsAPI
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(payments interfaces.IPaymentsAPI) *PaymentUseCase {
	return &PaymentUseCase{payments: payments}
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.payments.ListPayments(ctx)
}

func (u *PaymentUseCase) Create(ctx context.Context, p entities.PaymentCreate) (entities.Payment, error) {
	if strings.TrimSpace(p.SaleID) == "" || strings.TrimSpace(p.PaymentMethod) == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if !p.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if p.Status == "" {
		p.Status = entities.PaymentStatusPending
	}
	return u.payments.CreatePayment(ctx, p)
}

func (u *PaymentUseCase) Update(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if p.PaymentMethod != nil && strings.TrimSpace(*p.PaymentMethod) == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	updated, err := u.payments.UpdatePayment(ctx, id, p)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, err
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPaymentID
	}
	err := u.payments.DeletePayment(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrPaymentNotFound
	}
	return err
}

func (u *PaymentUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	parsed, err := ParsePaymentStatus(status)
	if err != nil {
		return entities.Payment{}, err
	}
	updated, err := u.payments.UpdatePaymentStatus(ctx, id, parsed)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, err
}

// ParsePaymentStatus maps a wire token onto the canonical enum.
func ParsePaymentStatus(raw string) (entities.PaymentStatus, error) {
	switch entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case entities.PaymentStatusPending:
		return entities.PaymentStatusPending, nil
	case entities.PaymentStatusPaid:
		return entities.PaymentStatusPaid, nil
	case entities.PaymentStatusCancelled:
		return entities.PaymentStatusCancelled, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}
