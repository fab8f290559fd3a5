package interfaces

import (
	"context"

	"revenda_xpto/internal/domain/entities"
)

// IPaymentsAPI abstracts the /payments resource. It rides on the vehicle
// service base URL and answers with an enveloped {data: T} body shape, an
// upstream inconsistency the client implementation hides.

type IPaymentsAPI interface {
	ListPayments(ctx context.Context) ([]entities.Payment, error)
	CreatePayment(ctx context.Context, p entities.PaymentCreate) (entities.Payment, error)
	UpdatePayment(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
}
