package interfaces

import (
	"context"

	"revenda_xpto/internal/domain/entities"
)

// ISalesService abstracts the sales REST service (base URL B).
//
// Delete propagates the upstream 404 as the client's not-found sentinel; the
// workflow decides whether that counts as success (idempotent delete).

type ISalesService interface {
	List(ctx context.Context) ([]entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	Create(ctx context.Context, s entities.SaleCreate) (entities.Sale, error)
	Update(ctx context.Context, id string, s entities.Sale) (entities.Sale, error)
	Delete(ctx context.Context, id string) error
	MarkAsPending(ctx context.Context, id string) (entities.Sale, error)
	MarkAsPaid(ctx context.Context, id string) (entities.Sale, error)
	MarkAsCancelled(ctx context.Context, id string) (entities.Sale, error)
	CreatePayment(ctx context.Context, saleID, paymentCode string) (entities.Sale, error)
	ConfirmPayment(ctx context.Context, saleID string) (entities.Sale, error)
	CancelPayment(ctx context.Context, saleID string) (entities.Sale, error)
	NotifyPaymentWebhook(ctx context.Context, paymentCode string, status entities.PaymentStatus, vehicleID string) error
}
