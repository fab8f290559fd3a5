package interfaces

import (
	"context"

	"revenda_xpto/internal/domain/entities"
)

// ITransitionLogRepository persists status-transition attempts for operator
// reconciliation. Recording is best-effort: the workflow logs and continues
// when Record fails, it never aborts a transition over its audit trail.

type ITransitionLogRepository interface {
	Record(ctx context.Context, t entities.StatusTransition) (entities.StatusTransition, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.StatusTransition, error)
}
