package response

import (
	"time"

	"revenda_xpto/internal/domain/entities"
)

// StatusTransitionResponse is one audit entry of the reconciliation view.
// steps_completed < 2 together with a failure message marks an attempt that
// left the sale and the vehicle mutually inconsistent.
type StatusTransitionResponse struct {
	ID             string    `json:"id"`
	SaleID         string    `json:"sale_id"`
	VehicleID      string    `json:"vehicle_id"`
	Action         string    `json:"action"`
	SaleStatus     string    `json:"sale_status"`
	VehicleStatus  string    `json:"vehicle_status,omitempty"`
	StepsCompleted int       `json:"steps_completed"`
	Failure        string    `json:"failure,omitempty"`
	Date           time.Time `json:"date"`
}

func FromStatusTransition(t entities.StatusTransition) StatusTransitionResponse {
	return StatusTransitionResponse{
		ID:             t.ID,
		SaleID:         t.SaleID,
		VehicleID:      t.VehicleID,
		Action:         string(t.Action),
		SaleStatus:     string(t.SaleStatus),
		VehicleStatus:  string(t.VehicleStatus),
		StepsCompleted: t.StepsCompleted,
		Failure:        t.Failure,
		Date:           t.Date,
	}
}

func FromStatusTransitions(transitions []entities.StatusTransition) []StatusTransitionResponse {
	out := make([]StatusTransitionResponse, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, FromStatusTransition(t))
	}
	return out
}
