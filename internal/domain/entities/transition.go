package entities

import "time"

// TransitionAction identifies which workflow operation produced a transition
// log entry.

type TransitionAction string

const (
	TransitionActionCreateSale     TransitionAction = "create_sale"
	TransitionActionConfirmPayment TransitionAction = "confirm_payment"
	TransitionActionNotifyWebhook  TransitionAction = "notify_webhook"
	TransitionActionCancelPayment  TransitionAction = "cancel_payment"
	TransitionActionReopenSale     TransitionAction = "reopen_sale"
	TransitionActionDeleteSale     TransitionAction = "delete_sale"
)

// StatusTransition is the audit record persisted for every status-transition
// attempt. Transitions span two independently-owned services without a shared
// transaction, so a partially-completed attempt leaves the entities
// inconsistent; this record is what an operator reconciles from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sale_id-index): sale_id
type StatusTransition struct {
	ID             string           `json:"id"`
	SaleID         string           `json:"sale_id"`
	VehicleID      string           `json:"vehicle_id"`
	Action         TransitionAction `json:"action"`
	SaleStatus     PaymentStatus    `json:"sale_status"`
	VehicleStatus  VehicleStatus    `json:"vehicle_status"`
	StepsCompleted int              `json:"steps_completed"`
	Failure        string           `json:"failure,omitempty"`
	Date           time.Time        `json:"date"`
}
