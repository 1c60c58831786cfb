package billing

import (
	"fmt"

	"salon-booking/types"
)

// CreateRequest is the payload of POST /appointments/:id/billing.
type CreateRequest struct {
	PerformedServiceID uint    `json:"performed_service_id"`
	TotalAmount        float64 `json:"total_amount"`
	PaidAmount         float64 `json:"paid_amount"`
	PaymentMethod      string  `json:"payment_method"`
	PaymentStatus      string  `json:"payment_status"`
	Notes              string  `json:"notes"`
}

func (r CreateRequest) Validate() error {
	if r.PerformedServiceID == 0 {
		return fmt.Errorf("performed_service_id is required")
	}
	if r.TotalAmount < 0 || r.PaidAmount < 0 {
		return fmt.Errorf("amounts must not be negative")
	}
	return nil
}

// UpdateRequest is the payload of PATCH /appointments/:id/billing. All fields
// are tri-state; at least one must be present.
type UpdateRequest struct {
	TotalAmount   types.Optional[float64] `json:"total_amount"`
	PaidAmount    types.Optional[float64] `json:"paid_amount"`
	PaymentMethod types.Optional[string]  `json:"payment_method"`
	PaymentStatus types.Optional[string]  `json:"payment_status"`
	Notes         types.Optional[string]  `json:"notes"`
}

// HasFields reports whether any recognized field is present in the payload.
func (r UpdateRequest) HasFields() bool {
	return r.TotalAmount.Present || r.PaidAmount.Present ||
		r.PaymentMethod.Present || r.PaymentStatus.Present || r.Notes.Present
}
