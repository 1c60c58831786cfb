package fulfillment

import (
	"fmt"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/errs"
	"salon-booking/types"
	performedTypes "salon-booking/types/performed"
)

// The rules in this file are pure: they inspect inputs and current rows and
// never touch storage, so the authorization and completion-validity semantics
// are testable on their own.

// ResolvedCreate is a create item after defaults are applied.
type ResolvedCreate struct {
	ServiceID uint
	StaffID   *uint
	Price     *float64
	Status    appointmentModel.Status
	Notes     string
}

// ResolveCreateBatch validates a whole create batch against the caller and
// applies defaults. Any failing item rejects the entire batch; nothing is
// partially accepted.
func ResolveCreateBatch(actor types.Actor, items []performedTypes.PerformedServiceInput) ([]ResolvedCreate, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", errs.ErrValidation)
	}

	resolved := make([]ResolvedCreate, 0, len(items))
	for i, item := range items {
		if item.ServiceID == 0 {
			return nil, fmt.Errorf("%w: items[%d]: service_id is required", errs.ErrValidation, i)
		}

		status := appointmentModel.StatusCompleted
		if item.Status != "" {
			status = appointmentModel.Status(item.Status)
			if !status.IsValid() {
				return nil, fmt.Errorf("%w: items[%d]: invalid status %q", errs.ErrValidation, i, item.Status)
			}
		}

		if status == appointmentModel.StatusCompleted && item.StaffID == nil {
			return nil, fmt.Errorf("%w: items[%d]: a completed service requires a staff member", errs.ErrValidation, i)
		}

		// A staff caller can only credit themselves.
		if actor.IsStaff() {
			if item.StaffID == nil || *item.StaffID != actor.UserID {
				return nil, fmt.Errorf("%w: items[%d]: staff may only record services under their own id", errs.ErrForbidden, i)
			}
		}

		resolved = append(resolved, ResolvedCreate{
			ServiceID: item.ServiceID,
			StaffID:   item.StaffID,
			Price:     item.Price,
			Status:    status,
			Notes:     item.Notes,
		})
	}
	return resolved, nil
}

// ResolveUpdate evaluates one partial-update item against the stored row.
// It returns the column updates to apply, or skip == true when the row is not
// the staff caller's to touch. Skipping is silent; trying to re-credit the row
// to someone else is not.
func ResolveUpdate(actor types.Actor, current appointmentModel.PerformedService, patch performedTypes.PerformedServicePatch) (updates map[string]interface{}, skip bool, err error) {
	if actor.IsStaff() {
		if current.StaffID == nil || *current.StaffID != actor.UserID {
			return nil, true, nil
		}
		if v, ok := patch.StaffID.Get(); ok && v != actor.UserID {
			return nil, false, fmt.Errorf("%w: staff may not reassign a service to another staff member", errs.ErrForbidden)
		}
	}

	// Resulting values: the patched value when the field is present, else the
	// stored one. The completion invariant is checked against these.
	resultingStatus := current.Status
	if patch.Status.Present {
		v, ok := patch.Status.Get()
		if !ok {
			return nil, false, fmt.Errorf("%w: status must not be null", errs.ErrValidation)
		}
		resultingStatus = appointmentModel.Status(v)
		if !resultingStatus.IsValid() {
			return nil, false, fmt.Errorf("%w: invalid status %q", errs.ErrValidation, v)
		}
	}

	resultingStaff := current.StaffID
	if patch.StaffID.Present {
		resultingStaff = patch.StaffID.Value
	}

	if resultingStatus == appointmentModel.StatusCompleted && resultingStaff == nil {
		return nil, false, fmt.Errorf("%w: a completed service requires a staff member", errs.ErrValidation)
	}

	updates = map[string]interface{}{}
	if patch.ServiceID.Present {
		v, ok := patch.ServiceID.Get()
		if !ok || v == 0 {
			return nil, false, fmt.Errorf("%w: service_id must be a valid id", errs.ErrValidation)
		}
		updates["service_id"] = v
	}
	if patch.StaffID.Present {
		updates["staff_id"] = patch.StaffID.Value
	}
	if patch.Price.Present {
		updates["price"] = patch.Price.Value
	}
	if patch.Status.Present {
		updates["status"] = resultingStatus
	}
	if patch.Notes.Present {
		v, _ := patch.Notes.Get()
		updates["notes"] = v
	}
	return updates, false, nil
}
