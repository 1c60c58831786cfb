package fulfillment

import (
	"encoding/json"
	"errors"
	"testing"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/errs"
	"salon-booking/types"
	performedTypes "salon-booking/types/performed"
)

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }

func receptionist() types.Actor { return types.Actor{UserID: 1, Role: "receptionist"} }

func staff(id uint) types.Actor { return types.Actor{UserID: id, Role: "staff"} }

func TestCreateBatchCompletedRequiresStaff(t *testing.T) {
	items := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, StaffID: uintPtr(7)},
		{ServiceID: 11}, // defaults to completed with no staff
		{ServiceID: 12, StaffID: uintPtr(7)},
	}

	resolved, err := ResolveCreateBatch(receptionist(), items)
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if resolved != nil {
		t.Fatal("a failing item must reject the entire batch")
	}
}

func TestCreateBatchDefaultsStatusToCompleted(t *testing.T) {
	items := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, StaffID: uintPtr(7)},
	}
	resolved, err := ResolveCreateBatch(receptionist(), items)
	if err != nil {
		t.Fatalf("ResolveCreateBatch failed: %v", err)
	}
	if resolved[0].Status != appointmentModel.StatusCompleted {
		t.Fatalf("expected default status completed, got %s", resolved[0].Status)
	}
}

func TestCreateBatchScheduledWithoutStaffAllowed(t *testing.T) {
	items := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, Status: "scheduled"},
	}
	if _, err := ResolveCreateBatch(receptionist(), items); err != nil {
		t.Fatalf("scheduled item without staff should pass for receptionist: %v", err)
	}
}

func TestCreateBatchStaffOwnership(t *testing.T) {
	other := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, StaffID: uintPtr(9)},
	}
	if _, err := ResolveCreateBatch(staff(7), other); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("expected forbidden for staff crediting someone else, got %v", err)
	}

	own := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, StaffID: uintPtr(7)},
	}
	if _, err := ResolveCreateBatch(staff(7), own); err != nil {
		t.Fatalf("staff crediting themselves should pass: %v", err)
	}
}

func TestCreateBatchRejectsUnknownStatus(t *testing.T) {
	items := []performedTypes.PerformedServiceInput{
		{ServiceID: 10, StaffID: uintPtr(7), Status: "done"},
	}
	if _, err := ResolveCreateBatch(receptionist(), items); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func patchFromJSON(t *testing.T, raw string) performedTypes.PerformedServicePatch {
	t.Helper()
	var p performedTypes.PerformedServicePatch
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("bad patch fixture: %v", err)
	}
	return p
}

func TestUpdateSkipsRowsNotOwnedByStaff(t *testing.T) {
	current := appointmentModel.PerformedService{ID: 5, StaffID: uintPtr(9), Status: appointmentModel.StatusScheduled}
	patch := patchFromJSON(t, `{"id": 5, "notes": "trim"}`)

	_, skip, err := ResolveUpdate(staff(7), current, patch)
	if err != nil {
		t.Fatalf("non-owned row must skip, not error: %v", err)
	}
	if !skip {
		t.Fatal("expected skip for a row owned by another staff member")
	}

	owned := appointmentModel.PerformedService{ID: 5, StaffID: uintPtr(7), Status: appointmentModel.StatusScheduled}
	updates, skip, err := ResolveUpdate(staff(7), owned, patch)
	if err != nil || skip {
		t.Fatalf("owned row should update: err=%v skip=%v", err, skip)
	}
	if updates["notes"] != "trim" {
		t.Fatalf("expected notes update, got %v", updates)
	}
}

func TestUpdateStaffCannotReassign(t *testing.T) {
	current := appointmentModel.PerformedService{ID: 5, StaffID: uintPtr(7), Status: appointmentModel.StatusScheduled}
	patch := patchFromJSON(t, `{"id": 5, "staff_id": 9}`)

	if _, _, err := ResolveUpdate(staff(7), current, patch); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("expected forbidden on reassignment, got %v", err)
	}
}

func TestUpdateCompletionRequiresResultingStaff(t *testing.T) {
	// Stored staff is null; patching status alone must fail.
	unassigned := appointmentModel.PerformedService{ID: 5, Status: appointmentModel.StatusScheduled}
	statusOnly := patchFromJSON(t, `{"id": 5, "status": "completed"}`)
	if _, _, err := ResolveUpdate(receptionist(), unassigned, statusOnly); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Supplying the staff member in the same patch satisfies the invariant.
	withStaff := patchFromJSON(t, `{"id": 5, "status": "completed", "staff_id": 7}`)
	updates, skip, err := ResolveUpdate(receptionist(), unassigned, withStaff)
	if err != nil || skip {
		t.Fatalf("patch with staff should pass: err=%v skip=%v", err, skip)
	}
	if updates["status"] != appointmentModel.StatusCompleted {
		t.Fatalf("expected status update, got %v", updates)
	}

	// Stored staff set, status completed, patching staff to explicit null
	// would break the invariant on the resulting values.
	completed := appointmentModel.PerformedService{ID: 5, StaffID: uintPtr(7), Status: appointmentModel.StatusCompleted}
	nullStaff := patchFromJSON(t, `{"id": 5, "staff_id": null}`)
	if _, _, err := ResolveUpdate(receptionist(), completed, nullStaff); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error for null staff on completed row, got %v", err)
	}
}

func TestUpdateOnlyTouchesPresentFields(t *testing.T) {
	current := appointmentModel.PerformedService{
		ID:      5,
		StaffID: uintPtr(7),
		Status:  appointmentModel.StatusScheduled,
		Price:   floatPtr(400),
	}
	patch := patchFromJSON(t, `{"id": 5, "price": 450}`)

	updates, _, err := ResolveUpdate(receptionist(), current, patch)
	if err != nil {
		t.Fatalf("ResolveUpdate failed: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected exactly one column update, got %v", updates)
	}
	if v, ok := updates["price"].(*float64); !ok || v == nil || *v != 450 {
		t.Fatalf("expected price 450, got %v", updates["price"])
	}
}

// Mirrors the two-step flow: completing both services of an appointment fails
// while they are unassigned, then succeeds once a staff member is supplied.
func TestCompleteAppointmentFlow(t *testing.T) {
	rows := []appointmentModel.PerformedService{
		{ID: 1, AppointmentID: 100, Status: appointmentModel.StatusScheduled, Price: floatPtr(400)},
		{ID: 2, AppointmentID: 100, Status: appointmentModel.StatusScheduled, Price: floatPtr(600)},
	}

	for _, row := range rows {
		patch := patchFromJSON(t, `{"id": 1, "status": "completed"}`)
		if _, _, err := ResolveUpdate(receptionist(), row, patch); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error completing unassigned row %d, got %v", row.ID, err)
		}
	}

	for _, row := range rows {
		patch := patchFromJSON(t, `{"id": 1, "status": "completed", "staff_id": 7}`)
		if _, skip, err := ResolveUpdate(receptionist(), row, patch); err != nil || skip {
			t.Fatalf("expected row %d to complete: err=%v skip=%v", row.ID, err, skip)
		}
	}
}
