package appointment

import (
	"fmt"
	"time"
)

// CreateRequest is the payload of POST /appointments. One performed-service
// row is opened per planned service id, with the catalog price snapshotted.
type CreateRequest struct {
	CustomerID        uint      `json:"customer_id"`
	FamilyMemberID    *uint     `json:"family_member_id,omitempty"`
	ScheduledStart    time.Time `json:"scheduled_start"`
	ScheduledEnd      time.Time `json:"scheduled_end"`
	PlannedServiceIDs []uint    `json:"planned_service_ids"`
	PlannedStaffIDs   []uint    `json:"planned_staff_ids,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

func (r CreateRequest) Validate() error {
	if r.CustomerID == 0 {
		return fmt.Errorf("customer_id is required")
	}
	if r.ScheduledStart.IsZero() {
		return fmt.Errorf("scheduled_start is required")
	}
	if r.ScheduledEnd.IsZero() {
		return fmt.Errorf("scheduled_end is required")
	}
	if r.ScheduledEnd.Before(r.ScheduledStart) {
		return fmt.Errorf("scheduled_end must not be before scheduled_start")
	}
	if len(r.PlannedServiceIDs) == 0 {
		return fmt.Errorf("planned_service_ids is required and must not be empty")
	}
	for i, id := range r.PlannedServiceIDs {
		if id == 0 {
			return fmt.Errorf("planned_service_ids[%d] is invalid", i)
		}
	}
	return nil
}

// UpdateStatusRequest is the payload of PATCH /appointments/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
