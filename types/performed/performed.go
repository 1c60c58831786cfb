package performed

import (
	"fmt"

	"salon-booking/types"
)

// PerformedServiceInput is one item of a bulk create. Only the service
// reference is mandatory; status defaults to completed, price to the catalog
// snapshot.
type PerformedServiceInput struct {
	ServiceID uint     `json:"service_id"`
	StaffID   *uint    `json:"staff_id,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Status    string   `json:"status,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// CreateBatchRequest is the payload of POST /appointments/:id/performed-services.
type CreateBatchRequest struct {
	Items []PerformedServiceInput `json:"items"`
}

func (r CreateBatchRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("items is required and must not be empty")
	}
	for i, item := range r.Items {
		if item.ServiceID == 0 {
			return fmt.Errorf("items[%d]: service_id is required", i)
		}
	}
	return nil
}

// PerformedServicePatch is one item of a bulk partial update. Every field
// except the id is tri-state: absent fields are left untouched.
type PerformedServicePatch struct {
	ID        uint                    `json:"id"`
	ServiceID types.Optional[uint]    `json:"service_id"`
	StaffID   types.Optional[uint]    `json:"staff_id"`
	Price     types.Optional[float64] `json:"price"`
	Status    types.Optional[string]  `json:"status"`
	Notes     types.Optional[string]  `json:"notes"`
}

// UpdateBatchRequest is the payload of PATCH /appointments/:id/performed-services.
type UpdateBatchRequest struct {
	Items []PerformedServicePatch `json:"items"`
}

func (r UpdateBatchRequest) Validate() error {
	if len(r.Items) == 0 {
		return fmt.Errorf("items is required and must not be empty")
	}
	for i, item := range r.Items {
		if item.ID == 0 {
			return fmt.Errorf("items[%d]: id is required", i)
		}
	}
	return nil
}

// DeleteBatchRequest is the payload of DELETE /appointments/:id/performed-services.
type DeleteBatchRequest struct {
	IDs []uint `json:"ids"`
}

func (r DeleteBatchRequest) Validate() error {
	if len(r.IDs) == 0 {
		return fmt.Errorf("ids is required and must not be empty")
	}
	return nil
}
