package billing

import (
	"fmt"
	"strconv"

	appointmentModel "salon-booking/models/appointment"
	billingModel "salon-booking/models/billing"
	"salon-booking/services/errs"
	"salon-booking/types"
	billingTypes "salon-booking/types/billing"

	"gorm.io/gorm"
)

// Service is the billing reconciliation engine: it maintains the billing
// record of an appointment and derives the authoritative revenue figure.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the appointment's billing record, or nil when none exists.
// Absence is a normal answer here, never an error.
func (s *Service) Get(appointmentID uint) (*billingModel.BillingRecord, error) {
	var record billingModel.BillingRecord
	err := s.db.Where("appointment_id = ?", appointmentID).Order("id ASC").First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create opens the billing record for an appointment. The performed-service
// reference is mandatory (historical linkage, not an aggregate key), and at
// most one record may exist per appointment.
func (s *Service) Create(actor types.Actor, appointmentID uint, req billingTypes.CreateRequest) (*billingModel.BillingRecord, error) {
	if req.PerformedServiceID == 0 {
		return nil, fmt.Errorf("%w: performed_service_id is required", errs.ErrValidation)
	}

	status := billingModel.PaymentStatusPending
	if req.PaymentStatus != "" {
		status = billingModel.PaymentStatus(req.PaymentStatus)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid payment_status %q", errs.ErrValidation, req.PaymentStatus)
		}
	}

	// The linked performed service must belong to the appointment being billed.
	var count int64
	err := s.db.Model(&appointmentModel.PerformedService{}).
		Where("id = ? AND appointment_id = ?", req.PerformedServiceID, appointmentID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: performed service %d does not belong to appointment %d", errs.ErrValidation, req.PerformedServiceID, appointmentID)
	}

	existing, err := s.Get(appointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a billing record already exists for appointment %d", errs.ErrValidation, appointmentID)
	}

	record := billingModel.BillingRecord{
		AppointmentID:      appointmentID,
		PerformedServiceID: req.PerformedServiceID,
		TotalAmount:        req.TotalAmount,
		PaidAmount:         req.PaidAmount,
		PaymentMethod:      req.PaymentMethod,
		PaymentStatus:      status,
		Notes:              req.Notes,
		CreatedBy:          strconv.FormatUint(uint64(actor.UserID), 10),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies the fields present in the payload to the appointment's
// billing record. A payload without any recognized field is rejected.
func (s *Service) Update(appointmentID uint, req billingTypes.UpdateRequest) (*billingModel.BillingRecord, error) {
	if !req.HasFields() {
		return nil, fmt.Errorf("%w: no recognized field in payload", errs.ErrValidation)
	}

	updates := map[string]interface{}{}
	if v, ok := req.TotalAmount.Get(); ok {
		updates["total_amount"] = v
	}
	if v, ok := req.PaidAmount.Get(); ok {
		updates["paid_amount"] = v
	}
	if v, ok := req.PaymentMethod.Get(); ok {
		updates["payment_method"] = v
	}
	if req.PaymentStatus.Present {
		v, ok := req.PaymentStatus.Get()
		if !ok {
			return nil, fmt.Errorf("%w: payment_status must not be null", errs.ErrValidation)
		}
		status := billingModel.PaymentStatus(v)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: invalid payment_status %q", errs.ErrValidation, v)
		}
		updates["payment_status"] = status
	}
	if v, ok := req.Notes.Get(); ok {
		updates["notes"] = v
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no recognized field in payload", errs.ErrValidation)
	}

	result := s.db.Model(&billingModel.BillingRecord{}).
		Where("appointment_id = ?", appointmentID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no billing record for appointment %d", errs.ErrNotFound, appointmentID)
	}
	return s.Get(appointmentID)
}

// RevenueForAppointment applies the fallback rule to a single appointment.
func (s *Service) RevenueForAppointment(appointmentID uint) (float64, error) {
	var paid float64
	err := s.db.Model(&billingModel.BillingRecord{}).
		Where("appointment_id = ?", appointmentID).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return 0, err
	}

	var priceSum float64
	err = s.db.Model(&appointmentModel.PerformedService{}).
		Where("appointment_id = ? AND price > 0", appointmentID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&priceSum).Error
	if err != nil {
		return 0, err
	}

	return PickRevenue(paid, priceSum), nil
}
