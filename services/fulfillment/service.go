package fulfillment

import (
	"fmt"
	"time"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/errs"
	"salon-booking/types"
	performedTypes "salon-booking/types/performed"

	"gorm.io/gorm"
)

// Service is the fulfillment ledger: it owns every mutation of
// performed-service rows and the role rules around them.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Row is a performed-service row enriched with catalog data for listing.
type Row struct {
	ID            uint                    `json:"id"`
	AppointmentID uint                    `json:"appointment_id"`
	ServiceID     uint                    `json:"service_id"`
	StaffID       *uint                   `json:"staff_id,omitempty"`
	Status        appointmentModel.Status `json:"status"`
	Price         *float64                `json:"price,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	ServiceName   string                  `json:"service_name"`
	TaxRate       float64                 `json:"tax_rate"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// List returns every performed service of an appointment, newest first,
// enriched with the catalog name and tax rate. There is no role filter on
// reads.
func (s *Service) List(appointmentID uint) ([]Row, error) {
	rows := []Row{}
	err := s.db.Table("performed_services").
		Select("performed_services.*, services.name AS service_name, COALESCE(services.tax_rate, 0) AS tax_rate").
		Joins("LEFT JOIN services ON services.id = performed_services.service_id").
		Where("performed_services.appointment_id = ?", appointmentID).
		Order("performed_services.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch validates the whole batch up front and inserts it in one write.
// A single invalid item rejects everything; there are no partial inserts on
// validation failure.
func (s *Service) CreateBatch(actor types.Actor, appointmentID uint, items []performedTypes.PerformedServiceInput) (int64, error) {
	if err := s.ensureAppointment(appointmentID); err != nil {
		return 0, err
	}

	resolved, err := ResolveCreateBatch(actor, items)
	if err != nil {
		return 0, err
	}

	// Snapshot the current catalog price for items without an override.
	prices, err := s.catalogPrices(resolved)
	if err != nil {
		return 0, err
	}

	rows := make([]appointmentModel.PerformedService, 0, len(resolved))
	for _, item := range resolved {
		price := item.Price
		if price == nil {
			if p, ok := prices[item.ServiceID]; ok {
				snapshot := p
				price = &snapshot
			}
		}
		rows = append(rows, appointmentModel.PerformedService{
			AppointmentID: appointmentID,
			ServiceID:     item.ServiceID,
			StaffID:       item.StaffID,
			Status:        item.Status,
			Price:         price,
			Notes:         item.Notes,
		})
	}

	result := s.db.Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateBatch applies each partial update independently. Rows a staff caller
// does not own are skipped without error and simply excluded from the count;
// completion and reassignment violations abort the pass. The staff scope is
// repeated in the WHERE clause as defense in depth beyond ResolveUpdate.
func (s *Service) UpdateBatch(actor types.Actor, appointmentID uint, items []performedTypes.PerformedServicePatch) (int64, error) {
	var updated int64
	for _, patch := range items {
		if patch.ID == 0 {
			return updated, fmt.Errorf("%w: id is required for every update item", errs.ErrValidation)
		}

		var current appointmentModel.PerformedService
		err := s.db.Where("id = ? AND appointment_id = ?", patch.ID, appointmentID).First(&current).Error
		if err == gorm.ErrRecordNotFound {
			continue
		}
		if err != nil {
			return updated, err
		}

		updates, skip, err := ResolveUpdate(actor, current, patch)
		if err != nil {
			return updated, err
		}
		if skip || len(updates) == 0 {
			continue
		}

		query := s.db.Model(&appointmentModel.PerformedService{}).
			Where("id = ? AND appointment_id = ?", patch.ID, appointmentID)
		if actor.IsStaff() {
			query = query.Where("staff_id = ?", actor.UserID)
		}

		result := query.Updates(updates)
		if result.Error != nil {
			return updated, result.Error
		}
		updated += result.RowsAffected
	}
	return updated, nil
}

// DeleteBatch removes the given rows. For staff callers the delete is scoped
// to their own rows; everything else is silently left in place.
func (s *Service) DeleteBatch(actor types.Actor, appointmentID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids must not be empty", errs.ErrValidation)
	}

	query := s.db.Where("appointment_id = ? AND id IN ?", appointmentID, ids)
	if actor.IsStaff() {
		query = query.Where("staff_id = ?", actor.UserID)
	}

	result := query.Delete(&appointmentModel.PerformedService{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (s *Service) ensureAppointment(appointmentID uint) error {
	var count int64
	if err := s.db.Model(&appointmentModel.Appointment{}).Where("id = ?", appointmentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: appointment %d", errs.ErrNotFound, appointmentID)
	}
	return nil
}

func (s *Service) catalogPrices(items []ResolvedCreate) (map[uint]float64, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if item.Price == nil {
			ids = append(ids, item.ServiceID)
		}
	}
	prices := map[uint]float64{}
	if len(ids) == 0 {
		return prices, nil
	}

	var catalog []struct {
		ID    uint
		Price float64
	}
	if err := s.db.Table("services").Select("id, price").Where("id IN ?", ids).Scan(&catalog).Error; err != nil {
		return nil, err
	}
	for _, c := range catalog {
		prices[c.ID] = c.Price
	}
	return prices, nil
}
