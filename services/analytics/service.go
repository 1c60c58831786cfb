package analytics

import (
	"fmt"
	"regexp"
	"time"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/errs"
	analyticsTypes "salon-booking/types/analytics"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// DefaultTopServices bounds the top-services ranking in the range report.
const DefaultTopServices = 5

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Service computes KPIs over a date range by appointment scheduled date.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ParseRange validates a strict YYYY-MM-DD pair and widens it to an inclusive
// [start of from-day, end of to-day] window.
func ParseRange(from, to string) (time.Time, time.Time, error) {
	start, err := parseDay(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDay(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to must not be before from", errs.ErrValidation)
	}
	return now.With(start).BeginningOfDay(), now.With(end).EndOfDay(), nil
}

func parseDay(value string) (time.Time, error) {
	if !dateFormat.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: date %q must match YYYY-MM-DD", errs.ErrValidation, value)
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", errs.ErrValidation, value)
	}
	return day, nil
}

// Report fetches the rows of the window and folds them with BuildReport.
func (s *Service) Report(start, end time.Time) (analyticsTypes.Report, error) {
	var appts []AppointmentRow
	err := s.db.Model(&appointmentModel.Appointment{}).
		Select("id, status").
		Where("scheduled_start BETWEEN ? AND ?", start, end).
		Scan(&appts).Error
	if err != nil {
		return analyticsTypes.Report{}, err
	}

	var perfs []PerformedRow
	err = s.db.Table("performed_services").
		Select(`performed_services.id, performed_services.appointment_id,
			performed_services.service_id, performed_services.staff_id,
			performed_services.status, performed_services.price,
			COALESCE(services.name, '') AS service_name,
			COALESCE(users.name, '') AS staff_name`).
		Joins("JOIN appointments ON appointments.id = performed_services.appointment_id").
		Joins("LEFT JOIN services ON services.id = performed_services.service_id").
		Joins("LEFT JOIN users ON users.id = performed_services.staff_id").
		Where("appointments.scheduled_start BETWEEN ? AND ?", start, end).
		Scan(&perfs).Error
	if err != nil {
		return analyticsTypes.Report{}, err
	}

	var bills []BillingRow
	err = s.db.Table("billing_records").
		Select("billing_records.appointment_id, billing_records.paid_amount, billing_records.payment_status").
		Joins("JOIN appointments ON appointments.id = billing_records.appointment_id").
		Where("appointments.scheduled_start BETWEEN ? AND ?", start, end).
		Scan(&bills).Error
	if err != nil {
		return analyticsTypes.Report{}, err
	}

	report := BuildReport(appts, perfs, bills, DefaultTopServices)
	report.From = start.Format("2006-01-02")
	report.To = end.Format("2006-01-02")
	return report, nil
}
