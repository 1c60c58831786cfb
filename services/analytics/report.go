package analytics

import (
	"sort"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/billing"
	analyticsTypes "salon-booking/types/analytics"
)

// AppointmentRow is the slice of an appointment the aggregator needs.
type AppointmentRow struct {
	ID     uint
	Status appointmentModel.Status
}

// PerformedRow is a performed-service row joined with its catalog and staff
// names.
type PerformedRow struct {
	ID            uint
	AppointmentID uint
	ServiceID     uint
	ServiceName   string
	StaffID       *uint
	StaffName     string
	Status        appointmentModel.Status
	Price         *float64
}

// BillingRow is the slice of a billing record the aggregator needs.
type BillingRow struct {
	AppointmentID uint
	PaidAmount    float64
	PaymentStatus string
}

// BuildReport folds the fetched rows into the range report. Pure so the
// aggregation rules are testable without a database.
func BuildReport(appts []AppointmentRow, perfs []PerformedRow, bills []BillingRow, topN int) analyticsTypes.Report {
	report := analyticsTypes.Report{
		StatusHistogram:        map[string]int64{},
		PaymentStatusHistogram: map[string]int64{},
		TopServices:            []analyticsTypes.ServiceCount{},
		StaffStats:             []analyticsTypes.StaffStat{},
	}

	report.AppointmentCount = int64(len(appts))
	for _, a := range appts {
		report.StatusHistogram[a.Status.String()]++
		if a.Status == appointmentModel.StatusCompleted {
			report.CompletedCount++
		}
	}

	var billingPaid float64
	paidByAppointment := map[uint]float64{}
	for _, b := range bills {
		billingPaid += b.PaidAmount
		paidByAppointment[b.AppointmentID] += b.PaidAmount
		report.PaymentStatusHistogram[b.PaymentStatus]++
	}

	report.PerformedServiceCount = int64(len(perfs))

	var priceSum float64
	serviceCounts := map[uint]*analyticsTypes.ServiceCount{}
	staffStats := map[uint]*analyticsTypes.StaffStat{}
	for _, p := range perfs {
		if p.Price != nil && *p.Price > 0 {
			priceSum += *p.Price
		}

		sc, ok := serviceCounts[p.ServiceID]
		if !ok {
			sc = &analyticsTypes.ServiceCount{ServiceID: p.ServiceID, Name: p.ServiceName}
			serviceCounts[p.ServiceID] = sc
		}
		sc.Count++

		if p.StaffID != nil {
			st, ok := staffStats[*p.StaffID]
			if !ok {
				st = &analyticsTypes.StaffStat{StaffID: *p.StaffID, Name: p.StaffName}
				staffStats[*p.StaffID] = st
			}
			st.PerformedCount++
			if p.Price != nil && *p.Price > 0 {
				st.Revenue += *p.Price
			}
			// Billed revenue joins on the appointment, so every performed
			// service of a billed appointment adds the full paid amount.
			// Two staff on one appointment both carry it in full.
			st.BilledRevenue += paidByAppointment[p.AppointmentID]
		}
	}

	// The range-level fallback is applied once over the whole range, not per
	// appointment.
	report.TotalRevenue = billing.PickRevenue(billingPaid, priceSum)

	for _, sc := range serviceCounts {
		report.TopServices = append(report.TopServices, *sc)
	}
	// Ties carry no secondary key; order between equal counts is unspecified.
	sort.SliceStable(report.TopServices, func(i, j int) bool {
		return report.TopServices[i].Count > report.TopServices[j].Count
	})
	if topN > 0 && len(report.TopServices) > topN {
		report.TopServices = report.TopServices[:topN]
	}

	for _, st := range staffStats {
		report.StaffStats = append(report.StaffStats, *st)
	}
	sort.Slice(report.StaffStats, func(i, j int) bool {
		return report.StaffStats[i].StaffID < report.StaffStats[j].StaffID
	})

	return report
}
