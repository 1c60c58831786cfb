package analytics

import (
	"errors"
	"testing"

	appointmentModel "salon-booking/models/appointment"
	"salon-booking/services/errs"
)

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestParseRangeRejectsBadFormat(t *testing.T) {
	bad := []string{"2026-1-05", "20260105", "2026/01/05", "2026-01-05T00:00:00Z", "abc"}
	for _, v := range bad {
		if _, _, err := ParseRange(v, "2026-01-31"); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for from=%q, got %v", v, err)
		}
		if _, _, err := ParseRange("2026-01-01", v); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for to=%q, got %v", v, err)
		}
	}
}

func TestParseRangeInclusive(t *testing.T) {
	start, end, err := ParseRange("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("ParseRange failed: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("start should open the day, got %s", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 {
		t.Fatalf("end should close the day, got %s", end)
	}
	if _, _, err := ParseRange("2026-02-01", "2026-01-31"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

func TestBuildReportRangeLevelFallback(t *testing.T) {
	appts := []AppointmentRow{
		{ID: 1, Status: appointmentModel.StatusCompleted},
		{ID: 2, Status: appointmentModel.StatusScheduled},
	}
	perfs := []PerformedRow{
		{ID: 1, AppointmentID: 1, ServiceID: 10, ServiceName: "Haircut", StaffID: uintPtr(7), StaffName: "Mira", Price: floatPtr(500)},
		{ID: 2, AppointmentID: 2, ServiceID: 11, ServiceName: "Coloring", StaffID: uintPtr(8), StaffName: "Lena", Price: floatPtr(300)},
	}

	// No billing rows at all: range revenue falls back to the price sum.
	report := BuildReport(appts, perfs, nil, DefaultTopServices)
	if report.TotalRevenue != 800 {
		t.Fatalf("expected fallback revenue 800, got %v", report.TotalRevenue)
	}
	if report.AppointmentCount != 2 || report.CompletedCount != 1 {
		t.Fatalf("unexpected counts: %+v", report)
	}

	// A positive billing sum wins over the price sum for the whole range.
	bills := []BillingRow{{AppointmentID: 1, PaidAmount: 1000, PaymentStatus: "paid"}}
	report = BuildReport(appts, perfs, bills, DefaultTopServices)
	if report.TotalRevenue != 1000 {
		t.Fatalf("expected billing revenue 1000, got %v", report.TotalRevenue)
	}
	if report.PaymentStatusHistogram["paid"] != 1 {
		t.Fatalf("unexpected payment histogram: %v", report.PaymentStatusHistogram)
	}
}

func TestBuildReportHistogramsAndTopServices(t *testing.T) {
	appts := []AppointmentRow{
		{ID: 1, Status: appointmentModel.StatusCompleted},
		{ID: 2, Status: appointmentModel.StatusCompleted},
		{ID: 3, Status: appointmentModel.StatusCanceled},
	}
	perfs := []PerformedRow{
		{ID: 1, AppointmentID: 1, ServiceID: 10, ServiceName: "Haircut"},
		{ID: 2, AppointmentID: 2, ServiceID: 10, ServiceName: "Haircut"},
		{ID: 3, AppointmentID: 2, ServiceID: 11, ServiceName: "Manicure"},
	}

	report := BuildReport(appts, perfs, nil, 1)
	if report.StatusHistogram["completed"] != 2 || report.StatusHistogram["canceled"] != 1 {
		t.Fatalf("unexpected status histogram: %v", report.StatusHistogram)
	}
	if report.PerformedServiceCount != 3 {
		t.Fatalf("expected 3 performed services, got %d", report.PerformedServiceCount)
	}
	if len(report.TopServices) != 1 {
		t.Fatalf("expected top-N cut to 1, got %d", len(report.TopServices))
	}
	if report.TopServices[0].ServiceID != 10 || report.TopServices[0].Count != 2 {
		t.Fatalf("unexpected top service: %+v", report.TopServices[0])
	}
}

func TestBuildReportStaffBilledRevenueDoubleAttribution(t *testing.T) {
	appts := []AppointmentRow{{ID: 1, Status: appointmentModel.StatusCompleted}}
	perfs := []PerformedRow{
		{ID: 1, AppointmentID: 1, ServiceID: 10, StaffID: uintPtr(7), StaffName: "Mira", Price: floatPtr(400)},
		{ID: 2, AppointmentID: 1, ServiceID: 11, StaffID: uintPtr(8), StaffName: "Lena", Price: floatPtr(600)},
	}
	bills := []BillingRow{{AppointmentID: 1, PaidAmount: 1000, PaymentStatus: "paid"}}

	report := BuildReport(appts, perfs, bills, DefaultTopServices)
	if len(report.StaffStats) != 2 {
		t.Fatalf("expected 2 staff entries, got %d", len(report.StaffStats))
	}
	// The billed amount joins on the appointment, so both staff carry it in
	// full. Summing the column double-counts; this mirrors the join on purpose.
	for _, st := range report.StaffStats {
		if st.BilledRevenue != 1000 {
			t.Fatalf("staff %d: expected billed revenue 1000, got %v", st.StaffID, st.BilledRevenue)
		}
	}
	if report.StaffStats[0].Revenue != 400 || report.StaffStats[1].Revenue != 600 {
		t.Fatalf("unexpected per-staff price revenue: %+v", report.StaffStats)
	}
}
