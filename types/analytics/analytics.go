package analytics

// Report is the aggregate produced for an inclusive date range over the
// appointment scheduled date.
type Report struct {
	From string `json:"from"`
	To   string `json:"to"`

	AppointmentCount      int64 `json:"appointment_count"`
	CompletedCount        int64 `json:"completed_count"`
	PerformedServiceCount int64 `json:"performed_service_count"`

	// TotalRevenue applies the billing-first fallback once over the whole
	// range: the billing paid sum when it is greater than zero, else the sum
	// of positive performed-service prices.
	TotalRevenue float64 `json:"total_revenue"`

	StatusHistogram        map[string]int64 `json:"status_histogram"`
	PaymentStatusHistogram map[string]int64 `json:"payment_status_histogram"`

	TopServices []ServiceCount `json:"top_services"`
	StaffStats  []StaffStat    `json:"staff_stats"`
}

// ServiceCount ranks a catalog service by how often it was performed in range.
// Ties carry no secondary ordering key.
type ServiceCount struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
}

// StaffStat summarizes one staff member's work in range. BilledRevenue joins
// billing to performed services on the appointment, so an appointment worked
// by two staff members counts its full billed amount under each of them.
type StaffStat struct {
	StaffID        uint    `json:"staff_id"`
	Name           string  `json:"name"`
	PerformedCount int64   `json:"performed_count"`
	Revenue        float64 `json:"revenue"`
	BilledRevenue  float64 `json:"billed_revenue"`
}
