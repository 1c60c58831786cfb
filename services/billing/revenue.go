package billing

// The revenue fallback rule, shared with the analytics aggregator: billing is
// entered by hand at reception and may lag or be skipped entirely, so the sum
// of performed-service prices serves as the always-available fallback source.

// PickRevenue returns the authoritative revenue figure for a scope: the
// billing paid amount when it is greater than zero, else the performed-service
// price sum.
func PickRevenue(billingPaid, servicePriceSum float64) float64 {
	if billingPaid > 0 {
		return billingPaid
	}
	return servicePriceSum
}

// SumPrices adds up performed-service prices, counting only rows with a
// non-null, positive price.
func SumPrices(prices []*float64) float64 {
	var sum float64
	for _, p := range prices {
		if p != nil && *p > 0 {
			sum += *p
		}
	}
	return sum
}
