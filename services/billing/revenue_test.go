package billing

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestRevenueFallback(t *testing.T) {
	prices := []*float64{floatPtr(500), floatPtr(300)}

	// No billing paid amount: fall back to the performed-service sum.
	if got := PickRevenue(0, SumPrices(prices)); got != 800 {
		t.Fatalf("expected fallback revenue 800, got %v", got)
	}

	// Billing paid amount wins whenever it is positive.
	if got := PickRevenue(1000, SumPrices(prices)); got != 1000 {
		t.Fatalf("expected billing revenue 1000, got %v", got)
	}
}

func TestSumPricesSkipsNullAndNonPositive(t *testing.T) {
	prices := []*float64{floatPtr(400), nil, floatPtr(0), floatPtr(-50), floatPtr(600)}
	if got := SumPrices(prices); got != 1000 {
		t.Fatalf("expected 1000, got %v", got)
	}
}
