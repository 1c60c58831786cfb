package types

import (
	"encoding/json"
	"testing"
)

func TestOptionalTriState(t *testing.T) {
	var dst struct {
		Price  Optional[float64] `json:"price"`
		Staff  Optional[uint]    `json:"staff_id"`
		Status Optional[string]  `json:"status"`
	}

	payload := []byte(`{"price": 350.5, "staff_id": null}`)
	if err := json.Unmarshal(payload, &dst); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if v, ok := dst.Price.Get(); !ok || v != 350.5 {
		t.Fatalf("expected price 350.5 present, got %v ok=%v", v, ok)
	}
	if !dst.Staff.Present {
		t.Fatal("explicit null staff_id should be present")
	}
	if _, ok := dst.Staff.Get(); ok {
		t.Fatal("explicit null staff_id should not carry a value")
	}
	if dst.Status.Present {
		t.Fatal("absent status should not be present")
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var dst struct {
		Price Optional[float64] `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price": "abc"}`), &dst); err == nil {
		t.Fatal("expected type error for string price")
	}
}
