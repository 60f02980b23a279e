package deliveries

import (
	"math"
	"testing"
)

func TestCurrency_Format(t *testing.T) {
	ils := NewCurrency("ILS")

	testCases := []struct {
		in   float64
		want string
	}{
		{in: 7.5, want: "₪7.50"},
		{in: 0, want: "₪0.00"},
		{in: 1234.567, want: "₪1234.57"},
		{in: -3.2, want: "₪-3.20"},
		{in: math.NaN(), want: "₪0.00"},
		{in: math.Inf(1), want: "₪0.00"},
	}
	for _, tc := range testCases {
		if got := ils.Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewCurrency_FallsBackToDefault(t *testing.T) {
	unknown := NewCurrency("NOPE")
	ils := NewCurrency("ILS")
	if unknown != ils {
		t.Errorf("NewCurrency(unknown) = %+v, want the ILS default %+v", unknown, ils)
	}
}

func TestNewCurrency_OtherCode(t *testing.T) {
	usd := NewCurrency("USD")
	if got := usd.Format(2.5); got != "$2.50" {
		t.Errorf("USD Format(2.5) = %q, want %q", got, "$2.50")
	}
}
