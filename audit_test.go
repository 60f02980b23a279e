package deliveries

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	clean := Delivery{
		DeliveryNumber: 1,
		Lines:          []Line{{ItemKey: "tard", MarketKey: "gamshi", Qty: 3, Price: 2.5, LineTotal: 7.5}},
		TotalQty:       3,
		TotalAmount:    7.5,
	}

	if problems := Check([]Delivery{clean}); len(problems) != 0 {
		t.Errorf("Check(clean) = %v, want none", problems)
	}

	testCases := []struct {
		name string
		list []Delivery
		want string
	}{
		{
			name: "duplicate number",
			list: []Delivery{clean, {DeliveryNumber: 1}},
			want: "appears more than once",
		},
		{
			name: "stale line total",
			list: []Delivery{{
				DeliveryNumber: 2,
				Lines:          []Line{{ItemKey: "tard", MarketKey: "gamshi", Qty: 2, Price: 2, LineTotal: 5}},
				TotalQty:       2,
				TotalAmount:    5,
			}},
			want: "line tard/gamshi total is 5, recomputed 4",
		},
		{
			name: "stale total qty",
			list: []Delivery{{DeliveryNumber: 3, TotalQty: 9}},
			want: "total qty is 9, recomputed 0",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			problems := Check(tc.list)
			if len(problems) == 0 {
				t.Fatal("Check found nothing, want a problem")
			}
			found := false
			for _, p := range problems {
				if strings.Contains(p.Error(), tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Check = %v, want a problem containing %q", problems, tc.want)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	list := []Delivery{
		{
			DeliveryNumber: 2,
			Lines:          []Line{{ItemKey: "tard", MarketKey: "gamshi", Qty: 2, Price: 2, LineTotal: 99}},
			TotalAmount:    99,
		},
		{DeliveryNumber: 1},
	}

	got := Canonicalize(list)

	if got[0].DeliveryNumber != 1 || got[1].DeliveryNumber != 2 {
		t.Errorf("Canonicalize order = %d, %d, want 1, 2", got[0].DeliveryNumber, got[1].DeliveryNumber)
	}
	if got[1].Lines[0].LineTotal != 4 || got[1].TotalAmount != 4 || got[1].TotalQty != 2 {
		t.Errorf("Canonicalize did not recompute: %+v", got[1])
	}
	// The input list stays as it was.
	if list[0].DeliveryNumber != 2 || list[0].TotalAmount != 99 {
		t.Errorf("Canonicalize modified its input: %+v", list[0])
	}
}
