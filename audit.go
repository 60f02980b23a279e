package deliveries

import (
	"fmt"
	"sort"
)

// Check audits a delivery list for invariant violations: duplicate
// delivery numbers, line totals out of sync with qty×price, and delivery
// totals out of sync with their lines. It reports every problem found and
// never modifies anything.
func Check(list []Delivery) []error {
	var problems []error

	seen := make(map[int]bool, len(list))
	for _, d := range list {
		if seen[d.DeliveryNumber] {
			problems = append(problems, fmt.Errorf("delivery number %d appears more than once", d.DeliveryNumber))
		}
		seen[d.DeliveryNumber] = true

		want := d.Recompute()
		for i, line := range d.Lines {
			if line.LineTotal != want.Lines[i].LineTotal {
				problems = append(problems, fmt.Errorf("delivery %d: line %s/%s total is %v, recomputed %v",
					d.DeliveryNumber, line.ItemKey, line.MarketKey, line.LineTotal, want.Lines[i].LineTotal))
			}
		}
		if d.TotalQty != want.TotalQty {
			problems = append(problems, fmt.Errorf("delivery %d: total qty is %d, recomputed %d",
				d.DeliveryNumber, d.TotalQty, want.TotalQty))
		}
		if d.TotalAmount != want.TotalAmount {
			problems = append(problems, fmt.Errorf("delivery %d: total amount is %v, recomputed %v",
				d.DeliveryNumber, d.TotalAmount, want.TotalAmount))
		}
	}
	return problems
}

// Canonicalize returns the list in canonical form: derived fields
// recomputed from quantities and prices, sorted ascending by delivery
// number. The input is not modified.
func Canonicalize(list []Delivery) []Delivery {
	out := make([]Delivery, len(list))
	for i, d := range list {
		out[i] = d.Recompute()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeliveryNumber < out[j].DeliveryNumber
	})
	return out
}
