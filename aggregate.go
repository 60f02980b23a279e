package deliveries

import (
	"github.com/moshav/deliveries/date"
)

// NextNumber returns the delivery number the next saved delivery will get:
// 1 on an empty store, otherwise the highest existing number plus one.
// Gaps left by a wipe-and-import are never refilled.
func NextNumber(list []Delivery) int {
	if len(list) == 0 {
		return 1
	}
	max := 0
	for _, d := range list {
		if d.DeliveryNumber > max {
			max = d.DeliveryNumber
		}
	}
	return max + 1
}

// FilterByRange returns the deliveries whose date falls inside r, both
// bounds inclusive, preserving store order. An open range returns the list
// unchanged.
func FilterByRange(list []Delivery, r date.Range) []Delivery {
	if r.IsOpen() {
		return list
	}
	var out []Delivery
	for _, d := range list {
		if r.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out
}

// Totals is the aggregate over a delivery subset.
type Totals struct {
	TotalQty    int
	TotalAmount float64
}

// Sum aggregates total quantity and total amount over whatever subset is
// passed in, rounding the amount to cents.
func Sum(list []Delivery) Totals {
	var t Totals
	amount := 0.0
	for _, d := range list {
		t.TotalQty += d.TotalQty
		amount += d.TotalAmount
	}
	t.TotalAmount = Round2(amount)
	return t
}

// Average returns the mean amount per delivery, and zero for an empty
// subset rather than a division error.
func Average(t Totals, count int) float64 {
	if count == 0 {
		return 0
	}
	return t.TotalAmount / float64(count)
}

// Bucket accumulates one (item, market) cell of the cross-tab.
type Bucket struct {
	Qty    int
	Amount float64
}

// CrossTabRow is one catalog item's totals, one bucket per market in
// catalog order.
type CrossTabRow struct {
	Item    Option
	Buckets []Bucket
}

// TotalQty sums the row's quantities across markets.
func (r CrossTabRow) TotalQty() int {
	qty := 0
	for _, b := range r.Buckets {
		qty += b.Qty
	}
	return qty
}

// TotalAmount sums the row's amounts across markets, rounded to cents.
func (r CrossTabRow) TotalAmount() float64 {
	amount := 0.0
	for _, b := range r.Buckets {
		amount += b.Amount
	}
	return Round2(amount)
}

// CrossTab is the per-item, per-market total table.
type CrossTab struct {
	Markets []Option
	Rows    []CrossTabRow
}

// CrossTabulate accumulates quantities and amounts per catalog item and
// market over the given deliveries. Lines whose item or market key is not
// in the catalog are skipped; malformed imports must not corrupt the table.
//
// Amounts are re-rounded to cents after every accumulation, not once at the
// end. Summing first and rounding once can differ by a cent on long runs,
// and the stored legacy data was accumulated incrementally.
func CrossTabulate(list []Delivery, c Catalog) CrossTab {
	itemIndex := make(map[string]int, len(c.Items))
	for i, it := range c.Items {
		itemIndex[it.Key] = i
	}
	marketIndex := make(map[string]int, len(c.Markets))
	for i, m := range c.Markets {
		marketIndex[m.Key] = i
	}

	rows := make([]CrossTabRow, len(c.Items))
	for i, it := range c.Items {
		rows[i] = CrossTabRow{Item: it, Buckets: make([]Bucket, len(c.Markets))}
	}

	for _, d := range list {
		for _, line := range d.Lines {
			i, ok := itemIndex[line.ItemKey]
			if !ok {
				continue
			}
			j, ok := marketIndex[line.MarketKey]
			if !ok {
				continue
			}
			b := &rows[i].Buckets[j]
			b.Qty += line.Qty
			b.Amount = Round2(b.Amount + line.LineTotal)
		}
	}
	return CrossTab{Markets: c.Markets, Rows: rows}
}
