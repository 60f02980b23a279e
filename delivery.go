package deliveries

import (
	"math"
	"time"

	"github.com/moshav/deliveries/date"
)

// Clock supplies the current time. Injected so that "now" defaults and the
// generation stamps on documents are fixed in tests.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time { return time.Now() }

// TimeFormat is the 24-hour wall time format stored in TimeSaved.
const TimeFormat = "15:04"

// StampFormat is the capture timestamp format, millisecond UTC.
const StampFormat = "2006-01-02T15:04:05.000Z"

// Line is one (item, market) cell of a delivery. Item and market labels are
// denormalized copies of the catalog at save time.
type Line struct {
	ItemKey     string  `json:"itemKey"`
	ItemLabel   string  `json:"itemLabel"`
	MarketKey   string  `json:"marketKey"`
	MarketLabel string  `json:"marketLabel"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"lineTotal"`
}

// Delivery is one persisted transaction record, covering every catalog item
// across every market for a given date, time, driver and car. A delivery is
// written once; the store never edits one in place.
type Delivery struct {
	DeliveryNumber int       `json:"deliveryNumber"`
	Date           date.Date `json:"date"`
	TimeSaved      string    `json:"timeSaved"`
	DriverName     *string   `json:"driverName"`
	CarName        *string   `json:"carName"`
	Lines          []Line    `json:"lines"`
	TotalQty       int       `json:"totalQty"`
	TotalAmount    float64   `json:"totalAmount"`
	CreatedAtISO   string    `json:"createdAtISO"`
}

// Driver returns the driver display name, with the unassigned placeholder
// for a null driver.
func (d Delivery) Driver() string { return orPlaceholder(d.DriverName) }

// Car returns the car display name, with the unassigned placeholder for a
// null car.
func (d Delivery) Car() string { return orPlaceholder(d.CarName) }

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Unassigned.Label
	}
	return *s
}

// epsilon matches the binary float64 machine epsilon added before rounding
// to cents. The bias compensates representation error (0.145*100 is
// 14.499...); the stored data was produced with it, so it must stay.
const epsilon = 2.220446049250313e-16

// Round2 rounds a monetary value to two decimal places with a tiny positive
// bias. Every derived amount in the store (line totals, bucket totals,
// grand totals) goes through this exact function.
func Round2(x float64) float64 {
	return math.Round((x+epsilon)*100) / 100
}

// Recompute returns a copy of the delivery with every derived field
// (line totals, total quantity, total amount) recomputed from quantities
// and prices. Derived fields are never trusted from input.
func (d Delivery) Recompute() Delivery {
	lines := make([]Line, len(d.Lines))
	copy(lines, d.Lines)
	totalQty := 0
	totalAmount := 0.0
	for i := range lines {
		lines[i].LineTotal = Round2(float64(lines[i].Qty) * lines[i].Price)
		totalQty += lines[i].Qty
		totalAmount += lines[i].LineTotal
	}
	d.Lines = lines
	d.TotalQty = totalQty
	d.TotalAmount = Round2(totalAmount)
	return d
}
