package deliveries

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/moshav/deliveries/date"
)

// CellKey addresses one (item, market) input cell of the form.
type CellKey struct {
	Item   string
	Market string
}

func (k CellKey) String() string { return k.Item + "/" + k.Market }

// CellInput is the raw text of one cell's quantity and price inputs.
// Empty text means zero, it is not an error.
type CellInput struct {
	Qty   string
	Price string
}

// Input is the full field state of the entry form. Cells absent from the
// map are blank; Date and Time default to "now" when empty; Driver and Car
// are catalog keys, empty meaning unassigned.
type Input struct {
	Date   string
	Time   string
	Driver string
	Car    string
	Cells  map[CellKey]CellInput
}

// Form builds delivery records from field state against a fixed catalog.
type Form struct {
	Catalog Catalog
	Now     Clock
}

// NewForm returns a form over the catalog, stamping times from the clock.
func NewForm(c Catalog, now Clock) *Form {
	if now == nil {
		now = SystemClock
	}
	return &Form{Catalog: c, Now: now}
}

// Build assembles one delivery from the input, numbered to follow the given
// list. The delivery covers every (item, market) cell of the catalog,
// including zero-quantity ones. The first cell whose quantity or price is
// non-empty but does not parse to a non-negative number fails the whole
// build; nothing is partially kept.
func (f *Form) Build(list []Delivery, in Input) (Delivery, error) {
	now := f.Now()

	day := date.Of(now)
	if strings.TrimSpace(in.Date) != "" {
		parsed, err := date.Parse(in.Date)
		if err != nil {
			return Delivery{}, err
		}
		day = parsed
	}

	timeSaved := now.Format(TimeFormat)
	if strings.TrimSpace(in.Time) != "" {
		timeSaved = in.Time
	}

	driver, err := f.selection(in.Driver, f.Catalog.Drivers, "driver")
	if err != nil {
		return Delivery{}, err
	}
	car, err := f.selection(in.Car, f.Catalog.Cars, "car")
	if err != nil {
		return Delivery{}, err
	}

	lines := make([]Line, 0, len(f.Catalog.Items)*len(f.Catalog.Markets))
	for _, item := range f.Catalog.Items {
		for _, mkt := range f.Catalog.Markets {
			cell := in.Cells[CellKey{Item: item.Key, Market: mkt.Key}]

			qty, err := parseQty(cell.Qty)
			if err != nil {
				return Delivery{}, fmt.Errorf("invalid qty for %s %s: %w", item.Label, mkt.Label, err)
			}
			price, err := parsePrice(cell.Price)
			if err != nil {
				return Delivery{}, fmt.Errorf("invalid price for %s %s: %w", item.Label, mkt.Label, err)
			}

			lines = append(lines, Line{
				ItemKey:     item.Key,
				ItemLabel:   item.Label,
				MarketKey:   mkt.Key,
				MarketLabel: mkt.Label,
				Qty:         qty,
				Price:       price,
			})
		}
	}

	d := Delivery{
		DeliveryNumber: NextNumber(list),
		Date:           day,
		TimeSaved:      timeSaved,
		DriverName:     driver,
		CarName:        car,
		Lines:          lines,
		CreatedAtISO:   now.UTC().Format(StampFormat),
	}
	return d.Recompute(), nil
}

// Save builds a delivery from the input and appends it to the store file.
// The append is all-or-nothing: a validation failure leaves the store
// untouched.
func (f *Form) Save(path string, in Input) (Delivery, error) {
	list, err := Load(path)
	if err != nil {
		return Delivery{}, err
	}
	d, err := f.Build(list, in)
	if err != nil {
		return Delivery{}, err
	}
	if err := Save(path, append(list, d)); err != nil {
		return Delivery{}, err
	}
	return d, nil
}

// selection resolves a driver or car key against its catalog. The empty key
// is the placeholder and yields a null name.
func (f *Form) selection(key string, options []Option, kind string) (*string, error) {
	if key == "" {
		return nil, nil
	}
	o, ok := find(options, key)
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, key)
	}
	name := o.Label
	return &name, nil
}

func parseQty(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	if qty < 0 {
		return 0, fmt.Errorf("%d is negative", qty)
	}
	return qty, nil
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("%v is negative", price)
	}
	return price, nil
}
