package deliveries

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedClock pins "now" to 2025-08-29 14:05 UTC.
func fixedClock() time.Time {
	return time.Date(2025, time.August, 29, 14, 5, 0, 0, time.UTC)
}

func TestForm_Build_SingleCellScenario(t *testing.T) {
	form := NewForm(DefaultCatalog(), fixedClock)

	d, err := form.Build(nil, Input{
		Cells: map[CellKey]CellInput{
			{Item: "tard", Market: "gamshi"}: {Qty: "3", Price: "2.50"},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if d.DeliveryNumber != 1 {
		t.Errorf("DeliveryNumber = %d, want 1", d.DeliveryNumber)
	}
	if d.TotalQty != 3 {
		t.Errorf("TotalQty = %d, want 3", d.TotalQty)
	}
	if d.TotalAmount != 7.50 {
		t.Errorf("TotalAmount = %v, want 7.5", d.TotalAmount)
	}
	if len(d.Lines) != 8 {
		t.Fatalf("lines = %d, want 8 (4 items × 2 markets)", len(d.Lines))
	}
	zero := 0
	for _, l := range d.Lines {
		if l.ItemKey == "tard" && l.MarketKey == "gamshi" {
			if l.Qty != 3 || l.Price != 2.5 || l.LineTotal != 7.5 {
				t.Errorf("filled line = %+v, want qty 3 price 2.5 total 7.5", l)
			}
			continue
		}
		zero++
		if l.Qty != 0 || l.Price != 0 || l.LineTotal != 0 {
			t.Errorf("blank line = %+v, want all zero", l)
		}
	}
	if zero != 7 {
		t.Errorf("zero lines = %d, want 7", zero)
	}
}

func TestForm_Build_Defaults(t *testing.T) {
	form := NewForm(DefaultCatalog(), fixedClock)

	d, err := form.Build(nil, Input{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := d.Date.String(); got != "2025-08-29" {
		t.Errorf("default date = %s, want 2025-08-29", got)
	}
	if d.TimeSaved != "14:05" {
		t.Errorf("default time = %q, want 14:05", d.TimeSaved)
	}
	if d.DriverName != nil || d.CarName != nil {
		t.Errorf("driver/car = %v/%v, want null/null", d.DriverName, d.CarName)
	}
	if d.CreatedAtISO != "2025-08-29T14:05:00.000Z" {
		t.Errorf("CreatedAtISO = %q, want 2025-08-29T14:05:00.000Z", d.CreatedAtISO)
	}
}

func TestForm_Build_ExplicitFields(t *testing.T) {
	form := NewForm(DefaultCatalog(), fixedClock)

	d, err := form.Build([]Delivery{{DeliveryNumber: 4}}, Input{
		Date:   "2025-08-15",
		Time:   "07:30",
		Driver: "wael",
		Car:    "jeeb",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.DeliveryNumber != 5 {
		t.Errorf("DeliveryNumber = %d, want 5", d.DeliveryNumber)
	}
	if d.Date.String() != "2025-08-15" || d.TimeSaved != "07:30" {
		t.Errorf("date/time = %s %s, want 2025-08-15 07:30", d.Date, d.TimeSaved)
	}
	if d.DriverName == nil || *d.DriverName != "Wael" {
		t.Errorf("DriverName = %v, want Wael", d.DriverName)
	}
	if d.CarName == nil || *d.CarName != "jeeb" {
		t.Errorf("CarName = %v, want jeeb", d.CarName)
	}
}

func TestForm_Build_ValidationFailures(t *testing.T) {
	form := NewForm(DefaultCatalog(), fixedClock)

	testCases := []struct {
		name    string
		in      Input
		wantErr string
	}{
		{
			name: "unparsable qty",
			in: Input{Cells: map[CellKey]CellInput{
				{Item: "tard", Market: "gamshi"}: {Qty: "three"},
			}},
			wantErr: "invalid qty for Tard Gamshi",
		},
		{
			name: "negative qty",
			in: Input{Cells: map[CellKey]CellInput{
				{Item: "alat", Market: "hasbi"}: {Qty: "-1"},
			}},
			wantErr: "invalid qty for Alat Hasbi",
		},
		{
			name: "unparsable price",
			in: Input{Cells: map[CellKey]CellInput{
				{Item: "kubiza", Market: "gamshi"}: {Qty: "1", Price: "abc"},
			}},
			wantErr: "invalid price for Kubiza Gamshi",
		},
		{
			name: "negative price",
			in: Input{Cells: map[CellKey]CellInput{
				{Item: "shomer", Market: "hasbi"}: {Price: "-0.5"},
			}},
			wantErr: "invalid price for Shomer Hasbi",
		},
		{
			name:    "unknown driver",
			in:      Input{Driver: "nobody"},
			wantErr: `unknown driver "nobody"`,
		},
		{
			name:    "unknown car",
			in:      Input{Car: "tractor"},
			wantErr: `unknown car "tractor"`,
		},
		{
			name:    "bad date",
			in:      Input{Date: "29/08/2025"},
			wantErr: "invalid date",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := form.Build(nil, tc.in)
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Build error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestForm_Save_AppendsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deliveries.json")
	form := NewForm(DefaultCatalog(), fixedClock)

	first, err := form.Save(path, Input{
		Cells: map[CellKey]CellInput{{Item: "tard", Market: "gamshi"}: {Qty: "3", Price: "2.50"}},
	})
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if first.DeliveryNumber != 1 {
		t.Errorf("first DeliveryNumber = %d, want 1", first.DeliveryNumber)
	}

	second, err := form.Save(path, Input{})
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if second.DeliveryNumber != 2 {
		t.Errorf("second DeliveryNumber = %d, want 2", second.DeliveryNumber)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("store has %d deliveries, want 2", len(list))
	}
}

func TestForm_Save_ValidationLeavesStoreUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deliveries.json")
	form := NewForm(DefaultCatalog(), fixedClock)

	if _, err := form.Save(path, Input{}); err != nil {
		t.Fatal(err)
	}

	_, err := form.Save(path, Input{
		Cells: map[CellKey]CellInput{{Item: "tard", Market: "gamshi"}: {Qty: "-3"}},
	})
	if err == nil {
		t.Fatal("Save with a negative qty succeeded, want error")
	}

	list, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("store has %d deliveries after a failed save, want 1", len(list))
	}
}
