package deliveries

// Option is one selectable catalog entry: a machine key and a display label.
// For drivers and cars an empty key stands for "unassigned".
type Option struct {
	Key   string
	Label string
}

// Unassigned is the placeholder option offered by driver and car catalogs.
var Unassigned = Option{Key: "", Label: "—"}

// Catalog is the fixed configuration the form operates on. It is built once
// and injected into controllers; saved deliveries keep denormalized copies
// of the labels, so later catalog edits never rewrite history.
type Catalog struct {
	Items   []Option
	Markets []Option
	Drivers []Option // first entry is Unassigned
	Cars    []Option // first entry is Unassigned
}

// DefaultCatalog returns the built-in catalog: four items sold on two
// markets of the same customer, plus the known drivers and cars.
func DefaultCatalog() Catalog {
	return Catalog{
		Items: []Option{
			{Key: "tard", Label: "Tard"},
			{Key: "alat", Label: "Alat"},
			{Key: "kubiza", Label: "Kubiza"},
			{Key: "shomer", Label: "Shomer"},
		},
		Markets: []Option{
			{Key: "gamshi", Label: "Gamshi"},
			{Key: "hasbi", Label: "Hasbi"},
		},
		Drivers: []Option{
			Unassigned,
			{Key: "wael", Label: "Wael"},
			{Key: "ibrahim", Label: "Ibrahim"},
			{Key: "khandushi", Label: "Khandushi"},
			{Key: "nabih", Label: "Nabih"},
			{Key: "samer", Label: "Samer"},
			{Key: "khitam", Label: "Khitam"},
			{Key: "asil", Label: "Asil"},
			{Key: "maysam", Label: "Maysam"},
			{Key: "maruma", Label: "Maruma"},
			{Key: "taltula", Label: "Taltula"},
		},
		Cars: []Option{
			Unassigned,
			{Key: "old jazz", Label: "old jazz"},
			{Key: "new jazz", Label: "new jazz"},
			{Key: "jeeb", Label: "jeeb"},
		},
	}
}

// Item returns the item option with this key.
func (c Catalog) Item(key string) (Option, bool) { return find(c.Items, key) }

// Market returns the market option with this key.
func (c Catalog) Market(key string) (Option, bool) { return find(c.Markets, key) }

// Driver returns the driver option with this key. The empty key resolves to
// the unassigned placeholder.
func (c Catalog) Driver(key string) (Option, bool) { return find(c.Drivers, key) }

// Car returns the car option with this key. The empty key resolves to the
// unassigned placeholder.
func (c Catalog) Car(key string) (Option, bool) { return find(c.Cars, key) }

func find(options []Option, key string) (Option, bool) {
	for _, o := range options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}
