package date

import "fmt"

// Range represents an inclusive range of dates. A zero From or To leaves
// that side of the range open.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both bounds are set and 'from' is
// after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsOpen reports whether both bounds are open, in which case the range
// contains every date.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether date is included in the range (boundaries included).
// An open bound never excludes a date.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// String formats the range with "-" standing for an open bound.
func (r Range) String() string {
	return fmt.Sprintf("%s to %s", label(r.From, "-"), label(r.To, "-"))
}

// Identifier computes a filename-friendly identifier for the range.
func (r Range) Identifier() string {
	return fmt.Sprintf("%s_%s", label(r.From, "from"), label(r.To, "to"))
}

func label(d Date, open string) string {
	if d.IsZero() {
		return open
	}
	return d.String()
}
