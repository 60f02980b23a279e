package date

import "testing"

func TestRange_Contains(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string // empty means open bound
		date     string
		want     bool
	}{
		{name: "inside", from: "2025-08-01", to: "2025-08-31", date: "2025-08-15", want: true},
		{name: "on lower bound", from: "2025-08-01", to: "2025-08-31", date: "2025-08-01", want: true},
		{name: "on upper bound", from: "2025-08-01", to: "2025-08-31", date: "2025-08-31", want: true},
		{name: "before", from: "2025-08-01", to: "2025-08-31", date: "2025-07-31", want: false},
		{name: "after", from: "2025-08-01", to: "2025-08-31", date: "2025-09-01", want: false},
		{name: "open lower", from: "", to: "2025-08-31", date: "1999-01-01", want: true},
		{name: "open upper", from: "2025-08-01", to: "", date: "2999-01-01", want: true},
		{name: "fully open", from: "", to: "", date: "2025-08-15", want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r Range
			if tc.from != "" {
				r.From = MustParse(tc.from)
			}
			if tc.to != "" {
				r.To = MustParse(tc.to)
			}
			if got := r.Contains(MustParse(tc.date)); got != tc.want {
				t.Errorf("Range(%s).Contains(%s) = %v, want %v", r, tc.date, got, tc.want)
			}
		})
	}
}

func TestNewRange_SwapsBounds(t *testing.T) {
	r := NewRange(MustParse("2025-08-31"), MustParse("2025-08-01"))
	if r.From.After(r.To) {
		t.Errorf("NewRange did not swap bounds: %s", r)
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		r    Range
		want string
	}{
		{NewRange(MustParse("2025-08-01"), MustParse("2025-08-31")), "2025-08-01_2025-08-31"},
		{Range{To: MustParse("2025-08-31")}, "from_2025-08-31"},
		{Range{}, "from_to"},
	}
	for _, tc := range testCases {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier() = %q, want %q", got, tc.want)
		}
	}
}
