package feed

import "testing"

func TestNormalizeRequestDate(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2024-01-05", "20240105", true},
		{"20240105", "20240105", true},
		{"2024-1-5", "", false},
		{"", "", false},
		{"2024/01/05", "", false},
		{"202401055", "", false},
		{"January 5", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeRequestDate(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("NormalizeRequestDate(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalizeRequestDateRoundTrip(t *testing.T) {
	for _, in := range []string{"2024-01-05", "20240105", "1999-12-31"} {
		compact, ok := NormalizeRequestDate(in)
		if !ok {
			t.Fatalf("NormalizeRequestDate(%q) rejected valid input", in)
		}
		display := ToDisplayDate(&compact)
		if display == nil {
			t.Fatalf("ToDisplayDate(%q) = nil", compact)
		}
		again, ok := NormalizeRequestDate(*display)
		if !ok || again != compact {
			t.Errorf("round trip of %q: got %q, want %q", in, again, compact)
		}
	}
}

func TestToDisplayDate(t *testing.T) {
	if got := ToDisplayDate(strPtr("20240105")); got == nil || *got != "2024-01-05" {
		t.Errorf("ToDisplayDate(20240105) = %v, want 2024-01-05", got)
	}
	if got := ToDisplayDate(nil); got != nil {
		t.Errorf("ToDisplayDate(nil) = %v, want nil", got)
	}
	// Already-dashed input is the wrong shape and must be rejected.
	if got := ToDisplayDate(strPtr("2024-01-05")); got != nil {
		t.Errorf("ToDisplayDate(2024-01-05) = %v, want nil", got)
	}
	if got := ToDisplayDate(strPtr("")); got != nil {
		t.Errorf("ToDisplayDate(\"\") = %v, want nil", got)
	}
}

func TestToDisplayDateTime(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want *string
	}{
		{"date and time", strPtr("2024-03-10 14:25:33"), strPtr("2024-03-10 14:25")},
		{"short time kept", strPtr("2024-03-10 14:25"), strPtr("2024-03-10 14:25")},
		{"date only", strPtr("2024-03-10"), strPtr("2024-03-10")},
		{"nil", nil, nil},
		{"empty", strPtr(""), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDisplayDateTime(tc.in)
			switch {
			case got == nil && tc.want == nil:
			case got == nil || tc.want == nil || *got != *tc.want:
				t.Errorf("ToDisplayDateTime = %v, want %v", deref(got), deref(tc.want))
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}
