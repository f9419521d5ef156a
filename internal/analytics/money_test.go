package analytics

import "testing"

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "£0"},
		{in: 999.4, want: "£999"},
		{in: 999.5, want: "£1,000"},
		{in: 12500, want: "£12,500"},
		{in: 1234567.89, want: "£1,234,568"},
		{in: -2500, want: "-£2,500"},
		{in: -0.2, want: "£0"},
	}
	for _, tt := range tests {
		if got := FormatGBP(tt.in); got != tt.want {
			t.Errorf("FormatGBP(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := RoundPounds(2499.5); got != 2500 {
		t.Errorf("RoundPounds(2499.5) = %v, want 2500", got)
	}
	if got := RoundPounds(-10.5); got != -11 {
		t.Errorf("RoundPounds(-10.5) = %v, want -11", got)
	}
	if got := RoundPence(1.005); got != 1.01 {
		t.Errorf("RoundPence(1.005) = %v, want 1.01", got)
	}
}
