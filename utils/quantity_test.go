package utils

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in        string
		wantValue float64
		wantUnit  string
	}{
		{"25 kg", 25, "kg"},
		{"25kg", 25, "kg"},
		{"3.5 kg", 3.5, "kg"},
		{"10 trays", 10, "trays"},
		{"  7 boxes  ", 7, "boxes"},
		{"42", 42, ""},
	}
	for _, tt := range tests {
		value, unit, err := ParseQuantity(tt.in)
		if err != nil {
			t.Errorf("ParseQuantity(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if value != tt.wantValue || unit != tt.wantUnit {
			t.Errorf("ParseQuantity(%q) = %v, %q, want %v, %q", tt.in, value, unit, tt.wantValue, tt.wantUnit)
		}
	}
}

func TestParseQuantityRejects(t *testing.T) {
	for _, in := range []string{"", "kg", "abc", "0 kg", "-5 kg", "0", "-1"} {
		if _, _, err := ParseQuantity(in); err == nil {
			t.Errorf("ParseQuantity(%q) succeeded, want error", in)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{15, "kg", "15 kg"},
		{12.5, "kg", "12.5 kg"},
		{0, "kg", "0 kg"},
		{3, "", "3"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatQuantity(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}
