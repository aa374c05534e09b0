package dashsmart

import "testing"

func TestFormatValueCurrency(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{1_500_000, "$1.5M"},
		{2500, "$2.5K"},
		{42, "$42"},
		{999.4, "$999"},
		{1_000, "$1.0K"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.value, FormatCurrency); got != tc.want {
			t.Errorf("FormatValue(%v, currency) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatValuePercent(t *testing.T) {
	if got := FormatValue(12.5, FormatPercent); got != "12.5%" {
		t.Errorf("got %q, want 12.5%%", got)
	}
	if got := FormatValue(7, FormatPercent); got != "7.0%" {
		t.Errorf("got %q, want 7.0%%", got)
	}
}

func TestFormatValueNumber(t *testing.T) {
	if got := FormatValue(1234567, FormatNumber); got != "1,234,567" {
		t.Errorf("got %q, want 1,234,567", got)
	}
	if got := FormatValue(1234.5, FormatNumber); got != "1,234.5" {
		t.Errorf("got %q, want 1,234.5", got)
	}
}

func TestFormatValueDefault(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{1_500_000, "1.5M"},
		{2500, "2.5K"},
		{999, "999"},
		{1234567.0, "1.2M"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.value, FormatString); got != tc.want {
			t.Errorf("FormatValue(%v, string) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatValuePassesThroughNonNumeric(t *testing.T) {
	if got := FormatValue("North America", FormatCurrency); got != "North America" {
		t.Errorf("got %q, want the input unchanged", got)
	}
	// Numeric strings are display text, not numbers.
	if got := FormatValue("123", FormatCurrency); got != "123" {
		t.Errorf("got %q, want the input unchanged", got)
	}
}
