package youtube

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PT1H23M45S", "1h 23m 45s"},
		{"PT3M33S", "3m 33s"},
		{"PT45S", "45s"},
		{"PT2H", "2h"},
		{"PT1H5S", "1h 5s"},
		{"PT0S", "0s"},
		{"PT", "0s"},
		{"", "Unknown"},
		{"P1DT2H", "Unknown"},
		{"garbage", "Unknown"},
		{"PT10M0S", "10m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatDuration(tt.input); got != tt.expected {
				t.Errorf("FormatDuration(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatViews(t *testing.T) {
	tests := []struct {
		count    uint64
		expected string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.0K"},
		{5000, "5.0K"},
		{12345, "12.3K"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
		{2750000000, "2750.0M"},
	}

	for _, tt := range tests {
		if got := FormatViews(tt.count); got != tt.expected {
			t.Errorf("FormatViews(%d) = %q, want %q", tt.count, got, tt.expected)
		}
	}
}

func TestFormattersArePure(t *testing.T) {
	first := FormatDuration("PT1H23M45S") + FormatViews(1500000)
	FormatDuration("garbage")
	FormatViews(7)
	second := FormatDuration("PT1H23M45S") + FormatViews(1500000)
	if first != second {
		t.Errorf("formatter output changed between calls: %q vs %q", first, second)
	}
}
