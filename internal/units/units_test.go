package units

import (
	"errors"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{86400, "24:00:00"},
		{442800, "123:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00:00", 0},
		{"00:01:30", 90},
		{"01:01:01", 3661},
		{"123:00:00", 442800},
		{"00:90:00", 5400}, // fields are not range-checked, only summed
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"123",
		"01:02",
		"01:02:03:04",
		"bad:value:string",
		"1:2:x",
		"01:02:3.5",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			if err == nil {
				t.Fatalf("ParseDuration(%q) should fail", input)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("ParseDuration(%q) error is %T, want *FormatError", input, err)
			}
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	seconds := []int{0, 1, 59, 60, 61, 3599, 3600, 3661, 86400, 359999, 360000, 12345678}

	for _, s := range seconds {
		got, err := ParseDuration(FormatDuration(s))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip of %d returned %d", s, got)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes float64
		want  string
	}{
		{0, "0.00 B"},
		{1, "1.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{2.5 * 1024 * 1024, "2.50 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1 << 40, "1.00 TB"},
		{5 << 40, "5.00 TB"},
		// TB is the top of the ladder; larger values keep the unit
		{1024 * (1 << 40), "1024.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatSize(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatSize(%v) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0.00 B", 0},
		{"512 B", 512},
		{"1.50 KB", 1536},
		{"2.50 MB", 2621440},
		{"1.00 GB", 1 << 30},
		{"1.00 TB", 1 << 40},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSize_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"1024",
		"1.50",
		"1.50 KB extra",
		"big KB",
		"1.50 XB",
		"1.50 kb", // unit symbols are case-sensitive
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			if err == nil {
				t.Fatalf("ParseSize(%q) should fail", input)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("ParseSize(%q) error is %T, want *FormatError", input, err)
			}
		})
	}
}

func TestSizeRoundTrip(t *testing.T) {
	// Values representable with two decimal digits at their display unit
	// round-trip within a byte.
	bytes := []int64{0, 1, 512, 1023, 1024, 1536, 1 << 20, 5 << 20, 1 << 30, 1 << 40}

	for _, b := range bytes {
		got, err := ParseSize(FormatSize(float64(b)))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", b, err)
		}
		diff := got - b
		if diff < -1 || diff > 1 {
			t.Errorf("round trip of %d returned %d", b, got)
		}
	}
}
