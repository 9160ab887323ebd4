package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// sizeUnits is the fixed unit ladder for file sizes. The index of a unit
// is its power-of-1024 exponent.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatError reports input that violates the required shape of a
// formatted duration or size string.
//
// FormatError is a deterministic validation failure: it is returned
// synchronously, never retried, and the conversion produces no partial
// result alongside it.
type FormatError struct {
	// Input is the string that failed to parse.
	Input string

	// Reason describes which part of the required shape was violated.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Input, e.Reason)
}

// FormatDuration converts a duration in whole seconds to "HH:MM:SS".
//
// Each field is zero-padded to at least two digits. Hours are unbounded
// above 99, so large inputs render with wider hour fields:
//
//	FormatDuration(0)      // "00:00:00"
//	FormatDuration(3661)   // "01:01:01"
//	FormatDuration(442800) // "123:00:00"
//
// Caller contract: seconds must be >= 0. Negative input is undefined.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParseDuration converts a "HH:MM:SS" string back to whole seconds.
//
// The string must contain exactly two ':' separators and three base-10
// integer fields; anything else returns a *FormatError.
//
// For every non-negative s, ParseDuration(FormatDuration(s)) == s.
func ParseDuration(formatted string) (int, error) {
	fields := strings.Split(formatted, ":")
	if len(fields) != 3 {
		return 0, &FormatError{Input: formatted, Reason: "expected HH:MM:SS"}
	}

	var parts [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, &FormatError{Input: formatted, Reason: fmt.Sprintf("field %q is not an integer", field)}
		}
		parts[i] = n
	}

	return parts[0]*3600 + parts[1]*60 + parts[2], nil
}

// FormatSize converts a byte count to a human-readable string like
// "2.50 MB".
//
// The value is divided by 1024 through the unit ladder B, KB, MB, GB, TB
// while it remains >= 1024 and a larger unit exists, then rendered with
// exactly two decimal digits:
//
//	FormatSize(0)             // "0.00 B"
//	FormatSize(1536)          // "1.50 KB"
//	FormatSize(1 << 40)       // "1.00 TB"
//
// The two-decimal display truncates precision, so the round trip through
// ParseSize is only exact for values representable with two decimal
// digits at the chosen unit. Callers that need the exact byte count must
// keep it separately.
func FormatSize(bytes float64) string {
	unitIndex := 0
	for bytes >= 1024 && unitIndex < len(sizeUnits)-1 {
		bytes /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.2f %s", bytes, sizeUnits[unitIndex])
}

// ParseSize converts a formatted size string like "2.50 MB" back to a
// byte count, rounding to the nearest integer.
//
// The string must split on whitespace into exactly two tokens: a
// floating-point magnitude and one of the unit symbols B, KB, MB, GB, TB.
// Anything else returns a *FormatError.
func ParseSize(formatted string) (int64, error) {
	tokens := strings.Fields(formatted)
	if len(tokens) != 2 {
		return 0, &FormatError{Input: formatted, Reason: "expected \"<value> <unit>\""}
	}

	magnitude, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, &FormatError{Input: formatted, Reason: fmt.Sprintf("magnitude %q is not numeric", tokens[0])}
	}

	exponent := -1
	for i, unit := range sizeUnits {
		if tokens[1] == unit {
			exponent = i
			break
		}
	}
	if exponent < 0 {
		return 0, &FormatError{Input: formatted, Reason: fmt.Sprintf("unrecognized unit %q", tokens[1])}
	}

	return int64(math.Round(magnitude * math.Pow(1024, float64(exponent)))), nil
}
