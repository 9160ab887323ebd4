// Package units converts between numeric and human-readable
// representations of durations and file sizes.
//
// # Durations
//
// Durations are non-negative whole seconds with a canonical "HH:MM:SS"
// display form:
//
//	units.FormatDuration(3661)        // "01:01:01"
//	units.ParseDuration("01:01:01")   // 3661
//
// Formatting then parsing an integer-second duration always returns the
// same integer.
//
// # Sizes
//
// Sizes are byte counts with a canonical "<value> <unit>" display form,
// where the unit is the largest of B, KB, MB, GB, TB keeping the scaled
// value below 1024:
//
//	units.FormatSize(1536)       // "1.50 KB"
//	units.ParseSize("1.50 KB")   // 1536
//
// The size round trip is lossy for arbitrary inputs because the display
// keeps only two decimal digits.
//
// All functions are pure; malformed input is reported with *FormatError.
package units
