// Package timeutil provides time formatting utilities for FFmpeg commands.
package timeutil

import (
	"fmt"
	"strconv"
)

// FormatSeconds converts seconds to HH:MM:SS.MS format for FFmpeg.
//
// This format is used for human-readable offsets in logs and CLI output.
// Supports fractional seconds for precise timing.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

// FormatOffset renders an offset in plain seconds, the way it is passed to
// -ss and embedded in derived file names.
//
// The shortest representation that round-trips is used, so whole seconds
// carry no decimal point.
//
// Example:
//
//	FormatOffset(2)     // "2"
//	FormatOffset(12.5)  // "12.5"
//	FormatOffset(0)     // "0"
func FormatOffset(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
