// Package layout formats strings into fixed-width columns.
package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultLabelWidth is the metric label column width used when no max column width is configured.
const DefaultLabelWidth = 15

// truncationMarker prefixes text that was cut to fit its column.
const truncationMarker = "... "

// Pad returns count spaces, or "" when count <= 0.
func Pad(count int) string {
	return PadWith(count, ' ')
}

// PadWith returns count repetitions of fill, or "" when count <= 0.
func PadWith(count int, fill rune) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(string(fill), count)
}

// Fit formats v to occupy exactly width columns.
//
// Short text is padded with spaces, on the left when rightAlign is set.
// Long text keeps its trailing characters behind a "... " marker.
// Widths below the marker's length keep only the trailing characters.
// A width <= 0 suppresses the field entirely.
func Fit(v interface{}, width int, rightAlign bool) string {
	if width <= 0 {
		return ""
	}
	s := fmt.Sprint(v)
	length := utf8.RuneCountInString(s)
	if length <= width {
		fill := Pad(width - length)
		if rightAlign {
			return fill + s
		}
		return s + fill
	}

	runes := []rune(s)
	markerLen := utf8.RuneCountInString(truncationMarker)
	if width < markerLen {
		return string(runes[length-width:])
	}
	return truncationMarker + string(runes[length-width+markerLen:])
}

// LabelWidth returns the label column width for a configured max column width.
// Non-positive values select DefaultLabelWidth.
func LabelWidth(maxCols int) int {
	if maxCols > 0 {
		return maxCols
	}
	return DefaultLabelWidth
}
