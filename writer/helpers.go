package writer

import (
	"strconv"
	"strings"
)

// formatFloat renders v at fixed 2-decimal precision, then strips trailing
// zeros and a dangling decimal point: 12.50 -> "12.5", 12.00 -> "12",
// 0.00 -> "0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
