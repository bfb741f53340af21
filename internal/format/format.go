package format

import (
	"fmt"
	"strings"
)

var units = []string{"B", "K", "M", "G", "T", "P"}

// Size renders a byte count with 1024-based units and one decimal place,
// e.g. 1048576 -> "1.0M". Zero renders as plain "0B".
func Size(n int64) string {
	if n == 0 {
		return "0B"
	}
	v := float64(n)
	for _, u := range units {
		if v < 1024 {
			return fmt.Sprintf("%.1f%s", v, u)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fE", v)
}

// Bar renders a proportional bar of the given width for frac in [0,1].
func Bar(frac float64, width int) string {
	if width < 3 {
		width = 3
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return strings.Repeat("@", filled) + strings.Repeat("-", width-filled)
}

// TruncatePath shortens a path to maxLen, keeping the tail visible.
func TruncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
