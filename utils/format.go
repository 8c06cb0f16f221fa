package utils

import "fmt"

var units = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with 1024-based units and two decimals,
// e.g. 1536 -> "1.50 KB". Values above the table cap stay in TB. Negative
// input clamps to zero so transient counter glitches never print garbage.
func FormatBytes(n float64) string {
	if n < 0 {
		n = 0
	}
	i := 0
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", n, units[i])
}

// FormatRate renders a bytes-per-second rate, e.g. "1.50 KB/s".
func FormatRate(n float64) string {
	return FormatBytes(n) + "/s"
}
