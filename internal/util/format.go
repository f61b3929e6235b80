// Package util holds small formatting helpers shared by the server logs and
// the storefront CLI.
package util

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const units = "KMGTPE"
	div, exp := int64(unit), 0
	for rest := n / unit; rest >= unit && exp < len(units)-1; rest /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), units[exp])
}

// Truncate shortens s to at most limit runes, ending with "..." when cut.
// Whitespace runs are collapsed first.
func Truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 3 {
		return string([]rune(s)[:limit])
	}

	return string([]rune(s)[:limit-3]) + "..."
}
