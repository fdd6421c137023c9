// Package util holds small formatting helpers shared by the upload paths.
package util

import (
	"fmt"
	"path"
	"strings"
)

// DefaultFilename replaces names that reduce to nothing.
const DefaultFilename = "file"

var sizeUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	size := float64(n) / 1024
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// SafeFilename reduces an uploaded name to its base name with spaces
// replaced, so it can be embedded in an object key. Windows separators are
// honoured.
func SafeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	if base == "" || base == "." || base == "/" || base == ".." {
		return DefaultFilename
	}

	return base
}
