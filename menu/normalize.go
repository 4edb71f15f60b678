package menu

import (
	"strings"

	"golang.org/x/text/width"
)

// cleanCell normalizes one extracted cell: full-width characters are folded
// to their narrow forms (the engine often reads digits as full-width), and
// the vertical-bar artifact the engine produces from the grid's ruled lines
// is stripped.
func cleanCell(s string) string {
	s = width.Fold.String(s)
	return strings.ReplaceAll(s, "|", "")
}
