package export

import (
	"strings"

	"github.com/qrink/qrink"
)

// encodeText renders the module matrix as a character grid. Styling does
// not survive the trip to text; only the on/off state of each module does.
// charsPerModule is 2 for roughly square cells in a monospace font, 1 for
// a compact grid.
func encodeText(r *qrink.Rendered, charsPerModule int) []byte {
	on := strings.Repeat("█", charsPerModule)
	off := strings.Repeat(" ", charsPerModule)

	m := r.Matrix()
	n := m.Size()
	var out strings.Builder
	out.Grow(n * (n*charsPerModule*3 + 1))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if m.At(x, y) {
				out.WriteString(on)
			} else {
				out.WriteString(off)
			}
		}
		out.WriteByte('\n')
	}
	return []byte(out.String())
}
