package advanced

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// DebugFunc receives diagnostic annotations from the offset and
// decomposition engines: a point of interest, a 0xRRGGBB color and a short
// label. It exists purely for visualization; results are identical whether
// or not one is supplied, and a nil DebugFunc is always valid.
type DebugFunc func(p Vector, color uint32, label string)

// emit is the nil-safe call-through used inside the algorithms.
func (f DebugFunc) emit(p Vector, color uint32, label string) {
	if f != nil {
		f(p, color, label)
	}
}

// ConsoleDebug returns a DebugFunc that writes one colored line per
// annotation, for watching an algorithm walk a polygon from a terminal.
func ConsoleDebug(w io.Writer) DebugFunc {
	return func(p Vector, color uint32, label string) {
		fmt.Fprintf(w, "%s %v %s\n",
			aurora.Cyan(label),
			p,
			aurora.Gray(12, fmt.Sprintf("#%06x", color)),
		)
	}
}
