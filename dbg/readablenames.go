package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for debug dumps. Pointer strings and raw coordinates are
// hard to tell apart when a graph dump scrolls by; a memoized pet name per
// object makes the structure legible. The memo is never pruned, which is
// fine for debugging sessions and nothing else.

var (
	memo   map[interface{}]string
	points map[[2]int64]string
)

func init() {
	memo = make(map[interface{}]string)
	points = make(map[[2]int64]string)
	// Names are handed out in order of demand, so keep them
	// nondeterministic as a reminder that they don't survive between
	// runs.
	petname.NonDeterministicMode()
}

func fresh() string {
	return strings.Title(petname.Adjective()) + strings.Title(petname.Name())
}

// Name returns a stable readable name for the given object, typically a
// pointer. Nil objects are all named the same.
func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fresh()
	memo[obj] = r
	return r
}

// Point returns a stable readable name for a location in the plane.
// Coordinates within a thousandth of each other share a name, so points
// that differ only by float noise read as the same place.
func Point(x, y float64) string {
	key := [2]int64{int64(x * 1000), int64(y * 1000)}
	if r, ok := points[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s(%.3f, %.3f)", fresh(), x, y)
	points[key] = r
	return r
}
