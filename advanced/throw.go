package advanced

import "github.com/pkg/errors"

// Threading error returns through the boolean, offset and decomposition
// loops would add a ton of complexity for conditions that are internal
// invariant violations, not user errors. Instead we panic with a
// GeometryError, and the public API recovers to convert it back to an
// error. Invariant violations almost always mean a malformed (typically
// self-intersecting) input slipped past the preconditions.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandlePanicRecover converts a recovered GeometryError back into an
// error. Any other panic value is re-raised untouched.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
