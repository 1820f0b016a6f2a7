package histogram

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a structurally wrong call: wrong number of
// fill or access arguments, a value that is not convertible to the value
// type expected by its axis, an axis accessor index outside [0, rank),
// or an operation the target storage kind does not support.
var ErrInvalidArgument = errors.New("histogram: invalid argument")

// ErrOutOfRange reports an At index outside the valid span of its axis.
// It is distinct from an out-of-domain fill value, which is never an
// error: when the relevant flow bin is disabled, such a fill is a defined
// silent discard.
var ErrOutOfRange = errors.New("histogram: index out of range")

// ErrAxesMismatch reports an attempt to combine two histograms whose axes
// configurations differ. It matches ErrInvalidArgument under errors.Is.
var ErrAxesMismatch = fmt.Errorf("%w: axes of histograms differ", ErrInvalidArgument)
