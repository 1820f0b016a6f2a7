package histogram

import "fmt"

// Axis maps values of one dimension onto bin indices. Implementations
// must be immutable after construction.
//
// Index returns a bin index in [0, Extent()) for an in-range value, -1
// for a value below the axis domain, and Extent() for a value above it.
// The flow indices are returned regardless of whether the corresponding
// flow bin is enabled; the caller decides whether a flow index maps to a
// reserved bin or discards the fill. A value that is not convertible to
// the axis's value type is an error matching ErrInvalidArgument.
//
// This interface is designed to be minimal and stable. Optional axis
// capabilities (see TupleAxis) are separate interfaces rather than an
// expansion of this surface.
type Axis interface {
	// Extent returns the number of in-range bins. Always >= 1.
	Extent() int

	// HasUnderflow reports whether the axis reserves a bin for values
	// below its domain.
	HasUnderflow() bool

	// HasOverflow reports whether the axis reserves a bin for values
	// above its domain.
	HasOverflow() bool

	// Index maps a value to a bin index per the rules above.
	Index(value any) (int, error)

	// Label returns the advisory axis label. Labels are metadata only
	// and do not participate in configuration equality.
	Label() string

	// EqualTo reports whether other has the same configuration: same
	// kind, same binning parameters, same flow flags.
	EqualTo(other Axis) bool
}

// TupleAxis is an optional capability for axes that consume several
// values per fill. When a histogram has rank 1 and its only axis
// implements TupleAxis, Fill forwards all positional values to the axis
// as one tuple instead of requiring exactly one value.
type TupleAxis interface {
	Axis

	// IndexTuple maps a tuple of values to a bin index, with the same
	// return conventions as Index.
	IndexTuple(values []any) (int, error)
}

// axisConfig carries the options shared by all axis kinds.
type axisConfig struct {
	underflow bool
	overflow  bool
	label     string
}

func defaultAxisConfig() axisConfig {
	return axisConfig{underflow: true, overflow: true}
}

// AxisOption configures an axis at construction time.
type AxisOption func(*axisConfig)

// WithoutUnderflow disables the underflow bin. Fills below the axis
// domain are then silently discarded.
func WithoutUnderflow() AxisOption {
	return func(c *axisConfig) { c.underflow = false }
}

// WithoutOverflow disables the overflow bin. Fills above the axis domain
// are then silently discarded.
func WithoutOverflow() AxisOption {
	return func(c *axisConfig) { c.overflow = false }
}

// WithoutFlow disables both flow bins.
func WithoutFlow() AxisOption {
	return func(c *axisConfig) { c.underflow, c.overflow = false, false }
}

// WithLabel attaches an advisory label to the axis (e.g., "pT [GeV]").
// Labels are ignored by EqualTo.
func WithLabel(label string) AxisOption {
	return func(c *axisConfig) { c.label = label }
}

func applyAxisOptions(opts []AxisOption) axisConfig {
	cfg := defaultAxisConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// totalExtent returns the per-axis span size: in-range bins plus enabled
// flow bins.
func totalExtent(a Axis) int {
	n := a.Extent()
	if a.HasUnderflow() {
		n++
	}
	if a.HasOverflow() {
		n++
	}
	return n
}

// bincount returns the flat storage size for a list of axes: the product
// of per-axis spans.
func bincount(axes []Axis) int {
	n := 1
	for _, a := range axes {
		n *= totalExtent(a)
	}
	return n
}

func axesEqual(a, b []Axis) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].EqualTo(b[i]) {
			return false
		}
	}
	return true
}

// toFloat64 converts the numeric types accepted by the numeric axis
// kinds. It deliberately excludes strings and booleans; those are not
// values of a numeric axis.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func errNotConvertible(value any, axis string) error {
	return fmt.Errorf("%w: value %v (%T) is not convertible to the value type of %s axis",
		ErrInvalidArgument, value, value, axis)
}
