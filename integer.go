package histogram

import (
	"fmt"
	"math"
)

// IntegerAxis provides one bin per integer in [lower, upper).
type IntegerAxis struct {
	lower, upper int
	cfg          axisConfig
}

// NewIntegerAxis returns an axis with unit bins over [lower, upper).
func NewIntegerAxis(lower, upper int, opts ...AxisOption) (*IntegerAxis, error) {
	if lower >= upper {
		return nil, fmt.Errorf("%w: integer axis needs lower < upper, got [%d, %d)", ErrInvalidArgument, lower, upper)
	}
	return &IntegerAxis{lower: lower, upper: upper, cfg: applyAxisOptions(opts)}, nil
}

func (a *IntegerAxis) Extent() int        { return a.upper - a.lower }
func (a *IntegerAxis) HasUnderflow() bool { return a.cfg.underflow }
func (a *IntegerAxis) HasOverflow() bool  { return a.cfg.overflow }
func (a *IntegerAxis) Label() string      { return a.cfg.label }

// Lower returns the inclusive lower bound of the axis domain.
func (a *IntegerAxis) Lower() int { return a.lower }

// Upper returns the exclusive upper bound of the axis domain.
func (a *IntegerAxis) Upper() int { return a.upper }

// Index maps a numeric value to its bin. Non-integral values are
// truncated towards negative infinity; NaN counts as overflow.
func (a *IntegerAxis) Index(value any) (int, error) {
	f, ok := toFloat64(value)
	if !ok {
		return 0, errNotConvertible(value, "integer")
	}
	if math.IsNaN(f) || f >= float64(a.upper) {
		return a.Extent(), nil
	}
	if f < float64(a.lower) {
		return -1, nil
	}
	return int(math.Floor(f)) - a.lower, nil
}

func (a *IntegerAxis) EqualTo(other Axis) bool {
	o, ok := other.(*IntegerAxis)
	return ok && a.lower == o.lower && a.upper == o.upper &&
		a.cfg.underflow == o.cfg.underflow && a.cfg.overflow == o.cfg.overflow
}
