package histogram

import (
	"fmt"
	"math"
)

// RegularAxis splits the half-open interval [lower, upper) into bins of
// equal width.
type RegularAxis struct {
	bins         int
	lower, upper float64
	cfg          axisConfig
}

// NewRegularAxis returns an axis with bins uniform bins over
// [lower, upper). bins must be >= 1 and lower < upper; both bounds must
// be finite.
func NewRegularAxis(bins int, lower, upper float64, opts ...AxisOption) (*RegularAxis, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: regular axis needs at least one bin, got %d", ErrInvalidArgument, bins)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return nil, fmt.Errorf("%w: regular axis bounds must be finite, got [%v, %v)", ErrInvalidArgument, lower, upper)
	}
	if lower >= upper {
		return nil, fmt.Errorf("%w: regular axis needs lower < upper, got [%v, %v)", ErrInvalidArgument, lower, upper)
	}
	return &RegularAxis{bins: bins, lower: lower, upper: upper, cfg: applyAxisOptions(opts)}, nil
}

func (a *RegularAxis) Extent() int        { return a.bins }
func (a *RegularAxis) HasUnderflow() bool { return a.cfg.underflow }
func (a *RegularAxis) HasOverflow() bool  { return a.cfg.overflow }
func (a *RegularAxis) Label() string      { return a.cfg.label }

// Lower returns the inclusive lower bound of the axis domain.
func (a *RegularAxis) Lower() float64 { return a.lower }

// Upper returns the exclusive upper bound of the axis domain.
func (a *RegularAxis) Upper() float64 { return a.upper }

// Index maps a numeric value to its bin. NaN counts as overflow.
func (a *RegularAxis) Index(value any) (int, error) {
	v, ok := toFloat64(value)
	if !ok {
		return 0, errNotConvertible(value, "regular")
	}
	if math.IsNaN(v) || v >= a.upper {
		return a.bins, nil
	}
	if v < a.lower {
		return -1, nil
	}
	i := int(float64(a.bins) * (v - a.lower) / (a.upper - a.lower))
	// Guard against floating-point rounding pushing a value just below
	// upper into the overflow slot.
	if i >= a.bins {
		i = a.bins - 1
	}
	return i, nil
}

func (a *RegularAxis) EqualTo(other Axis) bool {
	o, ok := other.(*RegularAxis)
	return ok && a.bins == o.bins && a.lower == o.lower && a.upper == o.upper &&
		a.cfg.underflow == o.cfg.underflow && a.cfg.overflow == o.cfg.overflow
}
