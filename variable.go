package histogram

import (
	"fmt"
	"math"
	"sort"
)

// VariableAxis splits a domain into bins delimited by an explicit,
// strictly increasing edge sequence. Bin i covers [edges[i], edges[i+1]).
type VariableAxis struct {
	edges []float64
	cfg   axisConfig
}

// NewVariableAxis returns an axis over len(edges)-1 bins. At least two
// strictly increasing, finite edges are required.
func NewVariableAxis(edges []float64, opts ...AxisOption) (*VariableAxis, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: variable axis needs at least two edges, got %d", ErrInvalidArgument, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: variable axis edges must be finite, got %v at position %d", ErrInvalidArgument, e, i)
		}
		if i > 0 && edges[i-1] >= e {
			return nil, fmt.Errorf("%w: variable axis edges must be strictly increasing, got %v after %v", ErrInvalidArgument, e, edges[i-1])
		}
	}
	owned := make([]float64, len(edges))
	copy(owned, edges)
	return &VariableAxis{edges: owned, cfg: applyAxisOptions(opts)}, nil
}

func (a *VariableAxis) Extent() int        { return len(a.edges) - 1 }
func (a *VariableAxis) HasUnderflow() bool { return a.cfg.underflow }
func (a *VariableAxis) HasOverflow() bool  { return a.cfg.overflow }
func (a *VariableAxis) Label() string      { return a.cfg.label }

// Edges returns a copy of the bin edge sequence.
func (a *VariableAxis) Edges() []float64 {
	out := make([]float64, len(a.edges))
	copy(out, a.edges)
	return out
}

// Index maps a numeric value to its bin by binary search. NaN counts as
// overflow.
func (a *VariableAxis) Index(value any) (int, error) {
	v, ok := toFloat64(value)
	if !ok {
		return 0, errNotConvertible(value, "variable")
	}
	if math.IsNaN(v) || v >= a.edges[len(a.edges)-1] {
		return a.Extent(), nil
	}
	if v < a.edges[0] {
		return -1, nil
	}
	// Smallest j with edges[j] >= v; v exactly on an edge starts bin j,
	// otherwise it falls into the bin left of j.
	j := sort.SearchFloat64s(a.edges, v)
	if a.edges[j] == v {
		return j, nil
	}
	return j - 1, nil
}

func (a *VariableAxis) EqualTo(other Axis) bool {
	o, ok := other.(*VariableAxis)
	if !ok || len(a.edges) != len(o.edges) ||
		a.cfg.underflow != o.cfg.underflow || a.cfg.overflow != o.cfg.overflow {
		return false
	}
	for i := range a.edges {
		if a.edges[i] != o.edges[i] {
			return false
		}
	}
	return true
}
