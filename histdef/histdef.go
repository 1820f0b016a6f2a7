// Package histdef constructs histograms from declarative YAML
// definitions. Definitions name the axes and the storage kind:
//
//	storage: weighted
//	axes:
//	  - kind: regular
//	    bins: 25
//	    lower: 0
//	    upper: 100
//	    label: "pT [GeV]"
//	  - kind: category
//	    categories: [electron, muon, tau]
//	    overflow: false
//
// The typical flow is ReadFile or Parse for YAML bytes, or Build when
// the Definition is assembled programmatically. Flow bins default to
// enabled, matching the axis constructors.
package histdef

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/histogram"
)

// Definition is the top-level YAML document.
type Definition struct {
	// Storage names the storage kind: count (the default), double,
	// weighted, or mean.
	Storage string `yaml:"storage"`

	// Axes lists the axis definitions in axis order. At least one is
	// required.
	Axes []AxisDef `yaml:"axes"`
}

// AxisDef describes one axis. Kind selects which of the remaining
// fields apply: regular uses bins/lower/upper, variable uses edges,
// integer uses lower/upper, category uses categories.
type AxisDef struct {
	Kind       string    `yaml:"kind"`
	Bins       int       `yaml:"bins"`
	Lower      *float64  `yaml:"lower"`
	Upper      *float64  `yaml:"upper"`
	Edges      []float64 `yaml:"edges"`
	Categories []string  `yaml:"categories"`

	// Underflow and Overflow default to true when omitted.
	Underflow *bool  `yaml:"underflow"`
	Overflow  *bool  `yaml:"overflow"`
	Label     string `yaml:"label"`
}

// Parse unmarshals a YAML definition and builds the histogram it
// describes.
func Parse(data []byte) (*histogram.Histogram, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	return Build(def)
}

// ReadFile reads a YAML definition file from disk and builds the
// histogram it describes.
func ReadFile(path string) (*histogram.Histogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	h, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Build constructs the histogram described by def.
func Build(def Definition) (*histogram.Histogram, error) {
	if len(def.Axes) == 0 {
		return nil, fmt.Errorf("%w: definition has no axes", histogram.ErrInvalidArgument)
	}
	axes := make([]histogram.Axis, len(def.Axes))
	for i, ad := range def.Axes {
		a, err := buildAxis(ad)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i] = a
	}

	kind := histogram.KindCount
	if def.Storage != "" {
		var err error
		kind, err = histogram.ParseKind(def.Storage)
		if err != nil {
			return nil, err
		}
	}
	return histogram.New(axes, histogram.WithStorage(histogram.NewStorage(kind, 0)))
}

func buildAxis(def AxisDef) (histogram.Axis, error) {
	var opts []histogram.AxisOption
	if def.Underflow != nil && !*def.Underflow {
		opts = append(opts, histogram.WithoutUnderflow())
	}
	if def.Overflow != nil && !*def.Overflow {
		opts = append(opts, histogram.WithoutOverflow())
	}
	if def.Label != "" {
		opts = append(opts, histogram.WithLabel(def.Label))
	}

	switch def.Kind {
	case "regular":
		if def.Lower == nil || def.Upper == nil {
			return nil, fmt.Errorf("%w: regular axis requires lower and upper", histogram.ErrInvalidArgument)
		}
		return histogram.NewRegularAxis(def.Bins, *def.Lower, *def.Upper, opts...)
	case "variable":
		return histogram.NewVariableAxis(def.Edges, opts...)
	case "integer":
		if def.Lower == nil || def.Upper == nil {
			return nil, fmt.Errorf("%w: integer axis requires lower and upper", histogram.ErrInvalidArgument)
		}
		lower, upper := *def.Lower, *def.Upper
		if lower != math.Trunc(lower) || upper != math.Trunc(upper) {
			return nil, fmt.Errorf("%w: integer axis bounds must be integral, got [%v, %v)",
				histogram.ErrInvalidArgument, lower, upper)
		}
		return histogram.NewIntegerAxis(int(lower), int(upper), opts...)
	case "category":
		return histogram.NewCategoryAxis(def.Categories, opts...)
	case "":
		return nil, fmt.Errorf("%w: axis kind is required", histogram.ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: unknown axis kind %q", histogram.ErrInvalidArgument, def.Kind)
	}
}
