package histcodec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ygrebnov/histogram"
	"github.com/ygrebnov/histogram/internal/access"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2). Same histogram always produces identical
// bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Unknown fields are ignored for forward
// compatibility of the snapshot format.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("histcodec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("histcodec: CBOR decoder initialization failed: " + err.Error())
	}
}

// axisDef is the serialized configuration of one axis.
type axisDef struct {
	Kind       string    `cbor:"kind"`
	Bins       int       `cbor:"bins,omitempty"`
	Lower      float64   `cbor:"lower,omitempty"`
	Upper      float64   `cbor:"upper,omitempty"`
	Edges      []float64 `cbor:"edges,omitempty"`
	Categories []string  `cbor:"categories,omitempty"`
	Underflow  bool      `cbor:"underflow"`
	Overflow   bool      `cbor:"overflow"`
	Label      string    `cbor:"label,omitempty"`
}

// snapshot is the serialized form of a histogram. Cell arrays are
// columnar: one array per accumulator component, populated according to
// Storage.
type snapshot struct {
	Axes    []axisDef `cbor:"axes"`
	Storage string    `cbor:"storage"`

	Counts []int64   `cbor:"counts,omitempty"`
	Values []float64 `cbor:"values,omitempty"`

	SumW  []float64 `cbor:"sumw,omitempty"`
	SumW2 []float64 `cbor:"sumw2,omitempty"`

	MeanCount  []float64 `cbor:"mean_count,omitempty"`
	MeanValue  []float64 `cbor:"mean_value,omitempty"`
	MeanDeltas []float64 `cbor:"mean_deltas,omitempty"`
}

// Marshal encodes h as a deterministic CBOR snapshot.
func Marshal(h *histogram.Histogram) ([]byte, error) {
	snap, err := snapshotOf(h)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(snap)
}

// Unmarshal reconstructs a histogram from a CBOR snapshot produced by
// Marshal.
func Unmarshal(data []byte) (*histogram.Histogram, error) {
	var snap snapshot
	if err := decMode.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return restore(&snap)
}

func snapshotOf(h *histogram.Histogram) (*snapshot, error) {
	axesAny, storageAny := access.Raw(h)
	axes := axesAny.([]histogram.Axis)

	snap := &snapshot{Axes: make([]axisDef, len(axes))}
	for i, a := range axes {
		def, err := defOf(a)
		if err != nil {
			return nil, err
		}
		snap.Axes[i] = def
	}

	switch cells := access.RawCells(storageAny).(type) {
	case []int64:
		snap.Storage = histogram.KindCount.String()
		snap.Counts = append([]int64(nil), cells...)
	case []float64:
		snap.Storage = histogram.KindDouble.String()
		snap.Values = append([]float64(nil), cells...)
	case []histogram.WeightedCell:
		snap.Storage = histogram.KindWeighted.String()
		snap.SumW = make([]float64, len(cells))
		snap.SumW2 = make([]float64, len(cells))
		for i, c := range cells {
			snap.SumW[i] = c.SumOfWeights
			snap.SumW2[i] = c.SumOfWeightsSquared
		}
	case []histogram.MeanCell:
		snap.Storage = histogram.KindMean.String()
		snap.MeanCount = make([]float64, len(cells))
		snap.MeanValue = make([]float64, len(cells))
		snap.MeanDeltas = make([]float64, len(cells))
		for i, c := range cells {
			snap.MeanCount[i] = c.Count
			snap.MeanValue[i] = c.Mean
			snap.MeanDeltas[i] = c.SumOfDeltasSquared
		}
	default:
		return nil, fmt.Errorf("histcodec: unsupported storage type %T", storageAny)
	}
	return snap, nil
}

func defOf(a histogram.Axis) (axisDef, error) {
	def := axisDef{
		Underflow: a.HasUnderflow(),
		Overflow:  a.HasOverflow(),
		Label:     a.Label(),
	}
	switch ax := a.(type) {
	case *histogram.RegularAxis:
		def.Kind = "regular"
		def.Bins = ax.Extent()
		def.Lower = ax.Lower()
		def.Upper = ax.Upper()
	case *histogram.VariableAxis:
		def.Kind = "variable"
		def.Edges = ax.Edges()
	case *histogram.IntegerAxis:
		def.Kind = "integer"
		def.Lower = float64(ax.Lower())
		def.Upper = float64(ax.Upper())
	case *histogram.CategoryAxis:
		def.Kind = "category"
		def.Categories = ax.Categories()
	default:
		return axisDef{}, fmt.Errorf("histcodec: unsupported axis type %T", a)
	}
	return def, nil
}

func restore(snap *snapshot) (*histogram.Histogram, error) {
	axes := make([]histogram.Axis, len(snap.Axes))
	for i, def := range snap.Axes {
		a, err := axisOf(def)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i] = a
	}

	kind, err := histogram.ParseKind(snap.Storage)
	if err != nil {
		return nil, err
	}
	var cells any
	switch kind {
	case histogram.KindCount:
		cells = append([]int64(nil), snap.Counts...)
	case histogram.KindDouble:
		cells = append([]float64(nil), snap.Values...)
	case histogram.KindWeighted:
		if len(snap.SumW) != len(snap.SumW2) {
			return nil, fmt.Errorf("histcodec: weighted cell arrays disagree (%d, %d)",
				len(snap.SumW), len(snap.SumW2))
		}
		weighted := make([]histogram.WeightedCell, len(snap.SumW))
		for i := range weighted {
			weighted[i] = histogram.WeightedCell{
				SumOfWeights:        snap.SumW[i],
				SumOfWeightsSquared: snap.SumW2[i],
			}
		}
		cells = weighted
	case histogram.KindMean:
		if len(snap.MeanCount) != len(snap.MeanValue) || len(snap.MeanCount) != len(snap.MeanDeltas) {
			return nil, fmt.Errorf("histcodec: mean cell arrays disagree (%d, %d, %d)",
				len(snap.MeanCount), len(snap.MeanValue), len(snap.MeanDeltas))
		}
		mean := make([]histogram.MeanCell, len(snap.MeanCount))
		for i := range mean {
			mean[i] = histogram.MeanCell{
				Count:              snap.MeanCount[i],
				Mean:               snap.MeanValue[i],
				SumOfDeltasSquared: snap.MeanDeltas[i],
			}
		}
		cells = mean
	}

	storageAny, err := access.StorageFrom(cells)
	if err != nil {
		return nil, err
	}
	assembled, err := access.Assemble(axes, storageAny)
	if err != nil {
		return nil, fmt.Errorf("histcodec: %w", err)
	}
	return assembled.(*histogram.Histogram), nil
}

func axisOf(def axisDef) (histogram.Axis, error) {
	var opts []histogram.AxisOption
	if !def.Underflow {
		opts = append(opts, histogram.WithoutUnderflow())
	}
	if !def.Overflow {
		opts = append(opts, histogram.WithoutOverflow())
	}
	if def.Label != "" {
		opts = append(opts, histogram.WithLabel(def.Label))
	}
	switch def.Kind {
	case "regular":
		return histogram.NewRegularAxis(def.Bins, def.Lower, def.Upper, opts...)
	case "variable":
		return histogram.NewVariableAxis(def.Edges, opts...)
	case "integer":
		return histogram.NewIntegerAxis(int(def.Lower), int(def.Upper), opts...)
	case "category":
		return histogram.NewCategoryAxis(def.Categories, opts...)
	default:
		return nil, fmt.Errorf("unknown axis kind %q", def.Kind)
	}
}
