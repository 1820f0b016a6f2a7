package histogram

import "fmt"

// WeightValue marks one fill argument as the fill weight. Construct it
// with Weight.
type WeightValue struct {
	value float64
}

// Weight marks w as the weight of a fill. It may be passed as the first
// or last Fill argument, in any order with a Sample decoration.
func Weight(w float64) WeightValue { return WeightValue{value: w} }

// SampleValue marks fill arguments as sample values for storages with
// sample-accumulating cells. Construct it with Sample.
type SampleValue struct {
	values []float64
}

// Sample marks values as the sample of a fill. Like Weight, it may be
// passed at either end of the Fill argument list. Only storages with
// sample-accumulating cells (KindMean) consume samples.
func Sample(values ...float64) SampleValue { return SampleValue{values: values} }

// fillDecorations is the result of stripping Weight/Sample markers from
// the ends of a Fill argument list.
type fillDecorations struct {
	weight     float64
	samples    []float64
	haveWeight bool
	haveSample bool
}

// strip consumes arg when it is a Weight or Sample marker. It reports
// whether arg was a marker; a second marker of the same kind is an
// error.
func (d *fillDecorations) strip(arg any) (bool, error) {
	switch m := arg.(type) {
	case WeightValue:
		if d.haveWeight {
			return false, fmt.Errorf("%w: duplicate weight decoration", ErrInvalidArgument)
		}
		d.weight, d.haveWeight = m.value, true
		return true, nil
	case SampleValue:
		if d.haveSample {
			return false, fmt.Errorf("%w: duplicate sample decoration", ErrInvalidArgument)
		}
		d.samples, d.haveSample = m.values, true
		return true, nil
	default:
		return false, nil
	}
}

// Fill records one data tuple. The arguments are interpreted
// positionally against the axes, after stripping an optional Weight and
// an optional Sample decoration from either end of the list. The
// remaining values must number exactly Rank() — unless the histogram has
// rank 1 and its only axis accepts multi-value tuples, in which case all
// remaining values are forwarded to that axis as one tuple.
//
// A wrong value count, a duplicate decoration, or a value that is not
// convertible to its axis's value type is an error matching
// ErrInvalidArgument, and no cell is modified. An out-of-domain value
// whose flow bin is disabled is not an error: the fill is a silent
// no-op. Otherwise the target cell accumulates the weight (default 1)
// and any sample values.
func (h *Histogram) Fill(args ...any) error {
	// Two-pass decoration strip: recognized markers peel off the front,
	// then off the back. A marker stuck in the middle stays in rest and
	// fails value conversion below.
	dec := fillDecorations{weight: 1}
	rest := args
	for len(rest) > 0 {
		ok, err := dec.strip(rest[0])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		rest = rest[1:]
	}
	for len(rest) > 0 {
		ok, err := dec.strip(rest[len(rest)-1])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		rest = rest[:len(rest)-1]
	}

	// Sample() with no values yields a nil slice, indistinguishable
	// downstream from no decoration at all; reject it here so a sample
	// decoration on a sample-less storage always errors.
	if dec.haveSample && len(dec.samples) == 0 {
		return fmt.Errorf("%w: sample decoration carries no values", ErrInvalidArgument)
	}

	indices := make([]int, len(h.axes))
	if tuple, ok := h.axes[0].(TupleAxis); ok && len(h.axes) == 1 {
		idx, err := tuple.IndexTuple(rest)
		if err != nil {
			return err
		}
		indices[0] = idx
	} else {
		if len(rest) != len(h.axes) {
			return fmt.Errorf("%w: got %d values for %d axes", ErrInvalidArgument, len(rest), len(h.axes))
		}
		for i, a := range h.axes {
			idx, err := a.Index(rest[i])
			if err != nil {
				return err
			}
			indices[i] = idx
		}
	}

	offset, ok := linearize(h.axes, indices)
	if !ok {
		// Out-of-domain value with its flow bin disabled: defined
		// silent discard, not an error.
		return nil
	}
	return h.storage.Accumulate(offset, dec.weight, dec.samples)
}
