package histogram

import (
	"errors"
	"fmt"
	"testing"
)

func TestFillWeightDecoration(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "weight first", args: []any{Weight(2.5), 3.0}},
		{name: "weight last", args: []any{3.0, Weight(2.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := oneAxisHistogram(NewDoubleStorage(0))
			if err := h.Fill(tt.args...); err != nil {
				t.Fatalf("Fill: %v", err)
			}
			cell, err := h.At(3)
			if err != nil {
				t.Fatalf("At: %v", err)
			}
			if !cell.Equal(DoubleCell(2.5)) {
				t.Fatalf("unexpected cell: got %v want 2.5", cell)
			}
		})
	}
}

func TestFillWeightAndSampleAnyOrder(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "weight then value then sample", args: []any{Weight(2), 3.0, Sample(10.0)}},
		{name: "sample then value then weight", args: []any{Sample(10.0), 3.0, Weight(2)}},
		{name: "both leading", args: []any{Weight(2), Sample(10.0), 3.0}},
		{name: "both trailing", args: []any{3.0, Sample(10.0), Weight(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := oneAxisHistogram(NewMeanStorage(0))
			if err := h.Fill(tt.args...); err != nil {
				t.Fatalf("Fill: %v", err)
			}
			cell, err := h.At(3)
			if err != nil {
				t.Fatalf("At: %v", err)
			}
			want := MeanCell{Count: 2, Mean: 10}
			if !cell.Equal(want) {
				t.Fatalf("unexpected cell: got %v want %v", cell, want)
			}
		})
	}
}

func TestFillDuplicateDecorations(t *testing.T) {
	h := oneAxisHistogram(NewMeanStorage(0))
	if err := h.Fill(Weight(1), 3.0, Weight(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate weight, got %v", err)
	}
	if err := h.Fill(Sample(1.0), 3.0, Sample(2.0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate sample, got %v", err)
	}
}

func TestFillDecorationInMiddle(t *testing.T) {
	x := mustAxis(NewRegularAxis(10, 0, 10))
	y := mustAxis(NewRegularAxis(10, 0, 10))
	h := mustHistogram(New([]Axis{x, y}))
	// The marker is surrounded by values, so it is not stripped and
	// fails conversion against the second axis.
	if err := h.Fill(3.0, Weight(2), 4.0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFillWrongValueCount(t *testing.T) {
	h := oneAxisHistogram(nil)
	if err := h.Fill(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for no values, got %v", err)
	}
	if err := h.Fill(1.0, 2.0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for extra value, got %v", err)
	}
	if err := h.Fill(Weight(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for decoration only, got %v", err)
	}
}

func TestFillNonConvertibleValue(t *testing.T) {
	h := oneAxisHistogram(nil)
	before := h.Clone()
	if err := h.Fill("not a number"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !h.Equal(before) {
		t.Fatal("failed fill modified the storage")
	}
}

func TestFillFractionalWeightOnCountStorage(t *testing.T) {
	h := oneAxisHistogram(nil)
	if err := h.Fill(3.0, Weight(2)); err != nil {
		t.Fatalf("Fill with integral weight: %v", err)
	}
	if err := h.Fill(3.0, Weight(0.5)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for fractional weight, got %v", err)
	}
	cell, _ := h.At(3)
	if !cell.Equal(CountCell(2)) {
		t.Fatalf("rejected fill modified the cell: got %v want 2", cell)
	}
}

func TestFillSampleStorageRules(t *testing.T) {
	plain := oneAxisHistogram(nil)
	if err := plain.Fill(3.0, Sample(1.0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for sample on count storage, got %v", err)
	}
	if err := plain.Fill(3.0, Sample()); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty sample on count storage, got %v", err)
	}
	cell, _ := plain.At(3)
	if !cell.Equal(CountCell(0)) {
		t.Fatalf("rejected fill modified the cell: got %v want 0", cell)
	}

	mean := oneAxisHistogram(NewMeanStorage(0))
	if err := mean.Fill(3.0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing sample, got %v", err)
	}
	if err := mean.Fill(3.0, Sample()); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty sample, got %v", err)
	}
	if err := mean.Fill(3.0, Sample(1.0, 2.0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for multi-value sample, got %v", err)
	}
}

func TestFillSilentDiscardIsNotAnError(t *testing.T) {
	axis := mustAxis(NewRegularAxis(10, 0, 10, WithoutUnderflow()))
	h := mustHistogram(New([]Axis{axis}))
	if err := h.Fill(-1.0); err != nil {
		t.Fatalf("discarded fill returned error: %v", err)
	}
	if err := h.Fill(42.0); err != nil { // overflow still enabled
		t.Fatalf("Fill: %v", err)
	}
	cell, err := h.At(10)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if !cell.Equal(CountCell(1)) {
		t.Fatalf("unexpected overflow cell: got %v want 1", cell)
	}
}

// pairAxis bins the element-wise sum of a two-value tuple onto unit
// bins, exercising the TupleAxis fill path.
type pairAxis struct {
	bins int
}

func (a pairAxis) Extent() int        { return a.bins }
func (a pairAxis) HasUnderflow() bool { return true }
func (a pairAxis) HasOverflow() bool  { return true }
func (a pairAxis) Label() string      { return "" }

func (a pairAxis) Index(value any) (int, error) {
	return 0, fmt.Errorf("%w: pair axis requires two values", ErrInvalidArgument)
}

func (a pairAxis) IndexTuple(values []any) (int, error) {
	if len(values) != 2 {
		return 0, fmt.Errorf("%w: got %d values for a pair axis", ErrInvalidArgument, len(values))
	}
	sum := 0.0
	for _, v := range values {
		f, ok := toFloat64(v)
		if !ok {
			return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidArgument, v)
		}
		sum += f
	}
	switch {
	case sum < 0:
		return -1, nil
	case sum >= float64(a.bins):
		return a.bins, nil
	default:
		return int(sum), nil
	}
}

func (a pairAxis) EqualTo(other Axis) bool {
	o, ok := other.(pairAxis)
	return ok && o.bins == a.bins
}

func TestFillTupleAxis(t *testing.T) {
	h := mustHistogram(New([]Axis{pairAxis{bins: 5}}))

	if err := h.Fill(1.0, 2.0); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := h.Fill(Weight(3), 1.5, 1.5); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	cell, err := h.At(3)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if !cell.Equal(CountCell(4)) {
		t.Fatalf("unexpected cell: got %v want 4", cell)
	}

	if err := h.Fill(-1.0, -2.0); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	under, _ := h.At(-1)
	if !under.Equal(CountCell(1)) {
		t.Fatalf("unexpected underflow cell: got %v want 1", under)
	}

	if err := h.Fill(1.0, 2.0, 3.0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for three values, got %v", err)
	}
}
