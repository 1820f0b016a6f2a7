package histogram

import "fmt"

// Kind identifies a storage/cell kind. The order of the numeric kinds is
// their promotion rank: combining two histograms of different numeric
// kinds promotes to the higher-ranked one. KindMean is outside the
// numeric ladder and combines only with itself.
type Kind int

const (
	// KindCount stores plain int64 counts. The default.
	KindCount Kind = iota

	// KindDouble stores float64 counts; supports fractional weights and
	// scalar scaling.
	KindDouble

	// KindWeighted stores the sum of weights and the sum of squared
	// weights per cell, for variance-aware weighted fills.
	KindWeighted

	// KindMean stores profile cells: count, mean, and the sum of squared
	// deltas of one sample value per fill.
	KindMean
)

// String returns the kind's name as used by the definition and snapshot
// formats.
func (k Kind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindDouble:
		return "double"
	case KindWeighted:
		return "weighted"
	case KindMean:
		return "mean"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind parses a kind from its string name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "count":
		return KindCount, nil
	case "double":
		return KindDouble, nil
	case "weighted":
		return KindWeighted, nil
	case "mean":
		return KindMean, nil
	default:
		return 0, fmt.Errorf("%w: unknown storage kind %q", ErrInvalidArgument, name)
	}
}

// commonKind returns the kind capable of holding cells of both operands,
// per the promotion ladder count < double < weighted. Mean combines only
// with mean.
func commonKind(a, b Kind) (Kind, error) {
	if a == KindMean || b == KindMean {
		if a == b {
			return KindMean, nil
		}
		return 0, fmt.Errorf("%w: mean storage combines only with mean storage, got %v and %v",
			ErrInvalidArgument, a, b)
	}
	if b > a {
		return b, nil
	}
	return a, nil
}

// Cell is one accumulator value read from a storage. The concrete types
// are CountCell, DoubleCell, WeightedCell, and MeanCell.
type Cell interface {
	// Value returns the cell's primary value: the count, the sum of
	// weights, or the mean for profile cells.
	Value() float64

	// Equal reports exact equality of the underlying representations.
	// The plain count kinds compare numerically across kinds; a weighted
	// cell equals a plain cell only when both of its sums equal the
	// plain value (true exactly when every fill had unit weight); mean
	// cells compare only with mean cells.
	Equal(other Cell) bool
}

// CountCell is a plain integral count.
type CountCell int64

func (c CountCell) Value() float64 { return float64(c) }

func (c CountCell) Equal(other Cell) bool {
	switch o := other.(type) {
	case CountCell:
		return c == o
	case DoubleCell:
		return float64(c) == float64(o)
	case WeightedCell:
		return o.SumOfWeights == float64(c) && o.SumOfWeightsSquared == float64(c)
	default:
		return false
	}
}

// DoubleCell is a real-valued count.
type DoubleCell float64

func (c DoubleCell) Value() float64 { return float64(c) }

func (c DoubleCell) Equal(other Cell) bool {
	switch o := other.(type) {
	case CountCell:
		return float64(c) == float64(o)
	case DoubleCell:
		return c == o
	case WeightedCell:
		return o.SumOfWeights == float64(c) && o.SumOfWeightsSquared == float64(c)
	default:
		return false
	}
}

// WeightedCell tracks the sum of weights and the sum of squared weights.
// The squared sum gives the variance of the cell value under Poisson
// statistics.
type WeightedCell struct {
	SumOfWeights        float64
	SumOfWeightsSquared float64
}

func (c WeightedCell) Value() float64 { return c.SumOfWeights }

// Variance returns the variance estimate of the cell value.
func (c WeightedCell) Variance() float64 { return c.SumOfWeightsSquared }

func (c WeightedCell) Equal(other Cell) bool {
	switch o := other.(type) {
	case CountCell:
		return o.Equal(c)
	case DoubleCell:
		return o.Equal(c)
	case WeightedCell:
		return c == o
	default:
		return false
	}
}

// MeanCell accumulates the mean of sample values, weighted by fill
// weights, together with the sum of squared deltas for variance.
type MeanCell struct {
	Count              float64
	Mean               float64
	SumOfDeltasSquared float64
}

func (c MeanCell) Value() float64 { return c.Mean }

// Variance returns the sample variance of the accumulated values, or 0
// when fewer than two units of weight have been seen.
func (c MeanCell) Variance() float64 {
	if c.Count > 1 {
		return c.SumOfDeltasSquared / (c.Count - 1)
	}
	return 0
}

func (c MeanCell) Equal(other Cell) bool {
	o, ok := other.(MeanCell)
	return ok && c == o
}

// Storage is a flat, resizable container of cells backing a histogram.
// Implementations must keep iteration order equal to ascending offset
// order, which is the axis-major layout produced by linearization.
//
// Storages carry no locking; concurrent mutation of one storage is the
// caller's problem, exactly as for the owning histogram.
type Storage interface {
	// Kind identifies the cell kind held by this storage.
	Kind() Kind

	// Size returns the number of cells.
	Size() int

	// Reset discards all contents and reinitializes exactly n cells to
	// the default value.
	Reset(n int)

	// At returns the cell at the given offset. The offset must be in
	// [0, Size()); the histogram facade validates it.
	At(offset int) Cell

	// Accumulate applies one fill to the cell at offset: the weight
	// scales the increment and samples (if any) feed the cell's sample
	// accumulator. Kinds that do not consume samples reject a non-nil
	// samples slice; KindMean requires exactly one sample value. A
	// rejected accumulation mutates nothing.
	Accumulate(offset int, weight float64, samples []float64) error

	// Add performs pairwise cell addition. The other storage must have
	// the same size and a kind absorbable into this one (same kind, or a
	// lower-ranked numeric kind).
	Add(other Storage) error

	// Scale multiplies every cell by x. Not available for KindCount.
	Scale(x float64) error

	// Equal reports pairwise cell equality with another storage of the
	// same size, using the cross-kind cell equality rules.
	Equal(other Storage) bool

	// Clone returns an independent deep copy.
	Clone() Storage
}

// NewStorage returns an empty storage of the given kind with n default
// cells.
func NewStorage(kind Kind, n int) Storage {
	switch kind {
	case KindDouble:
		return NewDoubleStorage(n)
	case KindWeighted:
		return NewWeightedStorage(n)
	case KindMean:
		return NewMeanStorage(n)
	default:
		return NewCountStorage(n)
	}
}

// convertStorage returns a copy of s widened to the given kind. Widening
// follows the promotion ladder; narrowing and numeric↔mean conversions
// are errors.
func convertStorage(s Storage, kind Kind) (Storage, error) {
	if s.Kind() == kind {
		return s.Clone(), nil
	}
	if _, err := commonKind(s.Kind(), kind); err != nil {
		return nil, err
	}
	if kind < s.Kind() {
		return nil, fmt.Errorf("%w: cannot narrow %v storage to %v", ErrInvalidArgument, s.Kind(), kind)
	}
	out := NewStorage(kind, s.Size())
	// Absorbing a lower-ranked storage into a fresh higher-ranked one is
	// exactly pairwise addition onto default cells.
	if err := out.Add(s); err != nil {
		return nil, err
	}
	return out, nil
}

func storageEqual(a, b Storage) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if !a.At(i).Equal(b.At(i)) {
			return false
		}
	}
	return true
}

func errStorageSize(a, b Storage) error {
	return fmt.Errorf("%w: storage sizes differ (%d != %d)", ErrInvalidArgument, a.Size(), b.Size())
}

func errStorageAdd(dst, src Kind) error {
	return fmt.Errorf("%w: cannot add %v storage into %v storage", ErrInvalidArgument, src, dst)
}
