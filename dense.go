package histogram

import (
	"fmt"
	"math"
)

// CountStorage is the default storage: one int64 count per cell. Weights
// must be integral; use DoubleStorage or WeightedStorage for fractional
// weights.
type CountStorage struct {
	cells []int64
}

// NewCountStorage returns a count storage with n zero cells.
func NewCountStorage(n int) *CountStorage {
	return &CountStorage{cells: make([]int64, n)}
}

func (s *CountStorage) Kind() Kind      { return KindCount }
func (s *CountStorage) Size() int       { return len(s.cells) }
func (s *CountStorage) Reset(n int)     { s.cells = make([]int64, n) }
func (s *CountStorage) At(offset int) Cell {
	return CountCell(s.cells[offset])
}

func (s *CountStorage) Accumulate(offset int, weight float64, samples []float64) error {
	if samples != nil {
		return fmt.Errorf("%w: %v storage does not accept samples", ErrInvalidArgument, s.Kind())
	}
	if weight != math.Trunc(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v storage requires an integral weight, got %v", ErrInvalidArgument, s.Kind(), weight)
	}
	s.cells[offset] += int64(weight)
	return nil
}

func (s *CountStorage) Add(other Storage) error {
	if other.Size() != s.Size() {
		return errStorageSize(s, other)
	}
	o, ok := other.(*CountStorage)
	if !ok {
		return errStorageAdd(s.Kind(), other.Kind())
	}
	for i, c := range o.cells {
		s.cells[i] += c
	}
	return nil
}

func (s *CountStorage) Scale(x float64) error {
	return fmt.Errorf("%w: %v storage does not support scalar multiplication", ErrInvalidArgument, s.Kind())
}

func (s *CountStorage) Equal(other Storage) bool { return storageEqual(s, other) }

func (s *CountStorage) Clone() Storage {
	out := NewCountStorage(len(s.cells))
	copy(out.cells, s.cells)
	return out
}

// DoubleStorage stores one float64 count per cell and accepts arbitrary
// weights.
type DoubleStorage struct {
	cells []float64
}

// NewDoubleStorage returns a double storage with n zero cells.
func NewDoubleStorage(n int) *DoubleStorage {
	return &DoubleStorage{cells: make([]float64, n)}
}

func (s *DoubleStorage) Kind() Kind  { return KindDouble }
func (s *DoubleStorage) Size() int   { return len(s.cells) }
func (s *DoubleStorage) Reset(n int) { s.cells = make([]float64, n) }
func (s *DoubleStorage) At(offset int) Cell {
	return DoubleCell(s.cells[offset])
}

func (s *DoubleStorage) Accumulate(offset int, weight float64, samples []float64) error {
	if samples != nil {
		return fmt.Errorf("%w: %v storage does not accept samples", ErrInvalidArgument, s.Kind())
	}
	s.cells[offset] += weight
	return nil
}

func (s *DoubleStorage) Add(other Storage) error {
	if other.Size() != s.Size() {
		return errStorageSize(s, other)
	}
	switch o := other.(type) {
	case *DoubleStorage:
		for i, c := range o.cells {
			s.cells[i] += c
		}
	case *CountStorage:
		for i, c := range o.cells {
			s.cells[i] += float64(c)
		}
	default:
		return errStorageAdd(s.Kind(), other.Kind())
	}
	return nil
}

func (s *DoubleStorage) Scale(x float64) error {
	for i := range s.cells {
		s.cells[i] *= x
	}
	return nil
}

func (s *DoubleStorage) Equal(other Storage) bool { return storageEqual(s, other) }

func (s *DoubleStorage) Clone() Storage {
	out := NewDoubleStorage(len(s.cells))
	copy(out.cells, s.cells)
	return out
}

// WeightedStorage tracks per cell the sum of weights and the sum of
// squared weights.
type WeightedStorage struct {
	cells []WeightedCell
}

// NewWeightedStorage returns a weighted storage with n default cells.
func NewWeightedStorage(n int) *WeightedStorage {
	return &WeightedStorage{cells: make([]WeightedCell, n)}
}

func (s *WeightedStorage) Kind() Kind  { return KindWeighted }
func (s *WeightedStorage) Size() int   { return len(s.cells) }
func (s *WeightedStorage) Reset(n int) { s.cells = make([]WeightedCell, n) }
func (s *WeightedStorage) At(offset int) Cell {
	return s.cells[offset]
}

func (s *WeightedStorage) Accumulate(offset int, weight float64, samples []float64) error {
	if samples != nil {
		return fmt.Errorf("%w: %v storage does not accept samples", ErrInvalidArgument, s.Kind())
	}
	s.cells[offset].SumOfWeights += weight
	s.cells[offset].SumOfWeightsSquared += weight * weight
	return nil
}

func (s *WeightedStorage) Add(other Storage) error {
	if other.Size() != s.Size() {
		return errStorageSize(s, other)
	}
	switch o := other.(type) {
	case *WeightedStorage:
		for i, c := range o.cells {
			s.cells[i].SumOfWeights += c.SumOfWeights
			s.cells[i].SumOfWeightsSquared += c.SumOfWeightsSquared
		}
	case *DoubleStorage:
		// A plain count of v is a weighted cell (v, v): v unit weights.
		for i, c := range o.cells {
			s.cells[i].SumOfWeights += c
			s.cells[i].SumOfWeightsSquared += c
		}
	case *CountStorage:
		for i, c := range o.cells {
			s.cells[i].SumOfWeights += float64(c)
			s.cells[i].SumOfWeightsSquared += float64(c)
		}
	default:
		return errStorageAdd(s.Kind(), other.Kind())
	}
	return nil
}

func (s *WeightedStorage) Scale(x float64) error {
	for i := range s.cells {
		s.cells[i].SumOfWeights *= x
		s.cells[i].SumOfWeightsSquared *= x * x
	}
	return nil
}

func (s *WeightedStorage) Equal(other Storage) bool { return storageEqual(s, other) }

func (s *WeightedStorage) Clone() Storage {
	out := NewWeightedStorage(len(s.cells))
	copy(out.cells, s.cells)
	return out
}

// MeanStorage stores profile cells accumulating the weighted mean of one
// sample value per fill.
type MeanStorage struct {
	cells []MeanCell
}

// NewMeanStorage returns a mean storage with n default cells.
func NewMeanStorage(n int) *MeanStorage {
	return &MeanStorage{cells: make([]MeanCell, n)}
}

func (s *MeanStorage) Kind() Kind  { return KindMean }
func (s *MeanStorage) Size() int   { return len(s.cells) }
func (s *MeanStorage) Reset(n int) { s.cells = make([]MeanCell, n) }
func (s *MeanStorage) At(offset int) Cell {
	return s.cells[offset]
}

func (s *MeanStorage) Accumulate(offset int, weight float64, samples []float64) error {
	if len(samples) != 1 {
		return fmt.Errorf("%w: %v storage requires exactly one sample value per fill, got %d",
			ErrInvalidArgument, s.Kind(), len(samples))
	}
	// Weighted incremental mean (West's recurrence).
	c := &s.cells[offset]
	v := samples[0]
	c.Count += weight
	delta := v - c.Mean
	c.Mean += delta * weight / c.Count
	c.SumOfDeltasSquared += weight * delta * (v - c.Mean)
	return nil
}

func (s *MeanStorage) Add(other Storage) error {
	if other.Size() != s.Size() {
		return errStorageSize(s, other)
	}
	o, ok := other.(*MeanStorage)
	if !ok {
		return errStorageAdd(s.Kind(), other.Kind())
	}
	for i, b := range o.cells {
		a := &s.cells[i]
		switch {
		case b.Count == 0:
			// Nothing to merge.
		case a.Count == 0:
			*a = b
		default:
			// Parallel merge of two partial means (Chan et al.).
			total := a.Count + b.Count
			delta := b.Mean - a.Mean
			mean := (a.Count*a.Mean + b.Count*b.Mean) / total
			a.SumOfDeltasSquared += b.SumOfDeltasSquared + delta*delta*a.Count*b.Count/total
			a.Mean = mean
			a.Count = total
		}
	}
	return nil
}

func (s *MeanStorage) Scale(x float64) error {
	for i := range s.cells {
		s.cells[i].Mean *= x
		s.cells[i].SumOfDeltasSquared *= x * x
	}
	return nil
}

func (s *MeanStorage) Equal(other Storage) bool { return storageEqual(s, other) }

func (s *MeanStorage) Clone() Storage {
	out := NewMeanStorage(len(s.cells))
	copy(out.cells, s.cells)
	return out
}
