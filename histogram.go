package histogram

import (
	"fmt"

	"github.com/ygrebnov/histogram/internal/access"
)

// Histogram owns an ordered list of axes and a flat storage of cells
// sized to the product of per-axis spans. It has value semantics: Clone
// produces an independent deep copy and nothing is shared between
// instances.
//
// A Histogram carries no locking. Concurrent fills against one instance
// must be serialized by the caller; the supported parallel pattern is
// fill-then-merge over independent clones, see the examples package.
type Histogram struct {
	axes    []Axis
	storage Storage
}

type config struct {
	storage Storage
}

// Option configures a Histogram constructed by New.
type Option func(*config)

// WithStorage selects the storage backing the histogram. The histogram
// takes ownership and resizes it to the bin count of the axes; any prior
// contents are discarded. The default is a fresh CountStorage.
func WithStorage(s Storage) Option {
	return func(c *config) { c.storage = s }
}

// New constructs a histogram from an ordered list of axes. At least one
// axis is required. The storage is sized to the product over the axes of
// extent plus enabled flow bins, with every cell default-initialized.
func New(axes []Axis, opts ...Option) (*Histogram, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: at least one axis required", ErrInvalidArgument)
	}
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("%w: axis %d is nil", ErrInvalidArgument, i)
		}
	}
	var cfg config
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.storage == nil {
		cfg.storage = NewCountStorage(0)
	}
	owned := make([]Axis, len(axes))
	copy(owned, axes)
	cfg.storage.Reset(bincount(owned))
	return &Histogram{axes: owned, storage: cfg.storage}, nil
}

// Rank returns the number of axes.
func (h *Histogram) Rank() int { return len(h.axes) }

// Size returns the number of storage cells, including flow bins.
func (h *Histogram) Size() int { return h.storage.Size() }

// Kind returns the storage kind.
func (h *Histogram) Kind() Kind { return h.storage.Kind() }

// Reset reinitializes every cell to the default value, preserving size.
func (h *Histogram) Reset() { h.storage.Reset(h.storage.Size()) }

// Axis returns the i-th axis. i outside [0, Rank()) is an error matching
// ErrInvalidArgument.
func (h *Histogram) Axis(i int) (Axis, error) {
	if i < 0 || i >= len(h.axes) {
		return nil, fmt.Errorf("%w: axis index %d outside [0, %d)", ErrInvalidArgument, i, len(h.axes))
	}
	return h.axes[i], nil
}

// At returns the cell addressed by one index per axis. Each index is
// validated against its axis's valid span: [0, extent), extended to -1
// for an enabled underflow bin and to extent for an enabled overflow
// bin. A wrong number of indices matches ErrInvalidArgument; an index
// outside its span matches ErrOutOfRange.
func (h *Histogram) At(indices ...int) (Cell, error) {
	if len(indices) != len(h.axes) {
		return nil, fmt.Errorf("%w: got %d indices for %d axes", ErrInvalidArgument, len(indices), len(h.axes))
	}
	offset, err := accessOffset(h.axes, indices)
	if err != nil {
		return nil, err
	}
	return h.storage.At(offset), nil
}

// Add accumulates another histogram into this one, cell by cell. The two
// histograms must have configuration-equal axes (ErrAxesMismatch
// otherwise) and the other's storage kind must be absorbable into this
// one's per the promotion ladder; use Sum to combine into a promoted
// result instead. On failure no cell is modified.
func (h *Histogram) Add(other *Histogram) error {
	if !axesEqual(h.axes, other.axes) {
		return ErrAxesMismatch
	}
	return h.storage.Add(other.storage)
}

// Scale multiplies every cell by x. Integral count storage does not
// support scaling; use Mul to scale into a promoted result.
func (h *Histogram) Scale(x float64) error {
	return h.storage.Scale(x)
}

// Div divides every cell by x (multiplication by the reciprocal), with
// the same storage requirements as Scale.
func (h *Histogram) Div(x float64) error {
	return h.storage.Scale(1 / x)
}

// Equal reports whether other has configuration-equal axes and pairwise
// equal cells, using the cross-kind cell equality rules. There is no
// tolerance; cell representations compare exactly.
func (h *Histogram) Equal(other *Histogram) bool {
	return axesEqual(h.axes, other.axes) && h.storage.Equal(other.storage)
}

// Clone returns an independent deep copy. Mutating the clone never
// affects the original. Axes are immutable and therefore shared by
// value in a fresh slice.
func (h *Histogram) Clone() *Histogram {
	axes := make([]Axis, len(h.axes))
	copy(axes, h.axes)
	return &Histogram{axes: axes, storage: h.storage.Clone()}
}

// Each calls fn for every cell in ascending flat-offset order, the
// axis-major layout of linearization. Iteration stops early when fn
// returns false.
func (h *Histogram) Each(fn func(offset int, cell Cell) bool) {
	for i := 0; i < h.storage.Size(); i++ {
		if !fn(i, h.storage.At(i)) {
			return
		}
	}
}

// The access hooks give in-module collaborators (the snapshot codec) raw
// views of axes and storage without widening the public contract.
func init() {
	access.Raw = func(h any) (any, any) {
		hh := h.(*Histogram)
		return hh.axes, hh.storage
	}
	access.Assemble = func(axes any, storage any) (any, error) {
		ax := axes.([]Axis)
		st := storage.(Storage)
		if len(ax) == 0 {
			return nil, fmt.Errorf("%w: at least one axis required", ErrInvalidArgument)
		}
		if st.Size() != bincount(ax) {
			return nil, fmt.Errorf("%w: storage size %d does not match bin count %d",
				ErrInvalidArgument, st.Size(), bincount(ax))
		}
		return &Histogram{axes: ax, storage: st}, nil
	}
	access.RawCells = func(storage any) any {
		switch s := storage.(type) {
		case *CountStorage:
			return s.cells
		case *DoubleStorage:
			return s.cells
		case *WeightedStorage:
			return s.cells
		case *MeanStorage:
			return s.cells
		default:
			return nil
		}
	}
	access.StorageFrom = func(cells any) (any, error) {
		switch c := cells.(type) {
		case []int64:
			return &CountStorage{cells: c}, nil
		case []float64:
			return &DoubleStorage{cells: c}, nil
		case []WeightedCell:
			return &WeightedStorage{cells: c}, nil
		case []MeanCell:
			return &MeanStorage{cells: c}, nil
		default:
			return nil, fmt.Errorf("%w: unsupported raw cell slice %T", ErrInvalidArgument, cells)
		}
	}
}
