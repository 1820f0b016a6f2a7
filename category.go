package histogram

import "fmt"

// CategoryAxis provides one bin per listed string category. A category
// axis has no notion of underflow; when overflow is enabled, the
// overflow bin collects values for categories that are not listed.
type CategoryAxis struct {
	categories []string
	index      map[string]int
	cfg        axisConfig
}

// NewCategoryAxis returns an axis over the given categories, one bin
// each in listed order. At least one category is required and duplicates
// are rejected. WithoutUnderflow is accepted but has no effect.
func NewCategoryAxis(categories []string, opts ...AxisOption) (*CategoryAxis, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: category axis needs at least one category", ErrInvalidArgument)
	}
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidArgument, c)
		}
		index[c] = i
	}
	owned := make([]string, len(categories))
	copy(owned, categories)
	cfg := applyAxisOptions(opts)
	cfg.underflow = false
	return &CategoryAxis{categories: owned, index: index, cfg: cfg}, nil
}

func (a *CategoryAxis) Extent() int        { return len(a.categories) }
func (a *CategoryAxis) HasUnderflow() bool { return false }
func (a *CategoryAxis) HasOverflow() bool  { return a.cfg.overflow }
func (a *CategoryAxis) Label() string      { return a.cfg.label }

// Categories returns a copy of the category list in bin order.
func (a *CategoryAxis) Categories() []string {
	out := make([]string, len(a.categories))
	copy(out, a.categories)
	return out
}

// Index maps a string value to its category bin. An unlisted category
// maps to the overflow index.
func (a *CategoryAxis) Index(value any) (int, error) {
	s, ok := value.(string)
	if !ok {
		return 0, errNotConvertible(value, "category")
	}
	if i, ok := a.index[s]; ok {
		return i, nil
	}
	return a.Extent(), nil
}

func (a *CategoryAxis) EqualTo(other Axis) bool {
	o, ok := other.(*CategoryAxis)
	if !ok || len(a.categories) != len(o.categories) || a.cfg.overflow != o.cfg.overflow {
		return false
	}
	for i := range a.categories {
		if a.categories[i] != o.categories[i] {
			return false
		}
	}
	return true
}
