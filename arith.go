package histogram

// Convert returns a copy of h with its storage widened to the given
// kind, following the promotion ladder count < double < weighted.
// Converting to the current kind is a plain Clone. Narrowing and
// numeric↔mean conversions are errors matching ErrInvalidArgument.
func Convert(h *Histogram, kind Kind) (*Histogram, error) {
	storage, err := convertStorage(h.storage, kind)
	if err != nil {
		return nil, err
	}
	axes := make([]Axis, len(h.axes))
	copy(axes, h.axes)
	return &Histogram{axes: axes, storage: storage}, nil
}

// Sum returns a new histogram holding a + b, cell by cell. The operands
// must have configuration-equal axes (ErrAxesMismatch otherwise). The
// result's storage kind is the common kind of both operands, so adding a
// plain-count histogram to a weighted one yields a weighted result.
func Sum(a, b *Histogram) (*Histogram, error) {
	if !axesEqual(a.axes, b.axes) {
		return nil, ErrAxesMismatch
	}
	kind, err := commonKind(a.storage.Kind(), b.storage.Kind())
	if err != nil {
		return nil, err
	}
	out, err := Convert(a, kind)
	if err != nil {
		return nil, err
	}
	if err := out.storage.Add(b.storage); err != nil {
		return nil, err
	}
	return out, nil
}

// Mul returns a new histogram with every cell of h multiplied by x. A
// count histogram is promoted to double first, since integral cells do
// not support scalar multiplication.
func Mul(h *Histogram, x float64) (*Histogram, error) {
	kind := h.storage.Kind()
	if kind == KindCount {
		kind = KindDouble
	}
	out, err := Convert(h, kind)
	if err != nil {
		return nil, err
	}
	if err := out.storage.Scale(x); err != nil {
		return nil, err
	}
	return out, nil
}

// Div returns a new histogram with every cell of h divided by x
// (multiplication by the reciprocal), with the same promotion rule as
// Mul.
func Div(h *Histogram, x float64) (*Histogram, error) {
	return Mul(h, 1/x)
}
