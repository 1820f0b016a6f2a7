package histogram

import "fmt"

// linearize composes per-axis raw indices into one flat storage offset,
// row-major in axis order. Each axis occupies a contiguous span of
// totalExtent cells within its stride: the underflow bin (when enabled)
// at slot 0, the in-range bins shifted up by the underflow flag, the
// overflow bin (when enabled) in the last slot.
//
// The second result is false when any index refers to a disabled flow
// bin; the whole fill is then discarded regardless of the other axes.
func linearize(axes []Axis, indices []int) (int, bool) {
	offset, stride := 0, 1
	for i, axis := range axes {
		idx := indices[i]
		switch {
		case idx >= 0 && idx < axis.Extent():
			pos := idx
			if axis.HasUnderflow() {
				pos++
			}
			offset += pos * stride
		case idx == -1:
			if !axis.HasUnderflow() {
				return 0, false
			}
			// Underflow occupies slot 0: contributes nothing.
		case idx == axis.Extent():
			if !axis.HasOverflow() {
				return 0, false
			}
			pos := axis.Extent()
			if axis.HasUnderflow() {
				pos++
			}
			offset += pos * stride
		default:
			return 0, false
		}
		stride *= totalExtent(axis)
	}
	return offset, true
}

// accessOffset maps At indices onto the same span layout as linearize,
// but an index outside the valid span of its axis is an error rather
// than a discard. The valid span is [0, extent) extended to -1 when the
// axis has an underflow bin and to extent when it has an overflow bin.
func accessOffset(axes []Axis, indices []int) (int, error) {
	offset, stride := 0, 1
	for i, axis := range axes {
		idx := indices[i]
		low := 0
		if axis.HasUnderflow() {
			low = -1
		}
		high := axis.Extent() - 1
		if axis.HasOverflow() {
			high = axis.Extent()
		}
		if idx < low || idx > high {
			return 0, fmt.Errorf("%w: index %d outside valid span [%d, %d] of axis %d",
				ErrOutOfRange, idx, low, high, i)
		}
		pos := idx
		if axis.HasUnderflow() {
			pos++
		}
		offset += pos * stride
		stride *= totalExtent(axis)
	}
	return offset, nil
}
