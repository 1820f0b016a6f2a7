// Package access carries privileged hooks between the histogram package
// and its in-module collaborators (the snapshot codec). The root package
// installs the hooks at init; nothing outside this module can import
// them. This keeps raw axes/storage extraction off the public contract.
package access

var (
	// Raw returns the axes ([]histogram.Axis) and storage
	// (histogram.Storage) of a *histogram.Histogram without copying.
	Raw func(h any) (axes any, storage any)

	// Assemble builds a *histogram.Histogram from raw parts, keeping the
	// storage contents instead of resetting them. The storage size must
	// match the bin count of the axes.
	Assemble func(axes any, storage any) (any, error)

	// RawCells returns the backing cell slice of a storage: []int64,
	// []float64, []histogram.WeightedCell, or []histogram.MeanCell.
	RawCells func(storage any) any

	// StorageFrom wraps a raw cell slice in the matching storage kind,
	// taking ownership of the slice.
	StorageFrom func(cells any) (any, error)
)
