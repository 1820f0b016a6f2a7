/*
Package histogram provides a multi-dimensional histogram engine for Go:
axes map incoming values to bin indices, a flat storage accumulates the
cells, and histograms combine algebraically.

# Overview

The engine is organized around two capability contracts:

1. Axis: one dimension's binning rule. An axis exposes its bin count
(extent), whether it reserves underflow/overflow bins, a value→index
mapping, and configuration equality. Shipped kinds: RegularAxis (uniform
bins over [lower, upper)), VariableAxis (explicit edges), IntegerAxis
(unit bins), and CategoryAxis (string categories with an optional
"other" overflow bin).

	type Axis interface {
	  Extent() int
	  HasUnderflow() bool
	  HasOverflow() bool
	  Index(value any) (int, error)
	  Label() string
	  EqualTo(other Axis) bool
	}

2. Storage: a flat, resizable container of accumulator cells. Shipped
kinds: CountStorage (int64 counts, the default), DoubleStorage (float64
counts), WeightedStorage (sum of weights and squared weights), and
MeanStorage (profile cells accumulating one sample value per fill).

A Histogram owns one axes list and one storage; the storage is sized to
the product over the axes of extent plus enabled flow bins. Filling
decomposes the argument list (optional Weight and Sample decorations at
either end, positional values against the axes), computes one index per
axis, linearizes the index tuple into a flat offset (row-major, with
underflow in slot 0 of each axis span and overflow in the last slot),
and mutates exactly one cell. A value outside an axis's domain fills the
corresponding flow bin, or, when that flow bin is disabled, silently
discards the whole fill. Structural mistakes (wrong argument count, a
value the axis cannot convert, invalid At indices) are typed errors and
never mutate cells.

Histograms combine with value semantics: Add (+=) requires
configuration-equal axes; the free Sum, Mul, and Div produce new
histograms, promoting storage kinds along the ladder count < double <
weighted when operand types differ; Equal compares axes configuration
and cells exactly.

# Examples

	xaxis, _ := histogram.NewRegularAxis(10, 0, 10)
	h, _ := histogram.New([]histogram.Axis{xaxis})

	_ = h.Fill(1.5)
	_ = h.Fill(1.5)
	cell, _ := h.At(1) // CountCell(2)

	w, _ := histogram.New([]histogram.Axis{xaxis},
	    histogram.WithStorage(histogram.NewWeightedStorage(0)))
	_ = w.Fill(3.2, histogram.Weight(0.5))

# Concurrency

The engine is purely synchronous and carries no locking. Concurrent
fills against one Histogram must be serialized by the caller. The
supported parallel pattern is fill-then-merge: fill independent clones
on separate goroutines, then merge them with Add, which is commutative
and associative for the additive cell kinds.

# Collaborators

Subpackage histcodec serializes histograms to deterministic CBOR
snapshots (optionally zstd-compressed); subpackage histdef constructs
histograms from declarative YAML definitions.
*/
package histogram
