package histdef

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ygrebnov/histogram"
)

func TestParse(t *testing.T) {
	doc := `
storage: weighted
axes:
  - kind: regular
    bins: 25
    lower: 0
    upper: 100
    label: "pT [GeV]"
  - kind: category
    categories: [electron, muon, tau]
  - kind: integer
    lower: -2
    upper: 3
    underflow: false
    overflow: false
`
	h, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := h.Rank(); got != 3 {
		t.Fatalf("unexpected rank: got %d want 3", got)
	}
	if h.Kind() != histogram.KindWeighted {
		t.Fatalf("unexpected kind: got %v want %v", h.Kind(), histogram.KindWeighted)
	}
	// regular: 25+2, category: 3+1, integer without flow: 5
	if got, want := h.Size(), 27*4*5; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}

	a, err := h.Axis(0)
	if err != nil {
		t.Fatalf("Axis(0): %v", err)
	}
	if a.Label() != "pT [GeV]" {
		t.Fatalf("unexpected label: got %q", a.Label())
	}
	reg, ok := a.(*histogram.RegularAxis)
	if !ok {
		t.Fatalf("axis 0 has type %T, want *RegularAxis", a)
	}
	if reg.Extent() != 25 || reg.Lower() != 0 || reg.Upper() != 100 {
		t.Fatalf("unexpected regular axis: %d bins over [%v, %v)", reg.Extent(), reg.Lower(), reg.Upper())
	}

	z, _ := h.Axis(2)
	if z.HasUnderflow() || z.HasOverflow() {
		t.Fatal("integer axis flow bins should be disabled")
	}
}

func TestParseDefaults(t *testing.T) {
	doc := `
axes:
  - kind: variable
    edges: [0, 1, 10, 100]
`
	h, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if h.Kind() != histogram.KindCount {
		t.Fatalf("unexpected default kind: got %v want %v", h.Kind(), histogram.KindCount)
	}
	a, _ := h.Axis(0)
	if !a.HasUnderflow() || !a.HasOverflow() {
		t.Fatal("flow bins should default to enabled")
	}
	if got := h.Size(); got != 5 { // 3 bins + both flow bins
		t.Fatalf("unexpected size: got %d want 5", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "\t{ not yaml"},
		{name: "no axes", doc: "storage: count\n"},
		{name: "unknown storage", doc: "storage: quantum\naxes:\n  - kind: integer\n    lower: 0\n    upper: 3\n"},
		{name: "missing axis kind", doc: "axes:\n  - bins: 5\n"},
		{name: "unknown axis kind", doc: "axes:\n  - kind: spiral\n"},
		{name: "regular without bounds", doc: "axes:\n  - kind: regular\n    bins: 5\n"},
		{name: "regular inverted bounds", doc: "axes:\n  - kind: regular\n    bins: 5\n    lower: 10\n    upper: 0\n"},
		{name: "variable too few edges", doc: "axes:\n  - kind: variable\n    edges: [1]\n"},
		{name: "integer fractional bounds", doc: "axes:\n  - kind: integer\n    lower: 0.5\n    upper: 3\n"},
		{name: "category empty", doc: "axes:\n  - kind: category\n    categories: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseErrorsMatchInvalidArgument(t *testing.T) {
	_, err := Parse([]byte("axes:\n  - kind: integer\n    lower: 0.5\n    upper: 3\n"))
	if !errors.Is(err, histogram.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	lower, upper := 0.0, 10.0
	def := Definition{
		Storage: "mean",
		Axes: []AxisDef{
			{Kind: "regular", Bins: 10, Lower: &lower, Upper: &upper},
		},
	}
	h, err := Build(def)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if h.Kind() != histogram.KindMean {
		t.Fatalf("unexpected kind: got %v want %v", h.Kind(), histogram.KindMean)
	}
	if err := h.Fill(2.5, histogram.Sample(7.0)); err != nil {
		t.Fatalf("Fill: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.yaml")
	doc := "axes:\n  - kind: regular\n    bins: 4\n    lower: 0\n    upper: 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	h, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := h.Size(); got != 6 {
		t.Fatalf("unexpected size: got %d want 6", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
