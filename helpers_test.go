package histogram

// test helpers shared by the package tests. Placed in a _test.go file so
// they are test-only and not part of the public API.

func mustAxis(a Axis, err error) Axis {
	if err != nil {
		panic(err)
	}
	return a
}

func mustHistogram(h *Histogram, err error) *Histogram {
	if err != nil {
		panic(err)
	}
	return h
}

// oneAxisHistogram returns a rank-1 histogram over 10 uniform bins in
// [0, 10) with both flow bins enabled, using the given storage (nil for
// the default count storage).
func oneAxisHistogram(s Storage) *Histogram {
	axis := mustAxis(NewRegularAxis(10, 0, 10))
	if s == nil {
		return mustHistogram(New([]Axis{axis}))
	}
	return mustHistogram(New([]Axis{axis}, WithStorage(s)))
}
