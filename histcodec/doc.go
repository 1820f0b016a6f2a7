// Package histcodec serializes histograms to CBOR snapshots.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// The same histogram always produces identical bytes, so snapshots can
// be compared and content-addressed.
//
// A snapshot captures the full configuration of every axis, the storage
// kind, and the raw cell arrays, and round-trips exactly:
//
//	data, err := histcodec.Marshal(h)
//	h2, err := histcodec.Unmarshal(data)
//	// h2.Equal(h) == true
//
// Large histograms compress well because cell arrays are stored
// columnar; MarshalCompressed prefixes the snapshot with a one-byte
// compression tag and applies zstd when it actually shrinks the
// payload:
//
//	data, err := histcodec.MarshalCompressed(h)
//	h2, err := histcodec.UnmarshalCompressed(data)
//
// The package reads raw axes and cells through the module's internal
// access hooks; it consumes no surface that is not also available to
// any other serializer written inside this module.
package histcodec
