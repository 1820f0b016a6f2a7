package histcodec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/ygrebnov/histogram"
)

// Compression tags are the first byte of a compressed snapshot. These
// values are format constants; changing them breaks existing snapshots.
const (
	compressionNone byte = 0
	compressionZstd byte = 1
)

// zstdEncoder and zstdDecoder are reused across calls to avoid repeated
// initialization overhead; both are safe for concurrent use. Level 3
// (zstd's default) gives a good ratio for the structured, columnar
// snapshot payload without excessive CPU.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("histcodec: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("histcodec: zstd decoder initialization failed: " + err.Error())
	}
}

// MarshalCompressed encodes h as a tagged, optionally zstd-compressed
// CBOR snapshot. When compression does not shrink the payload (tiny
// histograms), the snapshot is stored uncompressed under the none tag.
func MarshalCompressed(h *histogram.Histogram) ([]byte, error) {
	raw, err := Marshal(h)
	if err != nil {
		return nil, err
	}
	compressed := zstdEncoder.EncodeAll(raw, make([]byte, 0, len(raw)/2))
	if len(compressed) >= len(raw) {
		return append([]byte{compressionNone}, raw...), nil
	}
	return append([]byte{compressionZstd}, compressed...), nil
}

// UnmarshalCompressed reconstructs a histogram from the output of
// MarshalCompressed.
func UnmarshalCompressed(data []byte) (*histogram.Histogram, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("histcodec: empty snapshot")
	}
	switch data[0] {
	case compressionNone:
		return Unmarshal(data[1:])
	case compressionZstd:
		raw, err := zstdDecoder.DecodeAll(data[1:], nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return Unmarshal(raw)
	default:
		return nil, fmt.Errorf("histcodec: unknown compression tag %d", data[0])
	}
}
