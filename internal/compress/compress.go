// Package compress provides block compression for cache payloads:
// zstd for ratio, s2 for speed. Both operate on whole in-memory
// buffers, matching how callers stage values before caching.
package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// DefaultZstdLevel mirrors zstd's own default (level 3).
const DefaultZstdLevel = 3

var zstdDecoder *zstd.Decoder

func init() {
	// A concurrency-safe decoder can be shared process-wide when used
	// via DecodeAll.
	d, err := zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("compress: init zstd decoder: %v", err))
	}
	zstdDecoder = d
}

// ZstdCompress compresses data at the given zstd level; level <= 0
// selects DefaultZstdLevel.
func ZstdCompress(data []byte, level int) ([]byte, error) {
	if level <= 0 {
		level = DefaultZstdLevel
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, fmt.Errorf("compress: zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// ZstdDecompress decompresses a zstd frame.
func ZstdDecompress(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decode: %w", err)
	}
	return out, nil
}

// S2Compress compresses data with S2, the fast-codec slot. Unlike
// zstd it has no tunable level here; it is meant for hot paths where
// throughput beats ratio.
func S2Compress(data []byte) []byte {
	return s2.Encode(nil, data)
}

// S2Decompress decompresses an S2 block.
func S2Decompress(data []byte) ([]byte, error) {
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("compress: s2 decode: %w", err)
	}
	return out, nil
}
