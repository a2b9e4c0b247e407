package compress

import (
	"bytes"
	"fmt"

	"github.com/feedbackward/doshamesh/format"
)

// Compressor wraps data in a compression frame.
type Compressor interface {
	// Compress compresses the input data and returns the framed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal encoder state may be pooled and reused
	Compress(data []byte) ([]byte, error)
}

// Decompressor unwraps a compression frame.
type Decompressor interface {
	// Decompress decompresses a complete frame produced by the matching
	// Compressor and returns the original bytes. Corrupted or
	// mismatched input fails with an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state
// between them.
type Codec interface {
	Compressor
	Decompressor
}

// Frame magic prefixes of the supported formats.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Sniff identifies the compression wrapping of data from its magic prefix.
// Data that matches none of the known frame formats is reported as
// CompressionNone.
func Sniff(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// Decode sniffs the compression wrapping of data and returns the unwrapped
// bytes. Unwrapped input is returned as-is without copying.
func Decode(data []byte) ([]byte, error) {
	typ := Sniff(data)
	codec, err := CreateCodec(typ, "input")
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s input: %w", typ, err)
	}

	return out, nil
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression type: %v", target, compressionType)
	}
}
