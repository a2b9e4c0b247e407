// Package compress handles the container compression wrapped around
// archived GRIB2 files.
//
// Feed archives are distributed either raw or wrapped in a gzip, Zstandard
// or LZ4 frame. All three frame formats carry a magic prefix, so the
// wrapping is detected from the first bytes and undone transparently:
//
//	raw, err := compress.Decode(fileBytes)
//
// Each algorithm is also exposed as a Codec for callers that build
// archives themselves or already know the wrapping:
//
//	codec, err := compress.CreateCodec(format.CompressionGzip, "archive")
//	wrapped, err := codec.Compress(raw)
//
// Codecs are stateless values and safe for concurrent use; internal
// encoder and decoder state is pooled per algorithm.
//
// Zstandard has two implementations selected at build time: a cgo binding
// (valyala/gozstd) when cgo is enabled, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both read and write standard
// Zstandard frames.
package compress
