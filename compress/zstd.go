package compress

// ZstdCodec reads and writes standard Zstandard frames. The implementation
// is chosen at build time: valyala/gozstd when cgo is available, the
// pure-Go klauspost/compress/zstd otherwise.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
