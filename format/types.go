package format

type (
	PackingType     uint16
	CompressionType uint8
)

const (
	// Data representation template numbers from WMO code table 5.0, plus the
	// run-length template from the JMA local extension.
	PackingSimple    PackingType = 0   // PackingSimple represents template 5.0, grid point simple packing.
	PackingComplexSD PackingType = 3   // PackingComplexSD represents template 5.3, complex packing with spatial differencing.
	PackingRunLength PackingType = 200 // PackingRunLength represents template 5.200, JMA run-length packing of level values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents raw, uncompressed input.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip-framed input.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard-framed input.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4-framed input.
)

func (p PackingType) String() string {
	switch p {
	case PackingSimple:
		return "Simple"
	case PackingComplexSD:
		return "ComplexSpatialDiff"
	case PackingRunLength:
		return "RunLength"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
