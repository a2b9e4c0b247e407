package section

// Byte layout constants shared by the section parsers.
const (
	IndicatorLength = 16 // fixed size of section 0
	EndLength       = 4  // fixed size of the "7777" end marker
	HeaderLength    = 5  // 4-byte length plus 1-byte section number
)

// EndMagic is the content of the end section.
const EndMagic = "7777"

// Number identifies a GRIB2 section kind.
type Number uint8

const (
	NumIndicator          Number = 0
	NumIdentification     Number = 1
	NumLocalUse           Number = 2
	NumGridDefinition     Number = 3
	NumProductDefinition  Number = 4
	NumDataRepresentation Number = 5
	NumBitmap             Number = 6
	NumData               Number = 7
	NumEnd                Number = 8
)

func (n Number) String() string {
	switch n {
	case NumIndicator:
		return "Indicator"
	case NumIdentification:
		return "Identification"
	case NumLocalUse:
		return "LocalUse"
	case NumGridDefinition:
		return "GridDefinition"
	case NumProductDefinition:
		return "ProductDefinition"
	case NumDataRepresentation:
		return "DataRepresentation"
	case NumBitmap:
		return "Bitmap"
	case NumData:
		return "Data"
	case NumEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Section is the closed set of GRIB2 section records. All implementations
// live in this package, so a type switch over Section values is exhaustive.
type Section interface {
	// Number returns the section kind.
	Number() Number
	// Length returns the declared byte length of the section, header
	// included.
	Length() int

	sealed()
}

// LocalUse is section 2. Its payload is centre specific and kept opaque.
type LocalUse struct {
	length int
	// Data is the raw local-use payload.
	Data []byte
}

// ParseLocalUse wraps a section 2 payload.
func ParseLocalUse(payload []byte) (*LocalUse, error) {
	return &LocalUse{length: HeaderLength + len(payload), Data: payload}, nil
}

func (s *LocalUse) Number() Number { return NumLocalUse }
func (s *LocalUse) Length() int    { return s.length }
func (s *LocalUse) sealed()        {}

// Data is section 7: the packed value payload. Its interpretation is owned
// by the data representation section that precedes it.
type Data struct {
	length int
	// Payload is the packed bitstream.
	Payload []byte
}

// ParseData wraps a section 7 payload.
func ParseData(payload []byte) (*Data, error) {
	return &Data{length: HeaderLength + len(payload), Payload: payload}, nil
}

func (s *Data) Number() Number { return NumData }
func (s *Data) Length() int    { return s.length }
func (s *Data) sealed()        {}

// End is section 8, the "7777" end marker.
type End struct{}

func (s *End) Number() Number { return NumEnd }
func (s *End) Length() int    { return EndLength }
func (s *End) sealed()        {}
