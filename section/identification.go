package section

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/feedbackward/doshamesh/errs"
)

// Identification is section 1: the originating centre and the reference
// time of the data.
type Identification struct {
	length int

	// Centre and SubCentre identify the originating/generating centre
	// (common code table C-11; 34 is Tokyo / JMA).
	Centre    uint16
	SubCentre uint16
	// MasterTable and LocalTable are the GRIB table version numbers.
	MasterTable uint8
	LocalTable  uint8
	// Significance is code table 1.2 (significance of reference time).
	Significance uint8
	// ReferenceTime is the reference date/time of the message in UTC.
	ReferenceTime time.Time
	// ProductionStatus is code table 1.3.
	ProductionStatus uint8
	// DataType is code table 1.4 (0 analysis, 1 forecast, ...).
	DataType uint8
}

// identificationMinLen is the payload size through the data-type octet
// (section octets 6..21).
const identificationMinLen = 16

// ParseIdentification reads a section 1 payload.
func ParseIdentification(payload []byte) (*Identification, error) {
	if len(payload) < identificationMinLen {
		return nil, fmt.Errorf("identification section payload %d bytes, need %d: %w",
			len(payload), identificationMinLen, errs.ErrTruncatedMessage)
	}

	s := &Identification{
		length:           HeaderLength + len(payload),
		Centre:           binary.BigEndian.Uint16(payload[0:2]),
		SubCentre:        binary.BigEndian.Uint16(payload[2:4]),
		MasterTable:      payload[4],
		LocalTable:       payload[5],
		Significance:     payload[6],
		ProductionStatus: payload[14],
		DataType:         payload[15],
	}

	year := int(binary.BigEndian.Uint16(payload[7:9]))
	s.ReferenceTime = time.Date(year, time.Month(payload[9]), int(payload[10]),
		int(payload[11]), int(payload[12]), int(payload[13]), 0, time.UTC)

	return s, nil
}

func (s *Identification) Number() Number { return NumIdentification }
func (s *Identification) Length() int    { return s.length }
func (s *Identification) sealed()        {}
