package section

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/feedbackward/doshamesh/errs"
)

// ProductDefinition is section 4: what the packed values measure and how
// far the product sits from the reference time.
type ProductDefinition struct {
	length int

	// TemplateNumber is code table 4.0.
	TemplateNumber uint16
	// ParameterCategory and ParameterNumber come from octets 10 and 11,
	// common to the 4.x template family.
	ParameterCategory uint8
	ParameterNumber   uint8
	// ForecastOffset is the distance from the reference time to the
	// validity time. Zero for analysis products and for templates whose
	// forecast block this decoder does not interpret.
	ForecastOffset time.Duration
}

// productDefinitionMinLen covers octets 6..11: coordinate count, template
// number, parameter category and number.
const productDefinitionMinLen = 6

// forecastBlockLen covers the template 4.0 leading block through the
// forecast time, octets 10..22.
const forecastBlockLen = 17

// ParseProductDefinition reads a section 4 payload.
//
// The parameter category/number octets are shared by the whole 4.x template
// family and read unconditionally. The forecast-time block (time unit octet
// 18, forecast value octets 19..22) is interpreted for templates laid out
// like 4.0; templates with other layouts, and time units this decoder does
// not map, leave ForecastOffset at zero so the product is treated as an
// analysis.
func ParseProductDefinition(payload []byte) (*ProductDefinition, error) {
	if len(payload) < productDefinitionMinLen {
		return nil, fmt.Errorf("product definition payload %d bytes, need at least %d: %w",
			len(payload), productDefinitionMinLen, errs.ErrTruncatedMessage)
	}

	s := &ProductDefinition{
		length:            HeaderLength + len(payload),
		TemplateNumber:    binary.BigEndian.Uint16(payload[2:4]),
		ParameterCategory: payload[4],
		ParameterNumber:   payload[5],
	}

	if hasForecastBlock(s.TemplateNumber) && len(payload) >= forecastBlockLen {
		unit := payload[12]
		value := int64(binary.BigEndian.Uint32(payload[13:17]))
		s.ForecastOffset = forecastDuration(unit, value)
	}

	return s, nil
}

// hasForecastBlock reports whether the template shares the 4.0 layout for
// octets 12..22 (generating process, cutoff, time unit, forecast time).
func hasForecastBlock(template uint16) bool {
	switch template {
	case 0, 1, 2, 8, 9, 10, 11, 12, 15:
		return true
	default:
		return false
	}
}

// forecastDuration maps a code table 4.4 time unit and count to a duration.
// Unmapped units yield zero.
func forecastDuration(unit uint8, value int64) time.Duration {
	switch unit {
	case 0:
		return time.Duration(value) * time.Minute
	case 1:
		return time.Duration(value) * time.Hour
	case 2:
		return time.Duration(value) * 24 * time.Hour
	case 10:
		return time.Duration(value) * 3 * time.Hour
	case 11:
		return time.Duration(value) * 6 * time.Hour
	case 12:
		return time.Duration(value) * 12 * time.Hour
	case 13:
		return time.Duration(value) * time.Second
	default:
		return 0
	}
}

func (s *ProductDefinition) Number() Number { return NumProductDefinition }
func (s *ProductDefinition) Length() int    { return s.length }
func (s *ProductDefinition) sealed()        {}
