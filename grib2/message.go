package grib2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/feedbackward/doshamesh/errs"
	"github.com/feedbackward/doshamesh/section"
)

// endMagic is the byte form of the section 8 marker.
var endMagic = []byte(section.EndMagic)

// ScanSections returns an iterator over the typed sections of the single
// message at the front of buf, indicator first and end marker last.
//
// The scanner enforces the message framing invariants before any section
// payload is interpreted:
//   - section numbers strictly increase, except that after a data section
//     the sequence may restart at 2, 3 or 4 for the next field
//   - every section fits inside the total length declared by the indicator
//   - the section lengths sum exactly to the declared total, end marker
//     included
//
// The first violation is yielded as an error and ends the iteration, so a
// consumer never observes sections past a framing fault.
func ScanSections(buf []byte) iter.Seq2[section.Section, error] {
	return func(yield func(section.Section, error) bool) {
		ind, err := section.ParseIndicator(buf)
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(ind, nil) {
			return
		}

		total := int(ind.TotalLength)
		pos := section.IndicatorLength
		prev := section.NumIndicator

		for {
			if pos+section.EndLength > total {
				yield(nil, fmt.Errorf("message ends at offset %d without an end section: %w",
					pos, errs.ErrTruncatedMessage))
				return
			}
			if bytes.Equal(buf[pos:pos+section.EndLength], endMagic) {
				if pos+section.EndLength != total {
					yield(nil, fmt.Errorf("end section at offset %d, indicator declares %d bytes: %w",
						pos, total, errs.ErrTruncatedMessage))
					return
				}
				yield(&section.End{}, nil)
				return
			}

			if pos+section.HeaderLength > total {
				yield(nil, fmt.Errorf("section header at offset %d overruns the message: %w",
					pos, errs.ErrTruncatedMessage))
				return
			}
			length := int(binary.BigEndian.Uint32(buf[pos : pos+4]))
			num := section.Number(buf[pos+4])
			if length < section.HeaderLength || pos+length > total {
				yield(nil, fmt.Errorf("section %d at offset %d declares %d bytes: %w",
					num, pos, length, errs.ErrTruncatedMessage))
				return
			}
			if num < section.NumIdentification || num > section.NumData {
				yield(nil, fmt.Errorf("unexpected section number %d at offset %d: %w",
					num, pos, errs.ErrSectionOrder))
				return
			}
			restart := prev == section.NumData &&
				num >= section.NumLocalUse && num <= section.NumProductDefinition
			if num <= prev && !restart {
				yield(nil, fmt.Errorf("section %d follows section %d: %w",
					num, prev, errs.ErrSectionOrder))
				return
			}

			sec, err := parseSection(num, buf[pos+section.HeaderLength:pos+length])
			if !yield(sec, err) || err != nil {
				return
			}
			pos += length
			prev = num
		}
	}
}

func parseSection(num section.Number, payload []byte) (section.Section, error) {
	switch num {
	case section.NumIdentification:
		return section.ParseIdentification(payload)
	case section.NumLocalUse:
		return section.ParseLocalUse(payload)
	case section.NumGridDefinition:
		return section.ParseGridDefinition(payload)
	case section.NumProductDefinition:
		return section.ParseProductDefinition(payload)
	case section.NumDataRepresentation:
		return section.ParseDataRepresentation(payload)
	case section.NumBitmap:
		return section.ParseBitmap(payload)
	case section.NumData:
		return section.ParseData(payload)
	default:
		return nil, fmt.Errorf("unexpected section number %d: %w", num, errs.ErrSectionOrder)
	}
}

// skipPadding returns the count of leading zero bytes in buf. Some archive
// producers pad between concatenated messages with NUL runs.
func skipPadding(buf []byte) int {
	n := 0
	for n < len(buf) && buf[n] == 0 {
		n++
	}
	return n
}
