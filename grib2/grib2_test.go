package grib2

// Synthetic message builders shared by the decoder and scanner tests.

import (
	"encoding/binary"
	"time"
)

var testRefTime = time.Date(2021, time.July, 3, 9, 40, 0, 0, time.UTC)

func sec(num byte, payload []byte) []byte {
	buf := make([]byte, 5+len(payload))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(buf)))
	buf[4] = num
	copy(buf[5:], payload)

	return buf
}

func message(discipline byte, secs ...[]byte) []byte {
	total := 16 + 4
	for _, s := range secs {
		total += len(s)
	}

	buf := make([]byte, 16, total)
	copy(buf, "GRIB")
	buf[6] = discipline
	buf[7] = 2
	binary.BigEndian.PutUint64(buf[8:16], uint64(total))
	for _, s := range secs {
		buf = append(buf, s...)
	}

	return append(buf, "7777"...)
}

func identPayload() []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint16(buf[0:2], 34)
	binary.BigEndian.PutUint16(buf[7:9], uint16(testRefTime.Year()))
	buf[9] = byte(testRefTime.Month())
	buf[10] = byte(testRefTime.Day())
	buf[11] = byte(testRefTime.Hour())
	buf[12] = byte(testRefTime.Minute())
	buf[13] = byte(testRefTime.Second())

	return buf
}

// gridPayload builds a template 3.0 section body for an ni x nj grid in the
// profile scan order.
func gridPayload(ni, nj uint32) []byte {
	buf := make([]byte, 9, 9+58)
	binary.BigEndian.PutUint32(buf[1:5], ni*nj)

	u32 := func(v uint32) {
		buf = binary.BigEndian.AppendUint32(buf, v)
	}
	buf = append(buf, make([]byte, 16)...) // shape of earth
	u32(ni)
	u32(nj)
	buf = append(buf, make([]byte, 8)...) // basic angle
	u32(40000000)                         // first latitude, 40 north
	u32(140000000)                        // first longitude, 140 east
	buf = append(buf, 0x30)               // resolution flags
	u32(40000000 - (nj-1)*50000)          // last latitude
	u32(140000000 + (ni-1)*62500)         // last longitude
	u32(62500)                            // i increment
	u32(50000)                            // j increment
	buf = append(buf, 0x00)               // scanning mode

	return buf
}

func productPayload(category, number byte, timeUnit byte, forecast uint32) []byte {
	buf := make([]byte, 17)
	buf[4] = category
	buf[5] = number
	buf[12] = timeUnit
	binary.BigEndian.PutUint32(buf[13:17], forecast)

	return buf
}

func simpleDRSPayload(n int, bits byte) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	// Template 5.0, zero reference and scales.
	buf[14] = bits

	return buf
}

// complexDRSPayload builds a template 5.3 body for one group of n points:
// 8-bit references, widths and lengths, second-order differencing with
// 1-octet descriptors.
func complexDRSPayload(n int) []byte {
	buf := make([]byte, 6, 44)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	binary.BigEndian.PutUint16(buf[4:6], 3)

	body := make([]byte, 38)
	body[8] = 8                                         // bits per reference
	binary.BigEndian.PutUint32(body[20:24], 1)          // one group
	body[25] = 8                                        // width bits
	body[30] = 1                                        // length increment
	binary.BigEndian.PutUint32(body[31:35], uint32(n))  // last group length
	body[35] = 8                                        // length bits
	body[36] = 2                                        // differencing order
	body[37] = 1                                        // descriptor octets

	return append(buf, body...)
}

func runLengthDRSPayload(n int, maxLevel uint16, levels ...uint16) []byte {
	buf := make([]byte, 6, 12+2*len(levels))
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	binary.BigEndian.PutUint16(buf[4:6], 200)

	buf = append(buf, 8) // bits per code
	buf = binary.BigEndian.AppendUint16(buf, maxLevel)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(levels)))
	buf = append(buf, 0) // decimal scale
	for _, lv := range levels {
		buf = binary.BigEndian.AppendUint16(buf, lv)
	}

	return buf
}

// drsWithTemplate builds a section 5 body declaring an arbitrary packing
// template, for exercising the unsupported-template paths.
func drsWithTemplate(n int, template uint16) []byte {
	buf := make([]byte, 6, 46)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	binary.BigEndian.PutUint16(buf[4:6], template)

	return append(buf, make([]byte, 40)...)
}

func bitmapPayload(indicator byte, mask ...byte) []byte {
	return append([]byte{indicator}, mask...)
}

// simpleMessage is a complete single-field message: a 2x3 grid of total
// precipitation packed with 8-bit simple packing, values 1..6.
func simpleMessage() []byte {
	return message(0,
		sec(1, identPayload()),
		sec(3, gridPayload(3, 2)),
		sec(4, productPayload(1, 8, 0, 0)),
		sec(5, simpleDRSPayload(6, 8)),
		sec(6, bitmapPayload(255)),
		sec(7, []byte{1, 2, 3, 4, 5, 6}),
	)
}
