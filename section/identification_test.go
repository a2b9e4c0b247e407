package section

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feedbackward/doshamesh/errs"
)

func identificationPayload(ref time.Time) []byte {
	buf := make([]byte, identificationMinLen)
	binary.BigEndian.PutUint16(buf[0:2], 34) // Tokyo
	buf[4] = 2                               // master table version
	buf[5] = 1                               // local table version
	buf[6] = 3                               // observation time
	binary.BigEndian.PutUint16(buf[7:9], uint16(ref.Year()))
	buf[9] = byte(ref.Month())
	buf[10] = byte(ref.Day())
	buf[11] = byte(ref.Hour())
	buf[12] = byte(ref.Minute())
	buf[13] = byte(ref.Second())
	buf[14] = 0 // operational products
	buf[15] = 0 // analysis

	return buf
}

func TestParseIdentification(t *testing.T) {
	ref := time.Date(2021, time.July, 3, 9, 40, 0, 0, time.UTC)

	s, err := ParseIdentification(identificationPayload(ref))
	require.NoError(t, err)
	require.Equal(t, uint16(34), s.Centre)
	require.Equal(t, uint8(3), s.Significance)
	require.Equal(t, ref, s.ReferenceTime)
	require.Equal(t, time.UTC, s.ReferenceTime.Location())
	require.Equal(t, uint8(0), s.DataType)
}

func TestParseIdentificationTruncated(t *testing.T) {
	_, err := ParseIdentification(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrTruncatedMessage)
}
