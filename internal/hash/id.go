// Package hash provides content fingerprints for decoded grids.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Values computes the xxHash64 digest of a float64 slice.
//
// Values are hashed by their IEEE 754 bit patterns in little-endian order,
// so NaN sentinels hash deterministically and equal slices always produce
// equal digests.
func Values(vals []float64) uint64 {
	d := xxhash.New()

	var buf [512]byte
	n := 0
	for _, v := range vals {
		binary.LittleEndian.PutUint64(buf[n:], math.Float64bits(v))
		n += 8
		if n == len(buf) {
			_, _ = d.Write(buf[:])
			n = 0
		}
	}
	if n > 0 {
		_, _ = d.Write(buf[:n])
	}

	return d.Sum64()
}
