// Package packing implements the bit-level value codecs used by GRIB2 data
// sections: a bounds-checked big-endian bit reader and the unpackers for the
// three data representation templates the JMA landslide-risk feed uses.
//
// # Overview
//
// GRIB2 packs grid values as sequences of unsigned integers of arbitrary bit
// width, most significant bit first, spanning byte boundaries. All cursor
// arithmetic goes through BitReader, which fails loudly on any read past the
// end of its buffer.
//
// Three unpackers reconstruct physical values from packed payloads:
//
//   - UnpackSimple: template 5.0, one fixed-width integer per present point,
//     scaled as Y = (R + X*2^E) / 10^D.
//   - UnpackComplexSD: template 5.3, group-packed first- or second-order
//     spatial differences reconstructed by prefix-sum passes and then
//     scaled like simple packing.
//   - UnpackRunLength: template 5.200 (JMA), level indices interleaved with
//     base-LNGU run-length digits.
//
// All unpackers are pure functions of their inputs and safe to call from
// independent goroutines on independent buffers.
package packing
