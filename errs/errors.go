// Package errs defines the sentinel errors shared by all doshamesh packages.
//
// The errors fall into three categories that callers can test for with
// errors.Is, either against an individual sentinel or against one of the
// category helpers:
//
//   - Structural: the section layout of the current message is malformed.
//     Decoding of that message aborts; independent messages in the same
//     buffer remain decodable.
//   - Content: the message is structurally sound but uses a grid or packing
//     feature this decoder does not support, or its packed payload is too
//     short. Fatal for the current message.
//   - Semantic warnings: recoverable conditions such as an unrecognized
//     parameter code. Decoding continues and the condition is attached to
//     the returned grid as a diagnostic.
package errs

import "errors"

// Structural errors: the section layout of the message is broken.
var (
	// ErrUnsupportedEdition indicates the indicator section declares a GRIB
	// edition other than 2.
	ErrUnsupportedEdition = errors.New("unsupported GRIB edition")

	// ErrSectionOrder indicates sections appeared out of the order the GRIB2
	// layout permits.
	ErrSectionOrder = errors.New("section out of order")

	// ErrTruncatedMessage indicates a section header or payload extends past
	// the end of the buffer, or the message ends before its "7777" marker.
	ErrTruncatedMessage = errors.New("truncated message")

	// ErrGridSizeMismatch indicates rows x columns from the grid definition
	// template disagrees with the declared total point count.
	ErrGridSizeMismatch = errors.New("grid size mismatch")
)

// Content errors: the message uses a feature this decoder does not support,
// or its packed data payload is inconsistent with its metadata.
var (
	// ErrUnsupportedGridTemplate indicates a grid definition template other
	// than 3.0 (equally spaced latitude/longitude).
	ErrUnsupportedGridTemplate = errors.New("unsupported grid definition template")

	// ErrUnsupportedPackingType indicates a data representation template
	// other than 5.0, 5.3 or 5.200.
	ErrUnsupportedPackingType = errors.New("unsupported data representation template")

	// ErrTruncatedData indicates a bit-level read would run past the end of
	// the data section payload.
	ErrTruncatedData = errors.New("truncated data section")
)

// Semantic warnings: recoverable, reported as grid diagnostics.
var (
	// ErrUnknownParameter indicates a discipline/category/number triple with
	// no entry in the parameter code table.
	ErrUnknownParameter = errors.New("unknown parameter code")
)

// Bit cursor errors, surfaced by packing.BitReader.
var (
	// ErrOutOfBounds indicates a read past the end of the underlying buffer.
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrAlignment indicates a whole-byte read attempted at a bit position
	// that is not byte aligned.
	ErrAlignment = errors.New("bit cursor not byte aligned")
)

// IsStructural reports whether err is (or wraps) one of the structural
// layout errors.
func IsStructural(err error) bool {
	return errors.Is(err, ErrUnsupportedEdition) ||
		errors.Is(err, ErrSectionOrder) ||
		errors.Is(err, ErrTruncatedMessage) ||
		errors.Is(err, ErrGridSizeMismatch)
}

// IsContent reports whether err is (or wraps) one of the content errors.
func IsContent(err error) bool {
	return errors.Is(err, ErrUnsupportedGridTemplate) ||
		errors.Is(err, ErrUnsupportedPackingType) ||
		errors.Is(err, ErrTruncatedData)
}
