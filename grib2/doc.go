// Package grib2 decodes GRIB2 messages into dense numeric grids.
//
// The decoder targets the profile used by the JMA landslide-risk mesh feed:
// equally spaced latitude/longitude grids (template 3.0) packed with simple
// packing (5.0), complex packing with spatial differencing (5.3), or JMA
// run-length packing (5.200).
//
// # Basic Usage
//
//	grids, err := grib2.DecodeAll(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range grids {
//	    fmt.Printf("%s %s: %dx%d points\n",
//	        g.ReferenceTime, g.Parameter, g.Coordinates.NumRows, g.Coordinates.NumCols)
//	}
//
// A buffer may hold several concatenated messages, and a message may carry
// several fields (repeated bitmap/data section pairs under one
// identification); one Grid is produced per field. For streaming access use
// Decode, which yields grids lazily:
//
//	for g, err := range grib2.Decode(raw) {
//	    if err != nil {
//	        // fatal for that message only; iteration continues with the
//	        // next message in the buffer
//	        continue
//	    }
//	    consume(g)
//	}
//
// # Error Model
//
// Structural and content errors (see the errs package) abort the current
// message but never corrupt the decoding of subsequent independent messages
// in the same buffer. Recoverable conditions, such as a parameter code with
// no table entry, are attached to the returned Grid as diagnostics.
//
// Decoding a message is a pure, CPU-bound computation over an in-memory
// buffer with no shared state: distinct buffers may be decoded concurrently
// without locking.
package grib2
