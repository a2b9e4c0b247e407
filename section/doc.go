// Package section defines the typed records for the GRIB2 sections that make
// up a message, and the binary layouts used to parse them.
//
// # Message Structure
//
// A GRIB2 message is a sequence of numbered sections between a fixed 16-byte
// indicator and the 4-byte "7777" end marker:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ 0 Indicator (16 bytes, fixed)                             │
//	│   "GRIB" magic, discipline, edition (=2), total length    │
//	├──────────────────────────────────────────────────────────┤
//	│ 1 Identification                                          │
//	│   originating centre, reference time                      │
//	├──────────────────────────────────────────────────────────┤
//	│ 2 Local use (optional, opaque)                            │
//	├──────────────────────────────────────────────────────────┤
//	│ 3 Grid definition                                         │
//	│   template number, point count, coordinates               │
//	├──────────────────────────────────────────────────────────┤
//	│ 4 Product definition                                      │
//	│   parameter category/number, forecast offset              │
//	├──────────────────────────────────────────────────────────┤
//	│ 5 Data representation                                     │
//	│   packing template and its scaling metadata               │
//	├──────────────────────────────────────────────────────────┤
//	│ 6 Bitmap (optional per-point presence mask)               │
//	├──────────────────────────────────────────────────────────┤
//	│ 7 Data (packed value payload)                             │
//	├──────────────────────────────────────────────────────────┤
//	│ 8 End marker "7777"                                       │
//	└──────────────────────────────────────────────────────────┘
//
// Sections 2..7 may repeat for messages carrying several fields under one
// identification. Every section except 0 and 8 starts with a 4-byte
// big-endian length and a 1-byte section number; the parsers in this package
// receive the payload after that header.
//
// Section records form a closed set: each implements the Section interface
// and nothing outside this package can add a kind, so decoders switching
// over record types stay exhaustive.
package section
