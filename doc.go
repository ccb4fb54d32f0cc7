// Package uefistrings converts between native Go strings and the fixed-width,
// NUL-terminated string encodings used by UEFI firmware.
//
// UEFI understands two text encodings: an 8-bit Latin-1 encoding and a 16-bit
// UCS-2 encoding (basic multilingual plane only, no surrogate pairs). Both use
// C-style NUL termination and CR+LF line endings. This package provides the
// bidirectional codec between those encodings and UTF-8, operating entirely
// over caller-supplied buffers:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Go string (UTF-8) ←→ [Encode/Decode] ←→ firmware buffer │
//	└──────────────────────────────────────────────────────────┘
//
// # Key Types
//
//	CharKind  - Strategy for one firmware encoding (Latin1, UCS2)
//	CStr      - Borrowed, validated NUL-terminated string view
//	CStr8     - Latin-1 view (CStr[uint8])
//	CStr16    - UCS-2 view (CStr[uint16])
//
// # Encoding Flow
//
//	buf := make([]uint16, 64)
//	s, rest, err := uefistrings.Encode(uefistrings.UCS2{}, "hello\n", buf)
//
// The destination's last slot is reserved for the NUL terminator. Input is
// consumed with grapheme-cluster granularity: a cluster is either written
// whole or not at all, so truncated output never ends mid-grapheme. Native
// "\n" becomes "\r\n" on the way out. Unconsumed input is returned so callers
// can loop until the whole string is converted.
//
// # Decoding Flow
//
//	out := make([]byte, 256)
//	text, rest, err := uefistrings.Decode(s, out)
//
// Decoding undoes the CR+LF convention and likewise truncates only on
// grapheme-cluster boundaries, returning the unconverted suffix of the
// firmware string.
//
// # Buffer Sizing
//
// "No progress possible" (a buffer too small for even one grapheme cluster of
// a non-empty input) is reported as an error rather than an empty success, so
// a resubmission loop can never spin forever. Unicode's UAX #15 recommends
// budgeting at least 32 code points per cluster for pathological input.
//
// # Packages
//
//	uefi-strings/      Core codec: kinds, views, Encode, Decode
//	├── errors/        Structured error types with phase, kind and offset
//	├── status/        UEFI status codes and error classification
//	├── console/       Text-output protocol adapter driving the encoder
//	└── ucs2/          Bulk UCS-2LE payload conversion for variable data
//
// # Thread Safety
//
// All conversions are pure functions over caller-owned buffers; there is no
// shared state. Distinct calls may run concurrently as long as they do not
// share a destination buffer.
package uefistrings
