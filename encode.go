package uefistrings

import (
	"github.com/rivo/uniseg"

	"github.com/wippyai/uefi-strings/errors"
)

// Encode converts a native string into a caller-supplied firmware buffer,
// appending a NUL terminator. The last slot of buf is reserved for the
// terminator, so a buffer of length n holds at most n-1 content units.
//
// Input is consumed with grapheme-cluster granularity: a cluster is only
// committed once every one of its code units (including any carriage return
// inserted in front of a line feed) fits in the remaining space. Output
// therefore never ends mid-grapheme. On success the returned view covers
// exactly the written prefix, and rest holds the unconsumed input suffix
// ("" when the input was fully converted).
//
// Failures:
//
//   - interior_nul: the input embeds a NUL, illegal in a C-style string.
//     Offset is the byte offset of the NUL in the input.
//   - unsupported_char: a rune has no representation in the target
//     encoding. Offset is the rune's byte offset in the input.
//   - buffer_too_small: a non-empty input made no progress at all. Reported
//     instead of an empty success so resubmission loops terminate.
func Encode[U CodeUnit](kind CharKind[U], input string, buf []U) (CStr[U], string, error) {
	if len(buf) == 0 {
		return CStr[U]{}, "", errors.BufferTooSmall(errors.PhaseEncode)
	}

	// Last slot is reserved for the terminator.
	capacity := len(buf) - 1

	// committedIn/committedOut only advance on whole-cluster boundaries.
	var committedIn, committedOut, outIdx int

	gr := uniseg.NewGraphemes(input)
graphemes:
	for gr.Next() {
		start, end := gr.Positions()
		for i, ch := range gr.Str() {
			if ch == 0 {
				return CStr[U]{}, "", errors.InteriorNul(errors.PhaseEncode, start+i)
			}

			// Firmware line endings are CR+LF.
			if ch == '\n' {
				if outIdx >= capacity {
					break graphemes
				}
				buf[outIdx] = kind.CarriageReturn()
				outIdx++
			}

			u, ok := kind.EncodeRune(ch)
			if !ok {
				return CStr[U]{}, "", errors.UnsupportedChar(start + i)
			}

			if outIdx >= capacity {
				break graphemes
			}
			buf[outIdx] = u
			outIdx++
		}

		committedIn = end
		committedOut = outIdx
	}

	rest := ""
	if committedIn < len(input) {
		rest = input[committedIn:]
	}

	if committedIn == 0 && rest != "" {
		return CStr[U]{}, "", errors.BufferTooSmall(errors.PhaseEncode)
	}

	buf[committedOut] = kind.Nul()
	out := FromUnitsWithNulUnchecked(kind, buf[:committedOut+1])
	return out, rest, nil
}
