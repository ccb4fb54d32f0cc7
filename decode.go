package uefistrings

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/wippyai/uefi-strings/errors"
)

// Decode converts a firmware string view into a caller-supplied byte buffer
// as UTF-8. CR+LF sequences collapse to a single "\n" on the way back to
// native line endings.
//
// On success the returned slice is a prefix of buf holding valid UTF-8, and
// rest is the unconverted suffix of the input view (the zero CStr when the
// input was fully consumed). If the buffer fills mid-string, the output is
// backed off to the previous grapheme-cluster boundary so it never ends
// mid-grapheme; if that backoff leaves nothing, buffer_too_small is reported
// instead of an empty success.
func Decode[U CodeUnit](input CStr[U], buf []byte) ([]byte, CStr[U], error) {
	outIdx := 0
	afterCR := false
	truncated := false

	for _, u := range input.Units() {
		// Valid by the CStr invariants.
		ch, _ := input.kind.DecodeUnit(u)

		if len(buf)-outIdx < utf8.RuneLen(ch) {
			truncated = true
			break
		}
		outIdx += utf8.EncodeRune(buf[outIdx:], ch)

		// Collapse CR+LF in place. Both are single bytes in UTF-8, so the
		// CR sits exactly two bytes back.
		if afterCR && ch == '\n' {
			buf[outIdx-2] = '\n'
			outIdx--
		}
		afterCR = ch == '\r'
	}

	if !truncated {
		return buf[:outIdx], CStr[U]{}, nil
	}

	// The last decoded cluster may be incomplete, so drop it and resume
	// from its first code unit on the next call.
	boundary := lastClusterStart(buf[:outIdx])
	if boundary == 0 {
		return nil, CStr[U]{}, errors.BufferTooSmall(errors.PhaseDecode)
	}

	consumed := unitsForOutput(input, boundary)
	rest := FromUnitsWithNulUnchecked(input.kind, input.UnitsWithNul()[consumed:])
	return buf[:boundary], rest, nil
}

// DecodeString is a convenience wrapper around Decode that returns the
// converted prefix as a string. rest follows the same zero-value convention
// as Decode.
func DecodeString[U CodeUnit](input CStr[U], buf []byte) (string, CStr[U], error) {
	out, rest, err := Decode(input, buf)
	return string(out), rest, err
}

// lastClusterStart returns the byte offset where the final grapheme cluster
// of b begins, or 0 if b holds at most one cluster.
func lastClusterStart(b []byte) int {
	start, offset := 0, 0
	state := -1
	var cluster []byte
	for len(b) > 0 {
		cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		start = offset
		offset += len(cluster)
	}
	return start
}

// unitsForOutput replays the decode loop, counting how many source code
// units produce exactly target bytes of output. The replay applies the same
// CR+LF collapse as Decode, so a merged pair counts as two source units for
// its single output byte; this is what makes the remainder exact even after
// the lossy line-ending transform.
func unitsForOutput[U CodeUnit](input CStr[U], target int) int {
	outLen, consumed := 0, 0
	afterCR := false
	for _, u := range input.Units() {
		ch, _ := input.kind.DecodeUnit(u)
		next := outLen + utf8.RuneLen(ch)
		if afterCR && ch == '\n' {
			next--
		}
		if next > target {
			break
		}
		outLen = next
		consumed++
		afterCR = ch == '\r'
	}
	return consumed
}
