// Package ucs2 converts whole UCS-2LE byte payloads, the layout UEFI uses
// for variable data such as BootOrder descriptions and device path labels.
//
// Unlike the buffer-bounded codec in the root package, these helpers work on
// complete payloads and allocate their results; use them when the data is
// already in hand rather than streaming through a fixed firmware buffer.
package ucs2

import (
	"errors"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrOddLength reports a payload that cannot be UCS-2: the byte count is not
// a multiple of the 16-bit unit size.
var ErrOddLength = errors.New("ucs2: payload length is not a multiple of 2")

var codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decode converts a UCS-2LE payload to a Go string. A NUL terminator, if
// present, is removed; firmware is inconsistent about including it in
// variable data, so both forms decode to the same string.
func Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	out, _, err := transform.Bytes(codec.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	if n := len(out); n > 0 && out[n-1] == 0 {
		out = out[:n-1]
	}
	return string(out), nil
}

// Encode converts a Go string to a NUL-terminated UCS-2LE payload.
func Encode(s string) ([]byte, error) {
	out, _, err := transform.Bytes(codec.NewEncoder(), []byte(s+"\x00"))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeNoTerm converts a Go string to a UCS-2LE payload without a
// terminator, for length-prefixed structures.
func EncodeNoTerm(s string) ([]byte, error) {
	out, _, err := transform.Bytes(codec.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}
