package uefistrings

import (
	"strings"
	"unsafe"

	"github.com/wippyai/uefi-strings/errors"
)

// CStr is a borrowed view over a NUL-terminated firmware string. It never
// owns storage: the view is valid only as long as the backing buffer is in
// scope and unmodified.
//
// Invariants held by every non-zero CStr:
//
//  1. the last unit is the kind's NUL terminator,
//  2. no unit before the last is NUL,
//  3. every unit decodes to a valid character of the kind.
//
// The zero CStr represents "no string" (for example, an absent decode
// remainder) and is reported by IsZero.
type CStr[U CodeUnit] struct {
	kind  CharKind[U]
	units []U // terminator included
}

// CStr8 is a Latin-1 NUL-terminated string view.
type CStr8 = CStr[uint8]

// CStr16 is a UCS-2 NUL-terminated string view.
type CStr16 = CStr[uint16]

// FromPtr wraps a raw firmware string pointer, scanning forward to the first
// NUL unit to discover its length.
//
// The caller must guarantee that ptr references valid, NUL-terminated memory
// holding only valid code units; the scan is unbounded and nothing here can
// verify either property. This is the single trust boundary with
// firmware-owned data.
func FromPtr[U CodeUnit](kind CharKind[U], ptr *U) CStr[U] {
	nul := kind.Nul()
	size := unsafe.Sizeof(*ptr)
	n := 0
	for *(*U)(unsafe.Add(unsafe.Pointer(ptr), uintptr(n)*size)) != nul {
		n++
	}
	return FromUnitsWithNulUnchecked(kind, unsafe.Slice(ptr, n+1))
}

// FromUnitsWithNul wraps a code-unit slice after validating the CStr
// invariants. Positions are checked in slice order, so the first defect wins:
// an undecodable unit reports invalid_char, a NUL before the final position
// reports interior_nul, and a slice with no NUL at all reports
// not_nul_terminated.
func FromUnitsWithNul[U CodeUnit](kind CharKind[U], units []U) (CStr[U], error) {
	nul := kind.Nul()
	for pos, u := range units {
		if _, ok := kind.DecodeUnit(u); !ok {
			return CStr[U]{}, errors.InvalidChar(pos)
		}
		if u == nul {
			if pos != len(units)-1 {
				return CStr[U]{}, errors.InteriorNul(errors.PhaseValidate, pos)
			}
			return FromUnitsWithNulUnchecked(kind, units), nil
		}
	}
	return CStr[U]{}, errors.NotNulTerminated()
}

// FromUnitsWithNulUnchecked wraps a code-unit slice without validation.
// The caller must uphold the CStr invariants.
func FromUnitsWithNulUnchecked[U CodeUnit](kind CharKind[U], units []U) CStr[U] {
	return CStr[U]{kind: kind, units: units}
}

// IsZero reports whether this is the zero view, meaning no string at all.
// An empty string (a lone terminator) is not zero.
func (s CStr[U]) IsZero() bool {
	return s.units == nil
}

// IsEmpty reports whether the string holds no characters.
func (s CStr[U]) IsEmpty() bool {
	return len(s.units) <= 1
}

// Len returns the number of code units excluding the terminator.
func (s CStr[U]) Len() int {
	if len(s.units) == 0 {
		return 0
	}
	return len(s.units) - 1
}

// Kind returns the character kind this view was constructed with.
func (s CStr[U]) Kind() CharKind[U] {
	return s.kind
}

// Ptr returns the raw pointer to the first code unit, suitable for handing
// to firmware interfaces. The pointer is only valid while the backing
// buffer is.
func (s CStr[U]) Ptr() *U {
	if len(s.units) == 0 {
		return nil
	}
	return &s.units[0]
}

// Units returns the code units excluding the terminator.
func (s CStr[U]) Units() []U {
	if len(s.units) == 0 {
		return nil
	}
	return s.units[:len(s.units)-1]
}

// UnitsWithNul returns the code units including the terminator.
func (s CStr[U]) UnitsWithNul() []U {
	return s.units
}

// String decodes the full contents into a native string, allocating. Line
// endings are returned as stored; use Decode for CR+LF normalization and
// buffer-bounded conversion.
func (s CStr[U]) String() string {
	var b strings.Builder
	b.Grow(s.Len())
	for _, u := range s.Units() {
		ch, _ := s.kind.DecodeUnit(u)
		b.WriteRune(ch)
	}
	return b.String()
}

// Iter returns a double-ended cursor over (unit offset, character) pairs.
// The terminator is not yielded.
func (s CStr[U]) Iter() *CharIter[U] {
	return &CharIter[U]{str: s, back: s.Len()}
}

// CharIter walks the characters of a CStr from either end. Next and Prev
// consume from opposite ends and stop once the ends meet.
type CharIter[U CodeUnit] struct {
	str   CStr[U]
	front int
	back  int
}

// Next yields the next character from the front.
func (it *CharIter[U]) Next() (pos int, ch rune, ok bool) {
	if it.front >= it.back {
		return 0, 0, false
	}
	pos = it.front
	it.front++
	ch, _ = it.str.kind.DecodeUnit(it.str.units[pos])
	return pos, ch, true
}

// Prev yields the next character from the back.
func (it *CharIter[U]) Prev() (pos int, ch rune, ok bool) {
	if it.back <= it.front {
		return 0, 0, false
	}
	it.back--
	pos = it.back
	ch, _ = it.str.kind.DecodeUnit(it.str.units[pos])
	return pos, ch, true
}
