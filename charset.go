package uefistrings

// CodeUnit constrains the fixed-width integer representations used by the
// firmware encodings: 8-bit for Latin-1, 16-bit for UCS-2.
type CodeUnit interface {
	~uint8 | ~uint16
}

// CharKind describes one firmware text encoding. It maps between native
// Unicode scalar values and the encoding's code units and names the
// encoding's reserved sentinel units.
//
// Implementations must be stateless; the codec calls them from pure
// conversion functions.
type CharKind[U CodeUnit] interface {
	// DecodeUnit converts a code unit to a Unicode scalar value.
	// It reports false for units that are not valid in this encoding.
	DecodeUnit(u U) (rune, bool)

	// EncodeRune converts a Unicode scalar value to a code unit.
	// It reports false for runes outside the encoding's repertoire.
	EncodeRune(r rune) (U, bool)

	// Nul returns the encoding's string terminator unit.
	Nul() U

	// CarriageReturn returns the encoding's carriage-return unit, used
	// when normalizing "\n" to the firmware's CR+LF line endings.
	CarriageReturn() U
}

// Latin1 is the 8-bit firmware encoding. Every unit value is a valid
// character; runes above U+00FF are not representable.
type Latin1 struct{}

func (Latin1) DecodeUnit(u uint8) (rune, bool) {
	return rune(u), true
}

func (Latin1) EncodeRune(r rune) (uint8, bool) {
	if r < 0 || r > 0xFF {
		return 0, false
	}
	return uint8(r), true
}

func (Latin1) Nul() uint8 { return 0 }

func (Latin1) CarriageReturn() uint8 { return '\r' }

// UCS2 is the 16-bit firmware encoding: the basic multilingual plane with no
// surrogate-pair composition. Units in the surrogate range are invalid, and
// runes beyond U+FFFF are not representable.
type UCS2 struct{}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

func (UCS2) DecodeUnit(u uint16) (rune, bool) {
	if u >= surrogateMin && u <= surrogateMax {
		return 0, false
	}
	return rune(u), true
}

func (UCS2) EncodeRune(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	if r >= surrogateMin && r <= surrogateMax {
		return 0, false
	}
	return uint16(r), true
}

func (UCS2) Nul() uint16 { return 0 }

func (UCS2) CarriageReturn() uint16 { return '\r' }
