package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which conversion direction the error occurred in
type Phase string

const (
	PhaseValidate Phase = "validate" // constructing a string view
	PhaseEncode   Phase = "encode"   // native string to firmware buffer
	PhaseDecode   Phase = "decode"   // firmware string to native buffer
)

// Kind categorizes the error
type Kind string

const (
	// KindInvalidChar reports a code unit with no valid character in the
	// encoding, such as a UCS-2 surrogate.
	KindInvalidChar Kind = "invalid_char"

	// KindInteriorNul reports a NUL before the final position, illegal in
	// a C-style string.
	KindInteriorNul Kind = "interior_nul"

	// KindNotNulTerminated reports a code-unit slice with no terminator.
	KindNotNulTerminated Kind = "not_nul_terminated"

	// KindUnsupportedChar reports a character with no representation in
	// the target encoding.
	KindUnsupportedChar Kind = "unsupported_char"

	// KindBufferTooSmall reports that no progress was possible: the
	// destination could not hold even one grapheme cluster.
	KindBufferTooSmall Kind = "buffer_too_small"
)

// NoOffset marks errors that have no meaningful character position.
const NoOffset = -1

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	// Offset locates the offending character: a code-unit index for
	// validation errors, an input byte offset for encoding errors, or
	// NoOffset when not applicable.
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset != NoOffset {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Matching considers Phase and
// Kind only, so sparse templates work with the standard errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the offending character position
func (b *Builder) Offset(pos int) *Builder {
	b.err.Offset = pos
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidChar creates a validation error for an undecodable code unit
func InvalidChar(pos int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidChar,
		Offset: pos,
		Detail: "code unit has no valid character in this encoding",
	}
}

// InteriorNul creates an embedded-NUL error for the given phase
func InteriorNul(phase Phase, pos int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInteriorNul,
		Offset: pos,
		Detail: "NUL before the end of the string",
	}
}

// NotNulTerminated creates a missing-terminator validation error
func NotNulTerminated() *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindNotNulTerminated,
		Offset: NoOffset,
		Detail: "no NUL terminator found",
	}
}

// UnsupportedChar creates an encoding error for an unrepresentable character
func UnsupportedChar(pos int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedChar,
		Offset: pos,
		Detail: "character has no representation in the target encoding",
	}
}

// BufferTooSmall creates a no-progress error for the given phase
func BufferTooSmall(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Offset: NoOffset,
		Detail: "destination cannot hold a single grapheme cluster",
	}
}

// OffsetOf extracts the character offset from an error, reporting false for
// non-library errors and errors without a position.
func OffsetOf(err error) (int, bool) {
	e, ok := err.(*Error)
	if !ok || e.Offset == NoOffset {
		return 0, false
	}
	return e.Offset, true
}
