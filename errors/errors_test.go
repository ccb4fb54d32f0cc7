package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindUnsupportedChar,
				Offset: 7,
				Detail: "no equivalent",
			},
			contains: []string{"[encode]", "unsupported_char", "offset 7", "no equivalent"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindBufferTooSmall,
				Offset: NoOffset,
			},
			contains: []string{"[decode]", "buffer_too_small"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindInvalidChar,
				Offset: 2,
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[validate]", "invalid_char", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoOffsetOmitted(t *testing.T) {
	err := NotNulTerminated()
	if strings.Contains(err.Error(), "offset") {
		t.Errorf("message %q should not mention an offset", err.Error())
	}
}

func TestError_Is(t *testing.T) {
	err := InteriorNul(PhaseEncode, 4)

	if !errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindInteriorNul}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseValidate, Kind: KindInteriorNul}) {
		t.Error("unexpected match across phases")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindUnsupportedChar}) {
		t.Error("unexpected match across kinds")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(PhaseDecode, KindBufferTooSmall).Cause(cause).Build()

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through Unwrap")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseEncode, KindUnsupportedChar).
		Offset(12).
		Detail("rune %q out of range", 'x').
		Build()

	if err.Phase != PhaseEncode || err.Kind != KindUnsupportedChar {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Offset != 12 {
		t.Errorf("Offset = %d, want 12", err.Offset)
	}
	if !strings.Contains(err.Detail, `"x"`) {
		t.Errorf("Detail = %q, want formatted rune", err.Detail)
	}
}

func TestOffsetOf(t *testing.T) {
	if pos, ok := OffsetOf(UnsupportedChar(9)); !ok || pos != 9 {
		t.Errorf("OffsetOf = %d, %v; want 9, true", pos, ok)
	}
	if _, ok := OffsetOf(BufferTooSmall(PhaseEncode)); ok {
		t.Error("buffer_too_small should carry no offset")
	}
	if _, ok := OffsetOf(errors.New("plain")); ok {
		t.Error("plain errors should carry no offset")
	}
}

func TestConstructors_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"invalid char", InvalidChar(0), PhaseValidate, KindInvalidChar},
		{"not nul terminated", NotNulTerminated(), PhaseValidate, KindNotNulTerminated},
		{"unsupported char", UnsupportedChar(3), PhaseEncode, KindUnsupportedChar},
		{"buffer too small", BufferTooSmall(PhaseDecode), PhaseDecode, KindBufferTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
				t.Errorf("got %s/%s, want %s/%s", tt.err.Phase, tt.err.Kind, tt.phase, tt.kind)
			}
		})
	}
}
