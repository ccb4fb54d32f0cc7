package uefistrings

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/uefi-strings/errors"
)

func TestEncode_Simple(t *testing.T) {
	buf := make([]uint16, 8)
	s, rest, err := Encode(UCS2{}, "hi", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}
	want := []uint16{'h', 'i', 0}
	got := s.UnitsWithNul()
	if len(got) != len(want) {
		t.Fatalf("units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestEncode_CRLFExactFit(t *testing.T) {
	// "hi\n" into 4 usable units + terminator: the CR+LF pair fits.
	buf := make([]uint16, 5)
	s, rest, err := Encode(UCS2{}, "hi\n", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}
	want := []uint16{'h', 'i', '\r', '\n', 0}
	got := s.UnitsWithNul()
	if len(got) != len(want) {
		t.Fatalf("units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestEncode_CRLFDeferred(t *testing.T) {
	// 3 usable units: only one of CR+LF would fit, so the whole "\n"
	// cluster is deferred to the remainder.
	buf := make([]uint16, 4)
	s, rest, err := Encode(UCS2{}, "hi\n", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "\n" {
		t.Errorf("rest = %q, want %q", rest, "\n")
	}
	want := []uint16{'h', 'i', 0}
	got := s.UnitsWithNul()
	if len(got) != len(want) {
		t.Fatalf("units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestEncode_InteriorNul(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"at start", "\x00hi", 0},
		{"in middle", "h\x00i", 1},
		{"at end", "hi\x00", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]uint16, 16)
			_, _, err := Encode(UCS2{}, tt.input, buf)
			var ue *errors.Error
			if !stderrors.As(err, &ue) {
				t.Fatalf("expected structured error, got %v", err)
			}
			if ue.Kind != errors.KindInteriorNul || ue.Phase != errors.PhaseEncode {
				t.Errorf("got %s/%s, want encode/interior_nul", ue.Phase, ue.Kind)
			}
			if ue.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", ue.Offset, tt.offset)
			}
		})
	}
}

func TestEncode_UnsupportedChar(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		input  string
		offset int
	}{
		{"snowman in latin1", "latin1", "ab☃", 2},
		{"astral in ucs2", "ucs2", "ab\U0001F680cd", 2},
		{"after multibyte", "ucs2", "é\U0001F680", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.kind == "latin1" {
				_, _, err = Encode(Latin1{}, tt.input, make([]uint8, 16))
			} else {
				_, _, err = Encode(UCS2{}, tt.input, make([]uint16, 16))
			}
			var ue *errors.Error
			if !stderrors.As(err, &ue) {
				t.Fatalf("expected structured error, got %v", err)
			}
			if ue.Kind != errors.KindUnsupportedChar {
				t.Errorf("Kind = %s, want unsupported_char", ue.Kind)
			}
			if ue.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", ue.Offset, tt.offset)
			}
		})
	}
}

func TestEncode_NoProgress(t *testing.T) {
	tests := []struct {
		name string
		buf  []uint16
	}{
		{"zero length", nil},
		{"terminator only", make([]uint16, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Encode(UCS2{}, "x", tt.buf)
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindBufferTooSmall}) {
				t.Errorf("got %v, want encode/buffer_too_small", err)
			}
		})
	}
}

func TestEncode_ZalgoNoProgress(t *testing.T) {
	// One base character with four combining marks: a single cluster of
	// five units that cannot fit in three usable slots.
	input := "é̂̃̄"
	_, _, err := Encode(UCS2{}, input, make([]uint16, 4))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindBufferTooSmall}) {
		t.Errorf("got %v, want encode/buffer_too_small", err)
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	s, rest, err := Encode(UCS2{}, "", make([]uint16, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" || !s.IsEmpty() {
		t.Errorf("empty input: rest=%q IsEmpty=%v", rest, s.IsEmpty())
	}
}

func TestEncode_ClusterAtomicity(t *testing.T) {
	// "a" then "e" with a combining acute: clusters of one and two units.
	// With two usable slots only "a" commits; the combining cluster must
	// not split.
	buf := make([]uint16, 3)
	s, rest, err := Encode(UCS2{}, "aé", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 1 || s.Units()[0] != 'a' {
		t.Errorf("committed units = %v, want [a]", s.Units())
	}
	if rest != "é" {
		t.Errorf("rest = %q, want %q", rest, "é")
	}
}

func TestEncode_MonotonicTruncation(t *testing.T) {
	input := "one\ntwo é☃ three\nfour é̂ five"
	full := make([]uint16, 64)
	ref, rest, err := Encode(UCS2{}, input, full)
	if err != nil || rest != "" {
		t.Fatalf("reference encode failed: rest=%q err=%v", rest, err)
	}
	refUnits := ref.Units()

	prevConsumed := len(input)
	for capacity := len(full); capacity >= 1; capacity-- {
		s, rest, err := Encode(UCS2{}, input, make([]uint16, capacity))
		if err != nil {
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindBufferTooSmall}) {
				t.Fatalf("capacity %d: unexpected error %v", capacity, err)
			}
			prevConsumed = 0
			continue
		}

		consumed := len(input) - len(rest)
		if consumed > prevConsumed {
			t.Errorf("capacity %d: consumed %d > previous %d", capacity, consumed, prevConsumed)
		}
		prevConsumed = consumed

		// The committed output must be a prefix of the reference.
		units := s.Units()
		if len(units) > len(refUnits) {
			t.Fatalf("capacity %d: output longer than reference", capacity)
		}
		for i := range units {
			if units[i] != refUnits[i] {
				t.Errorf("capacity %d: unit[%d] = %#x, want %#x", capacity, i, units[i], refUnits[i])
			}
		}

		if rest != "" && consumed == 0 {
			t.Errorf("capacity %d: empty success with leftover input", capacity)
		}
	}
}

func TestEncode_LoopUntilDone(t *testing.T) {
	input := "chunked conversion exercise\nwith line breaks\n"
	var collected []uint16

	remaining := input
	for remaining != "" {
		s, rest, err := Encode(UCS2{}, remaining, make([]uint16, 7))
		if err != nil {
			t.Fatalf("encode %q: %v", remaining, err)
		}
		collected = append(collected, s.Units()...)
		remaining = rest
	}

	want := strings.ReplaceAll(input, "\n", "\r\n")
	got := FromUnitsWithNulUnchecked(UCS2{}, append(collected, 0)).String()
	if got != want {
		t.Errorf("reassembled = %q, want %q", got, want)
	}
}

func TestEncode_Latin1(t *testing.T) {
	buf := make([]uint8, 16)
	s, rest, err := Encode(Latin1{}, "café\n", buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" {
		t.Errorf("rest = %q", rest)
	}
	want := []uint8{'c', 'a', 'f', 0xE9, '\r', '\n', 0}
	got := s.UnitsWithNul()
	if len(got) != len(want) {
		t.Fatalf("units = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}
