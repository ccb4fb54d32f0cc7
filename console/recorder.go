package console

import (
	"strings"

	uefistrings "github.com/wippyai/uefi-strings"
	"github.com/wippyai/uefi-strings/status"
)

// Recorder is a software-backed Device that records everything written to
// it. It stands in for firmware output in tests and demos: cursor movement
// follows the protocol's CR/LF rules and unrenderable characters are skipped
// with the unknown-glyph warning, like real console firmware.
type Recorder struct {
	// GlyphTest decides which characters the fake device can render.
	// Nil renders everything.
	GlyphTest func(r rune) bool

	out    strings.Builder
	modes  []Mode
	mode   int32
	col    int
	row    int
	cursor bool
	resets int
}

// NewRecorder creates a recorder advertising the given text modes. With no
// modes it advertises the protocol's mandatory 80x25 mode 0.
func NewRecorder(modes ...Mode) *Recorder {
	if len(modes) == 0 {
		modes = []Mode{{Index: 0, Columns: 80, Rows: 25}}
	}
	return &Recorder{modes: modes, cursor: true}
}

// Contents returns everything output so far, with firmware CR+LF stored
// as written.
func (r *Recorder) Contents() string {
	return r.out.String()
}

// Cursor returns the current cursor position.
func (r *Recorder) Cursor() (column, row int) {
	return r.col, r.row
}

// Resets returns how many times the device was reset.
func (r *Recorder) Resets() int {
	return r.resets
}

func (r *Recorder) Reset(extended bool) status.Status {
	r.out.Reset()
	r.col, r.row = 0, 0
	r.resets++
	return status.Success
}

func (r *Recorder) OutputString(s uefistrings.CStr16) status.Status {
	st := status.Success
	it := s.Iter()
	for {
		_, ch, ok := it.Next()
		if !ok {
			break
		}
		switch ch {
		case '\r':
			r.col = 0
			r.out.WriteRune(ch)
		case '\n':
			r.row++
			r.out.WriteRune(ch)
		default:
			if r.GlyphTest != nil && !r.GlyphTest(ch) {
				st = status.WarnUnknownGlyph
				continue
			}
			r.col++
			r.out.WriteRune(ch)
		}
	}
	return st
}

func (r *Recorder) TestString(s uefistrings.CStr16) status.Status {
	if r.GlyphTest == nil {
		return status.Success
	}
	it := s.Iter()
	for {
		_, ch, ok := it.Next()
		if !ok {
			return status.Success
		}
		if ch != '\r' && ch != '\n' && !r.GlyphTest(ch) {
			return status.Unsupported
		}
	}
}

func (r *Recorder) QueryMode(index int32) (int, int, status.Status) {
	for _, m := range r.modes {
		if m.Index == index {
			return m.Columns, m.Rows, status.Success
		}
	}
	return 0, 0, status.Unsupported
}

func (r *Recorder) SetMode(index int32) status.Status {
	for _, m := range r.modes {
		if m.Index == index {
			r.mode = index
			return status.Success
		}
	}
	return status.Unsupported
}

func (r *Recorder) EnableCursor(visible bool) status.Status {
	r.cursor = visible
	return status.Success
}

func (r *Recorder) MaxMode() int32 {
	max := int32(0)
	for _, m := range r.modes {
		if m.Index >= max {
			max = m.Index + 1
		}
	}
	return max
}

func (r *Recorder) CurrentMode() int32 {
	return r.mode
}
