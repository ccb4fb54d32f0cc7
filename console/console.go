package console

import (
	stderrors "errors"
	"unicode/utf8"

	"go.uber.org/zap"

	uefistrings "github.com/wippyai/uefi-strings"
	uefierrors "github.com/wippyai/uefi-strings/errors"
	"github.com/wippyai/uefi-strings/status"
)

// Chunk size for the encode loop. 32 code points per grapheme cluster is the
// UAX #15 recommendation; four clusters of headroom keeps the loop making
// progress on pathological input.
const outputChunk = 128

// Device mirrors the firmware text-output protocol function table. Methods
// return raw status codes; implementations are thin shims over firmware
// function pointers, or software fakes like Recorder.
type Device interface {
	// Reset resets the output device hardware. When extended is set the
	// device may run extended verification.
	Reset(extended bool) status.Status

	// OutputString writes a UCS-2 string at the current cursor position.
	OutputString(s uefistrings.CStr16) status.Status

	// TestString reports whether the device can render every character of
	// the string without actually writing it.
	TestString(s uefistrings.CStr16) status.Status

	// QueryMode returns the column and row count of a text mode index.
	QueryMode(index int32) (columns, rows int, st status.Status)

	// SetMode selects a text mode by index.
	SetMode(index int32) status.Status

	// EnableCursor shows or hides the cursor.
	EnableCursor(visible bool) status.Status

	// MaxMode returns the number of mode indices the device knows about;
	// not every index below it has to be supported.
	MaxMode() int32

	// CurrentMode returns the active mode index.
	CurrentMode() int32
}

// Mode is one text resolution supported by a device.
type Mode struct {
	Index   int32
	Columns int
	Rows    int
}

// Console wraps a Device with error-returning methods and an io.Writer that
// feeds the encoder in a resubmission loop.
type Console struct {
	dev             Device
	skipUnsupported bool
}

// Option configures a Console.
type Option func(*Console)

// SkipUnsupported drops characters the target encoding cannot represent
// instead of failing the write, mirroring the firmware unknown-glyph warning.
func SkipUnsupported() Option {
	return func(c *Console) { c.skipUnsupported = true }
}

// New wraps a device.
func New(dev Device, opts ...Option) *Console {
	c := &Console{dev: dev}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset resets the underlying device.
func (c *Console) Reset(extended bool) error {
	return c.dev.Reset(extended).Err()
}

// WriteString converts s to UCS-2 chunk by chunk and hands each chunk to the
// device. The encoder's remainder contract guarantees the loop terminates:
// either progress is made or the conversion reports an error.
func (c *Console) WriteString(s string) error {
	var buf [outputChunk]uint16
	for s != "" {
		chunk, rest, err := uefistrings.Encode(uefistrings.UCS2{}, s, buf[:])
		switch {
		case err == nil:
			if st := c.dev.OutputString(chunk); st.IsError() {
				return st.Err()
			}
			s = rest

		case c.skipUnsupported && stderrors.Is(err, &uefierrors.Error{
			Phase: uefierrors.PhaseEncode,
			Kind:  uefierrors.KindUnsupportedChar,
		}):
			off, _ := uefierrors.OffsetOf(err)
			if off > 0 {
				if werr := c.WriteString(s[:off]); werr != nil {
					return werr
				}
			}
			r, size := utf8.DecodeRuneInString(s[off:])
			Logger().Debug("skipping unrenderable character",
				zap.Int("offset", off),
				zap.Int32("rune", r))
			s = s[off+size:]

		default:
			return err
		}
	}
	return nil
}

// Write implements io.Writer. The byte slice must hold complete UTF-8
// sequences; callers like fmt.Fprintf always satisfy this.
func (c *Console) Write(p []byte) (int, error) {
	if err := c.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// TestString reports whether the device can render every character of s.
// Characters with no UCS-2 representation at all count as unrenderable
// rather than as an error, matching the protocol's intent.
func (c *Console) TestString(s string) (bool, error) {
	var buf [outputChunk]uint16
	for s != "" {
		chunk, rest, err := uefistrings.Encode(uefistrings.UCS2{}, s, buf[:])
		if err != nil {
			if stderrors.Is(err, &uefierrors.Error{
				Phase: uefierrors.PhaseEncode,
				Kind:  uefierrors.KindUnsupportedChar,
			}) {
				return false, nil
			}
			return false, err
		}
		st := c.dev.TestString(chunk)
		if st.IsError() {
			return false, st.Err()
		}
		if st != status.Success {
			return false, nil
		}
		s = rest
	}
	return true, nil
}

// Modes returns every mode the device actually supports, probing each index
// and skipping the unsupported ones.
func (c *Console) Modes() []Mode {
	max := c.dev.MaxMode()
	modes := make([]Mode, 0, int(max))
	for i := int32(0); i < max; i++ {
		cols, rows, st := c.dev.QueryMode(i)
		if !st.IsSuccess() {
			continue
		}
		modes = append(modes, Mode{Index: i, Columns: cols, Rows: rows})
	}
	return modes
}

// CurrentMode returns the active mode with its dimensions.
func (c *Console) CurrentMode() (Mode, error) {
	index := c.dev.CurrentMode()
	cols, rows, st := c.dev.QueryMode(index)
	if !st.IsSuccess() {
		return Mode{}, st.Err()
	}
	return Mode{Index: index, Columns: cols, Rows: rows}, nil
}

// SetMode selects a mode previously returned by Modes.
func (c *Console) SetMode(m Mode) error {
	return c.dev.SetMode(m.Index).Err()
}

// EnableCursor shows or hides the cursor.
func (c *Console) EnableCursor(visible bool) error {
	return c.dev.EnableCursor(visible).Err()
}
