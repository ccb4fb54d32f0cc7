// Package console adapts the firmware text-output protocol to Go I/O.
//
// The Device interface mirrors the protocol's function table: methods take
// UCS-2 firmware strings and return raw status codes. Console wraps a Device
// with error returns, an io.Writer, and mode enumeration, and drives the
// uefistrings encoder in a resubmission loop over a fixed chunk buffer, so
// writes of any length work with constant memory:
//
//	con := console.New(dev)
//	fmt.Fprintf(con, "booted in %s\n", elapsed)
//
// Characters the target encoding cannot represent fail the write by default;
// with the SkipUnsupported option they are dropped and logged instead, which
// matches how firmware consoles degrade (the unknown-glyph warning).
//
// Recorder is a software-backed Device for tests and demos.
package console
