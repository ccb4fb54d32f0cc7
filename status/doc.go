// Package status defines the UEFI status codes returned by firmware
// interfaces and their classification rules.
//
// A status is a register-width integer. The high bit distinguishes errors
// from successes; warnings share the success range:
//
//	0                    Success
//	1 .. high-bit-1      Warnings (operation completed with a caveat)
//	high-bit | n         Errors
//
// The package also bridges the library's structured errors onto status codes
// via FromError, and status codes back onto Go errors via Status.Err, so
// firmware-facing call sites can speak either vocabulary.
package status
