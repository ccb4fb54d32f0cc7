// Package errors provides structured error types for the uefi-strings library.
//
// Errors are categorized by Phase (which conversion direction failed) and Kind
// (what went wrong). The Error type carries the offset of the offending
// character where one exists: the code-unit index for validation failures, or
// the input byte offset for encoding failures.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindUnsupportedChar).
//		Offset(12).
//		Detail("no UCS-2 representation").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InteriorNul(errors.PhaseValidate, 3)
//	err := errors.BufferTooSmall(errors.PhaseDecode)
//
// All errors implement the standard error interface; errors.Is matches on
// Phase and Kind, so callers can classify failures with a template:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInteriorNul}) {
//		...
//	}
package errors
