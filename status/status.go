package status

import (
	stderrors "errors"
	"fmt"

	uefierrors "github.com/wippyai/uefi-strings/errors"
)

// Status is a UEFI status code. The high bit set marks an error; warnings
// occupy the non-zero values below it.
type Status uintptr

const errBit = ^(^Status(0) >> 1)

// Success and warning codes.
const (
	// Success indicates the operation completed successfully.
	Success Status = iota
	// WarnUnknownGlyph indicates the string contained characters the
	// device could not render; they were skipped.
	WarnUnknownGlyph
	// WarnDeleteFailure indicates the handle was closed but the file was
	// not deleted.
	WarnDeleteFailure
	// WarnWriteFailure indicates the handle was closed but the data was
	// not flushed properly.
	WarnWriteFailure
	// WarnBufferTooSmall indicates the data was truncated to the buffer
	// size.
	WarnBufferTooSmall
	// WarnStaleData indicates the data has not been updated within the
	// timeframe set by local policy.
	WarnStaleData
	// WarnFileSystem indicates the buffer contains a UEFI-compliant file
	// system.
	WarnFileSystem
	// WarnResetRequired indicates the operation will be processed across
	// a system reset.
	WarnResetRequired
)

// Error codes.
const (
	// LoadError indicates the image failed to load.
	LoadError Status = errBit | (iota + 1)
	// InvalidParameter indicates a parameter was incorrect.
	InvalidParameter
	// Unsupported indicates the operation is not supported.
	Unsupported
	// BadBufferSize indicates the buffer was not the proper size.
	BadBufferSize
	// BufferTooSmall indicates the buffer is not large enough to hold the
	// requested data.
	BufferTooSmall
	// NotReady indicates there is no data pending upon return.
	NotReady
	// DeviceError indicates the physical device reported an error.
	DeviceError
	// WriteProtected indicates the device cannot be written to.
	WriteProtected
	// OutOfResources indicates a resource has run out.
	OutOfResources
	// VolumeCorrupted indicates an inconsistency was detected on the file
	// system.
	VolumeCorrupted
	// VolumeFull indicates there is no more space on the file system.
	VolumeFull
	// NoMedia indicates the device contains no medium.
	NoMedia
	// MediaChanged indicates the medium changed since the last access.
	MediaChanged
	// NotFound indicates the item was not found.
	NotFound
	// AccessDenied indicates access was denied.
	AccessDenied
	// NoResponse indicates the server did not respond.
	NoResponse
	// NoMapping indicates a mapping to a device does not exist.
	NoMapping
	// Timeout indicates the timeout expired.
	Timeout
	// NotStarted indicates the protocol has not been started.
	NotStarted
	// AlreadyStarted indicates the protocol has already been started.
	AlreadyStarted
	// Aborted indicates the operation was aborted.
	Aborted
	// IcmpError indicates an ICMP error occurred.
	IcmpError
	// TftpError indicates a TFTP error occurred.
	TftpError
	// ProtocolError indicates a network protocol error occurred.
	ProtocolError
	// IncompatibleVersion indicates an internal version mismatch.
	IncompatibleVersion
	// SecurityViolation indicates a security violation.
	SecurityViolation
	// CrcError indicates a CRC error was detected.
	CrcError
	// EndOfMedia indicates the beginning or end of media was reached.
	EndOfMedia
)

// Error codes with a gap in the numbering space.
const (
	// EndOfFile indicates the end of the file was reached.
	EndOfFile Status = errBit | (iota + 31)
	// InvalidLanguage indicates the language specified was invalid.
	InvalidLanguage
	// CompromisedData indicates the security status of the data is
	// unknown or compromised.
	CompromisedData
	// IpAddressConflict indicates an address conflict in allocation.
	IpAddressConflict
	// HttpError indicates an HTTP error occurred.
	HttpError
)

// IsSuccess reports whether the status is Success.
func (s Status) IsSuccess() bool {
	return s == Success
}

// IsWarning reports whether the status is a non-success completion without
// the error bit.
func (s Status) IsWarning() bool {
	return s != Success && s&errBit == 0
}

// IsError reports whether the error bit is set.
func (s Status) IsError() bool {
	return s&errBit != 0
}

var statusNames = map[Status]string{
	Success:             "success",
	WarnUnknownGlyph:    "warning: unknown glyph",
	WarnDeleteFailure:   "warning: delete failure",
	WarnWriteFailure:    "warning: write failure",
	WarnBufferTooSmall:  "warning: buffer too small",
	WarnStaleData:       "warning: stale data",
	WarnFileSystem:      "warning: file system",
	WarnResetRequired:   "warning: reset required",
	LoadError:           "load error",
	InvalidParameter:    "invalid parameter",
	Unsupported:         "unsupported",
	BadBufferSize:       "bad buffer size",
	BufferTooSmall:      "buffer too small",
	NotReady:            "not ready",
	DeviceError:         "device error",
	WriteProtected:      "write protected",
	OutOfResources:      "out of resources",
	VolumeCorrupted:     "volume corrupted",
	VolumeFull:          "volume full",
	NoMedia:             "no media",
	MediaChanged:        "media changed",
	NotFound:            "not found",
	AccessDenied:        "access denied",
	NoResponse:          "no response",
	NoMapping:           "no mapping",
	Timeout:             "timeout",
	NotStarted:          "not started",
	AlreadyStarted:      "already started",
	Aborted:             "aborted",
	IcmpError:           "ICMP error",
	TftpError:           "TFTP error",
	ProtocolError:       "protocol error",
	IncompatibleVersion: "incompatible version",
	SecurityViolation:   "security violation",
	CrcError:            "CRC error",
	EndOfMedia:          "end of media",
	EndOfFile:           "end of file",
	InvalidLanguage:     "invalid language",
	CompromisedData:     "compromised data",
	IpAddressConflict:   "IP address conflict",
	HttpError:           "HTTP error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%#x)", uintptr(s))
}

// Err converts the status to a Go error. Success maps to nil; warnings and
// errors both produce a *StatusError so callers choosing to treat warnings
// as failures can do so uniformly.
func (s Status) Err() error {
	if s == Success {
		return nil
	}
	return &StatusError{Code: s}
}

// StatusError wraps a non-success Status as a Go error.
type StatusError struct {
	Code Status
}

func (e *StatusError) Error() string {
	return "uefi status: " + e.Code.String()
}

// FromError classifies a conversion error as a status code. The mapping
// follows the text-output protocol's conventions: unrepresentable characters
// are a rendering warning, exhausted destination space is BufferTooSmall,
// and malformed inputs are InvalidParameter.
func FromError(err error) Status {
	if err == nil {
		return Success
	}
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Code
	}
	var ue *uefierrors.Error
	if !stderrors.As(err, &ue) {
		return DeviceError
	}
	switch ue.Kind {
	case uefierrors.KindUnsupportedChar:
		return WarnUnknownGlyph
	case uefierrors.KindBufferTooSmall:
		return BufferTooSmall
	case uefierrors.KindInteriorNul, uefierrors.KindInvalidChar, uefierrors.KindNotNulTerminated:
		return InvalidParameter
	default:
		return DeviceError
	}
}
