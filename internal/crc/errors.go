package crc

import (
	"fmt"
)

// Kind identifies the class of error the core CRC engine can surface.
// All validation is synchronous: failures are reported at construction
// or argument time, never deferred into a later Update call.
type Kind int

const (
	// WidthOutOfRange means width was 0 or greater than MaxWidth.
	WidthOutOfRange Kind = iota
	// PolyOutOfRange means poly was 0 or exceeded bitmask(width).
	PolyOutOfRange
	// InitOutOfRange means init exceeded bitmask(width).
	InitOutOfRange
	// XoroutOutOfRange means xorout exceeded bitmask(width).
	XoroutOutOfRange
	// UnknownTemplate means a template name was not found in the catalogue.
	UnknownTemplate
	// UnknownMethod means a method string was not bitwise/bytewise/wordwise.
	UnknownMethod
	// ValueOutOfRange means a value given to Combine exceeded bitmask(width).
	ValueOutOfRange
)

func (k Kind) String() string {
	switch k {
	case WidthOutOfRange:
		return "WidthOutOfRange"
	case PolyOutOfRange:
		return "PolyOutOfRange"
	case InitOutOfRange:
		return "InitOutOfRange"
	case XoroutOutOfRange:
		return "XoroutOutOfRange"
	case UnknownTemplate:
		return "UnknownTemplate"
	case UnknownMethod:
		return "UnknownMethod"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. It carries a Kind so callers can errors.Is against the
// matching sentinel without parsing strings.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf("crc: %s: %s", kind, fmt.Sprintf(format, args...))}
}

// Sentinels for errors.Is comparisons against a specific Kind, e.g.
// errors.Is(err, ErrUnknownTemplate).
var (
	ErrWidthOutOfRange   = &Error{Kind: WidthOutOfRange}
	ErrPolyOutOfRange    = &Error{Kind: PolyOutOfRange}
	ErrInitOutOfRange    = &Error{Kind: InitOutOfRange}
	ErrXoroutOutOfRange  = &Error{Kind: XoroutOutOfRange}
	ErrUnknownTemplate   = &Error{Kind: UnknownTemplate}
	ErrUnknownMethod     = &Error{Kind: UnknownMethod}
	ErrValueOutOfRange = &Error{Kind: ValueOutOfRange}
)
