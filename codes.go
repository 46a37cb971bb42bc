// codes.go — classification codes carried as context entries.
//
// Intent:
//   - Provide a small set of widely useful, human-readable codes.
//   - Keep semantics open-ended: no HTTP/status/retry policy in core.
//   - Allow projects to extend with their own codes without a central registry.
//
// A Code is attached like any other context value:
//
//	x := exn.New(err).Attach(exn.CodeNotFound)
//
// Payload types may instead report their own code by implementing Coder.
package exn

import "slices"

// Code classifies errors into machine-readable categories.
type Code string

// Coder is implemented by payloads that carry their own classification.
type Coder interface {
	ExnCode() Code
}

// Codes shipped with the package, grouped by who has to act: the caller,
// the environment, or the maintainer.
const (
	CodeBadRequest      Code = "bad_request"
	CodeInvalid         Code = "invalid"
	CodeNotFound        Code = "not_found"
	CodeConflict        Code = "conflict"
	CodeForbidden       Code = "forbidden"
	CodeTooManyRequests Code = "too_many_requests"

	CodeTimeout     Code = "timeout"
	CodeUnavailable Code = "unavailable"

	CodeInternal Code = "internal"
	CodeDefect   Code = "defect"
)

var builtinCodes = []Code{
	CodeBadRequest, CodeInvalid, CodeNotFound, CodeConflict, CodeForbidden, CodeTooManyRequests,
	CodeTimeout, CodeUnavailable,
	CodeInternal, CodeDefect,
}

// BuiltinCodes returns a copy of the built-in codes in declaration order.
func BuiltinCodes() []Code { return slices.Clone(builtinCodes) }

// IsBuiltin reports whether c is one of the package's own codes.
func (c Code) IsBuiltin() bool { return slices.Contains(builtinCodes, c) }

func (c Code) String() string { return string(c) }
