// error.go — the shared interfaces behind every tree-carrying type.
//
// Exception is the public face; rooted and owner are the internal
// capabilities the constructors dispatch on.
package exn

import "fmt"

// Exception is implemented by every value that carries a frame tree:
// *Exn[E], *Recoverable[E, R], *Report and *Frame itself.
type Exception interface {
	error

	// Frame returns the root frame of the tree. It panics on a handle that
	// has already been consumed.
	Frame() *Frame
}

// rooted exposes the root frame without panicking. A nil result means the
// value is a typed nil or a consumed handle.
type rooted interface {
	root() *Frame
}

// owner is implemented by handles that can give up their tree. take returns
// nil for a nil receiver and panics for a consumed handle.
type owner interface {
	rooted
	take() *Frame
}

const (
	panicConsumed = "exn: use of consumed exception"
	panicNilError = "exn: nil error payload"
)

func panicRootType(got error, want any) {
	panic(fmt.Sprintf("exn: root payload is %T, want %T", got, want))
}

// isNilError reports whether err is a nil interface value. A typed nil
// pointer is NOT nil here; such payloads are the caller's responsibility.
func isNilError(err error) bool { return err == nil }

var (
	_ Exception = (*Exn[error])(nil)
	_ Exception = (*Recoverable[error, struct{}])(nil)
	_ Exception = (*Report)(nil)
	_ Exception = (*Frame)(nil)
	_ owner     = (*Exn[error])(nil)
	_ owner     = (*Recoverable[error, struct{}])(nil)
)
