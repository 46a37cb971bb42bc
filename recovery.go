// recovery.go — handing a non-duplicable value back to the caller on failure.
//
// A Recoverable carries the error tree plus one extra value (typically the
// request or resource that failed) outside the tree. The caller either takes
// the value back with Recover or drops it with DiscardRecovery; both consume
// the handle.
//
//	res, err := cache.Load(req)
//	if rerr, ok := err.(*exn.Recoverable[CacheError, *Request]); ok {
//	    req, cacheErr := rerr.Recover()
//	    ...
//	}
package exn

import "fmt"

// Recoverable is an error tree with a recovery value of type R.
type Recoverable[E error, R any] struct {
	frame    *Frame
	recovery R
}

// WithRecovery wraps err in a new tree carrying recovery.
func WithRecovery[E error, R any](err E, recovery R) *Recoverable[E, R] {
	n := newExn(err, captureLocation(1))
	return &Recoverable[E, R]{frame: n.frame, recovery: recovery}
}

// RaiseWithRecovery is Raise that also carries recovery. x is consumed.
func RaiseWithRecovery[E, T error, R any](x *Exn[E], err T, recovery R) *Recoverable[T, R] {
	child := x.take()
	if child == nil {
		panic(panicConsumed)
	}
	n := raiseAt(child, err, captureLocation(1))
	return &Recoverable[T, R]{frame: n.frame, recovery: recovery}
}

// RaiseAllWithRecovery is RaiseAll that also carries recovery.
func RaiseAllWithRecovery[T error, R any](err T, recovery R, children ...error) *Recoverable[T, R] {
	n := raiseAllAt(err, children, captureLocation(1))
	return &Recoverable[T, R]{frame: n.frame, recovery: recovery}
}

func (r *Recoverable[E, R]) root() *Frame {
	if r == nil {
		return nil
	}
	return r.frame
}

func (r *Recoverable[E, R]) mustFrame() *Frame {
	if r == nil || r.frame == nil {
		panic(panicConsumed)
	}
	return r.frame
}

// take drops the recovery value and moves the tree out.
func (r *Recoverable[E, R]) take() *Frame {
	if r == nil {
		return nil
	}
	f := r.mustFrame()
	var zero R
	r.frame, r.recovery = nil, zero
	return f
}

// DiscardRecovery drops the recovery value and returns the plain tree.
func (r *Recoverable[E, R]) DiscardRecovery() *Exn[E] {
	r.mustFrame()
	return &Exn[E]{frame: r.take()}
}

// Recover returns the recovery value and the plain tree.
func (r *Recoverable[E, R]) Recover() (R, *Exn[E]) {
	r.mustFrame()
	rec := r.recovery
	f := r.take()
	return rec, &Exn[E]{frame: f}
}

// Frame returns the root frame.
func (r *Recoverable[E, R]) Frame() *Frame { return r.mustFrame() }

// Current returns the root payload with its static type.
func (r *Recoverable[E, R]) Current() E {
	f := r.mustFrame()
	v, ok := f.err.(E)
	if !ok {
		var want E
		panicRootType(f.err, want)
	}
	return v
}

// Error returns the root payload's display text.
func (r *Recoverable[E, R]) Error() string { return r.mustFrame().Error() }

// Unwrap exposes the tree to errors.Is/As. The recovery value is not part
// of it.
func (r *Recoverable[E, R]) Unwrap() []error { return r.mustFrame().Unwrap() }

// Format implements fmt.Formatter like Exn.
func (r *Recoverable[E, R]) Format(s fmt.State, verb rune) {
	formatFrame(s, verb, r.mustFrame(), LayoutIndented)
}
