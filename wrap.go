// wrap.go — small, stdlib-friendly helpers for the if-err-return idiom.
//
// Purpose
//   - Raise a typed layer over whatever error a call returned, in one line.
//   - Stay nil-safe where the helper returns the error interface, so a nil
//     *Exn is never boxed into a non-nil error.
//
//	if err := load(); err != nil {
//	    return exn.Wrap(err, LoadError{Path: p})
//	}
//
//	return exn.OrRaise(save(), func() SaveError { return SaveError{} })
package exn

// Wrap raises a over err. Trees are consumed (handles) or copied (frames,
// reports); any other error is wrapped as by New first. A nil err yields a
// single-frame tree for a.
func Wrap[A error](err error, a A) *Exn[A] {
	loc := captureLocation(1)
	return raiseAt(adopt(err, loc), a, loc)
}

// OrRaise returns nil if err is nil (or a typed nil handle); otherwise it
// raises mk() over err.
func OrRaise[A error](err error, mk func() A) error {
	if err == nil {
		return nil
	}
	loc := captureLocation(1)
	child := adopt(err, loc)
	if child == nil {
		return nil
	}
	return raiseAt(child, mk(), loc)
}

// OrRaiseWithRecovery is OrRaise whose raised layer also carries recovery.
// A Recoverable err gives up its own recovery value and is re-raised with
// the new one. On success recovery is dropped and nil is returned.
func OrRaiseWithRecovery[A error, R any](err error, mk func() A, recovery R) error {
	if err == nil {
		return nil
	}
	loc := captureLocation(1)
	child := adopt(err, loc)
	if child == nil {
		return nil
	}
	n := raiseAt(child, mk(), loc)
	return &Recoverable[A, R]{frame: n.frame, recovery: recovery}
}

// Ensure returns nil if cond holds, else a new tree for mk().
func Ensure[A error](cond bool, mk func() A) error {
	if cond {
		return nil
	}
	return newExn(mk(), captureLocation(1))
}

// OkOrRaise turns a comma-ok result into a value/error pair, raising mk()
// when ok is false.
func OkOrRaise[T any, A error](v T, ok bool, mk func() A) (T, error) {
	if ok {
		return v, nil
	}
	var zero T
	return zero, newExn(mk(), captureLocation(1))
}
