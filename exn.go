// exn.go — the owning, root-typed handle over a frame tree.
//
// Exn[E] is always used by pointer. Operations that move the tree elsewhere
// (Raise, RaiseAll, Suppress, From, Recover) leave the source handle empty;
// touching an empty handle panics. That is how exclusive ownership is kept
// without move semantics in the language.
package exn

import "fmt"

// Exn owns an error tree whose root payload has dynamic type E.
type Exn[E error] struct {
	frame *Frame
}

func (x *Exn[E]) root() *Frame {
	if x == nil {
		return nil
	}
	return x.frame
}

func (x *Exn[E]) mustFrame() *Frame {
	if x == nil || x.frame == nil {
		panic(panicConsumed)
	}
	return x.frame
}

// take moves the tree out of x. A nil handle yields nil.
func (x *Exn[E]) take() *Frame {
	if x == nil {
		return nil
	}
	f := x.mustFrame()
	x.frame = nil
	return f
}

// Frame returns the root frame.
func (x *Exn[E]) Frame() *Frame { return x.mustFrame() }

// Current returns the root payload with its static type. A root of any other
// type is an invariant violation and panics.
func (x *Exn[E]) Current() E {
	f := x.mustFrame()
	v, ok := f.err.(E)
	if !ok {
		var want E
		panicRootType(f.err, want)
	}
	return v
}

// Error returns the root payload's display text only.
func (x *Exn[E]) Error() string { return x.mustFrame().Error() }

// Unwrap exposes the whole tree to errors.Is/As.
func (x *Exn[E]) Unwrap() []error { return x.mustFrame().Unwrap() }

// Visit hands the root frame to v. The visitor decides how to recurse.
func (x *Exn[E]) Visit(v Visitor) error { return v.VisitFrame(x.mustFrame()) }

// Attach appends a context value to the root frame and returns x.
// Nil values are ignored.
func (x *Exn[E]) Attach(ctx any) *Exn[E] {
	f := x.mustFrame()
	if ctx != nil {
		f.contexts = append(f.contexts, ctx)
	}
	return x
}

// AttachKV appends one Field per key/value pair. See ctxFromKV for pairing
// rules.
func (x *Exn[E]) AttachKV(kv ...any) *Exn[E] {
	f := x.mustFrame()
	for _, fld := range ctxFromKV(kv...) {
		f.contexts = append(f.contexts, fld)
	}
	return x
}

// AttachStack captures the caller's stack and attaches it as a Stack context.
func (x *Exn[E]) AttachStack() *Exn[E] {
	f := x.mustFrame()
	f.contexts = append(f.contexts, captureStackDefault(1)) // +1 to skip this method
	return x
}

// Suppress appends other's root after the existing children of x's root and
// consumes other. Use it for failures that happened alongside, not because
// of, the current one.
func (x *Exn[E]) Suppress(other *Exn[E]) *Exn[E] {
	f := x.mustFrame()
	if other == x {
		panic("exn: exception cannot suppress itself")
	}
	if c := other.take(); c != nil {
		f.children = append(f.children, c)
	}
	return x
}

// Format implements fmt.Formatter.
//
//	%v, %s → root display text
//	%q     → quoted root display text
//	%+v    → indented tree
func (x *Exn[E]) Format(s fmt.State, verb rune) {
	formatFrame(s, verb, x.mustFrame(), LayoutIndented)
}
