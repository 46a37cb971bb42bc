// construct.go — building and growing frame trees.
//
// Scope:
//   - New/From create a single frame (plus translated native causes).
//   - Raise grows a tree in depth: the previous root becomes the first child.
//   - RaiseAll grows it in breadth: many prior failures explain one new error.
//
// Every public constructor records its caller's location once; payloads that
// implement LocationProvider override it.
package exn

// New wraps err in a fresh tree. The payload's native cause chain is walked
// eagerly and each cause becomes a display-only child frame.
func New[E error](err E) *Exn[E] {
	return newExn(err, captureLocation(1))
}

func newExn[E error](err E, loc Location) *Exn[E] {
	if isNilError(error(err)) {
		panic(panicNilError)
	}
	return &Exn[E]{frame: newFrame(err, loc)}
}

// From converts any error into an untyped tree without adding a layer.
//   - nil (or a typed nil handle) → nil
//   - an owning handle → its tree, moved into the result
//   - a frame or report → a copy of its tree
//   - other error → New(err)
func From(err error) *Exn[error] {
	if err == nil {
		return nil
	}
	f := adopt(err, captureLocation(1))
	if f == nil {
		return nil
	}
	return &Exn[error]{frame: f}
}

// adopt turns err into a frame this package owns. Owning handles are
// consumed, other trees are copied, plain errors get a new frame at loc.
func adopt(err error, loc Location) *Frame {
	if err == nil {
		return nil
	}
	if o, ok := err.(owner); ok {
		return o.take()
	}
	if r, ok := err.(rooted); ok {
		if f := r.root(); f != nil {
			return f.clone()
		}
		return nil
	}
	return newFrame(err, loc)
}

// Raise wraps x's tree beneath a new frame for err and consumes x. The old
// root becomes the first child of the new one.
func Raise[E, T error](x *Exn[E], err T) *Exn[T] {
	child := x.take()
	if child == nil {
		panic(panicConsumed)
	}
	return raiseAt(child, err, captureLocation(1))
}

func raiseAt[T error](child *Frame, err T, loc Location) *Exn[T] {
	n := newExn(err, loc)
	if child != nil {
		n.frame.children = append([]*Frame{child}, n.frame.children...)
	}
	return n
}

// RaiseAll creates a frame for err whose children are the given errors, in
// order. Handles are consumed and keep their trees intact; other errors are
// wrapped as by New. Nil entries, including typed nil handles, are skipped.
func RaiseAll[T error](err T, children ...error) *Exn[T] {
	return raiseAllAt(err, children, captureLocation(1))
}

func raiseAllAt[T error](err T, children []error, loc Location) *Exn[T] {
	n := newExn(err, loc)
	for _, c := range children {
		if f := adopt(c, loc); f != nil {
			n.frame.children = append(n.frame.children, f)
		}
	}
	return n
}
