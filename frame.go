// frame.go — the tree node: one located payload, its contexts and children.
//
// A Frame is read-only outside this package. Its exported methods are the
// node view handed to visitors: display/detail text, location, ordered
// iterators over contexts and children, and the double-dispatch helpers.
//
// Native causes (Unwrap() error / Unwrap() []error on the payload) are
// materialized eagerly as display-only children when the frame is built.
// Only the outermost payload keeps its concrete type.
package exn

import (
	"fmt"
	"iter"
)

// Bounds on the native cause walk. Depth stops self-unwrapping chains; the
// frame budget stops shared causes in Unwrap() []error graphs from being
// expanded once per path.
const (
	maxCauseDepth  = 1 << 12
	maxCauseFrames = 1 << 14
)

// Frame is one node in an error tree.
type Frame struct {
	err      error
	location Location
	contexts []any
	children []*Frame
}

// sourceError is the display-only payload of a translated native cause.
type sourceError struct {
	msg string
}

func (e sourceError) Error() string { return e.msg }

// newFrame builds a frame for err, located at the payload's own location if
// it provides one, else at loc. Native causes become children.
func newFrame(err error, loc Location) *Frame {
	loc = locate(err, loc)
	budget := maxCauseFrames
	return &Frame{
		err:      err,
		location: loc,
		children: causeFrames(err, loc, 0, &budget),
	}
}

// causeFrames translates err's native causes into child frames. A cause that
// already carries a frame tree is copied in with full fidelity instead of
// being flattened to text. Each translated cause spends one unit of budget.
func causeFrames(err error, loc Location, depth int, budget *int) []*Frame {
	if depth >= maxCauseDepth {
		return nil
	}
	if r, ok := err.(rooted); ok {
		if f := r.root(); f != nil {
			return []*Frame{f.clone()}
		}
		return nil
	}
	causes := nativeCauses(err)
	if len(causes) == 0 {
		return nil
	}
	out := make([]*Frame, 0, len(causes))
	for _, c := range causes {
		if r, ok := c.(rooted); ok {
			if f := r.root(); f != nil {
				out = append(out, f.clone())
			}
			continue
		}
		if *budget <= 0 {
			break
		}
		*budget--
		cl := locate(c, loc)
		out = append(out, &Frame{
			err:      sourceError{msg: c.Error()},
			location: cl,
			children: causeFrames(c, cl, depth+1, budget),
		})
	}
	return out
}

// nativeCauses returns the non-nil errors err wraps, multi-unwrap first.
func nativeCauses(err error) []error {
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		errs := u.Unwrap()
		out := make([]error, 0, len(errs))
		for _, e := range errs {
			if e != nil {
				out = append(out, e)
			}
		}
		return out
	case interface{ Unwrap() error }:
		if c := u.Unwrap(); c != nil {
			return []error{c}
		}
	}
	return nil
}

// clone deep-copies the tree structure. Payloads and context values are
// shared; they are immutable by contract.
func (f *Frame) clone() *Frame {
	n := &Frame{err: f.err, location: f.location}
	if len(f.contexts) > 0 {
		n.contexts = make([]any, len(f.contexts))
		copy(n.contexts, f.contexts)
	}
	if len(f.children) > 0 {
		n.children = make([]*Frame, len(f.children))
		for i, c := range f.children {
			n.children[i] = c.clone()
		}
	}
	return n
}

func (f *Frame) root() *Frame { return f }

// Frame returns f, so a bare frame satisfies Exception.
func (f *Frame) Frame() *Frame { return f }

// Error returns the payload's display text.
func (f *Frame) Error() string { return f.err.Error() }

// Payload returns the type-erased error stored at this node.
func (f *Frame) Payload() error { return f.err }

// Detail returns the payload's verbose text (%+v).
func (f *Frame) Detail() string { return fmt.Sprintf("%+v", f.err) }

// Location returns where this frame was created.
func (f *Frame) Location() Location { return f.location }

// Contexts iterates the context entries, oldest first.
func (f *Frame) Contexts() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, c := range f.contexts {
			if !yield(c) {
				return
			}
		}
	}
}

// ContextsLen returns the number of context entries.
func (f *Frame) ContextsLen() int { return len(f.contexts) }

// Children iterates the child frames in order; the first child is the
// direct cause.
func (f *Frame) Children() iter.Seq[*Frame] {
	return func(yield func(*Frame) bool) {
		for _, c := range f.children {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildrenLen returns the number of children.
func (f *Frame) ChildrenLen() int { return len(f.children) }

// Child returns the i-th child, or nil if out of range.
func (f *Frame) Child(i int) *Frame {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	return f.children[i]
}

// VisitContexts calls v.VisitContext for each context entry in order,
// stopping at the first error.
func (f *Frame) VisitContexts(v Visitor) error {
	for _, c := range f.contexts {
		if err := v.VisitContext(c); err != nil {
			return err
		}
	}
	return nil
}

// VisitChildren calls v.VisitFrame for each child in order, stopping at the
// first error.
func (f *Frame) VisitChildren(v Visitor) error {
	for _, c := range f.children {
		if err := v.VisitFrame(c); err != nil {
			return err
		}
	}
	return nil
}

// Unwrap exposes the payload followed by the children so errors.Is/As walk
// the whole tree.
func (f *Frame) Unwrap() []error {
	out := make([]error, 0, 1+len(f.children))
	out = append(out, f.err)
	for _, c := range f.children {
		out = append(out, c)
	}
	return out
}

// PayloadAs downcasts this node's payload only.
func PayloadAs[T any](f *Frame) (T, bool) {
	v, ok := f.err.(T)
	return v, ok
}
