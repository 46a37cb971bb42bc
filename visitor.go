// visitor.go — double-dispatch traversal over frame trees.
//
// The tree only exposes iteration primitives (Frame.VisitChildren,
// Frame.VisitContexts, Frame.Children, ...). A Visitor decides inside
// VisitFrame whether and in which order to descend, so renderers and search
// routines share one walking mechanism without the tree knowing about them.
package exn

import "errors"

// Visitor consumes a frame tree.
//
// A non-nil error returned from either hook stops the traversal and is
// returned to whoever started it.
type Visitor interface {
	// VisitFrame is called with a node. Implementations typically emit the
	// node, then call f.VisitContexts(v) and/or f.VisitChildren(v).
	VisitFrame(f *Frame) error

	// VisitContext is called for context entries when the visitor asks for
	// them via Frame.VisitContexts.
	VisitContext(c any) error
}

// SkipChildren can be returned by a VisitorFunc to skip the children of the
// current frame without stopping the walk.
var SkipChildren = errors.New("exn: skip children")

// VisitorFunc adapts a function into a pre-order Visitor: the function runs
// for each frame before its children. Contexts are not visited.
type VisitorFunc func(f *Frame) error

// VisitFrame implements Visitor.
func (fn VisitorFunc) VisitFrame(f *Frame) error {
	if err := fn(f); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	return f.VisitChildren(fn)
}

// VisitContext implements Visitor.
func (fn VisitorFunc) VisitContext(any) error { return nil }
