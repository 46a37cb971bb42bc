// unwrap.go — traversal and downcast helpers over frame trees.
//
// Traversal semantics:
//   - Walk:        pre-order (visit, then children). Stops early if fn returns false.
//   - Flatten:     collects LEAVES only (frames with no children) in DFS order.
//   - Root:        first DFS leaf (deepest along the first path), nil-safe.
//   - Find:        first payload of the requested type, pre-order.
//   - FindContext: first context entry of the requested type, pre-order.
//
// Frame trees are acyclic by construction, so no seen-set is needed. Foreign
// errors (no frame tree) are searched through their Unwrap graph instead,
// bounded by maxCauseDepth.
package exn

import "errors"

var errStopWalk = errors.New("exn: stop walk")

// AsFrame returns the root frame of the first tree found along err's unwrap
// chain. It reports false for nil errors and consumed handles.
func AsFrame(err error) (*Frame, bool) {
	if err == nil {
		return nil, false
	}
	var r rooted
	if !errors.As(err, &r) {
		return nil, false
	}
	f := r.root()
	return f, f != nil
}

// Walk visits every frame of the tree rooted at f in pre-order. If visit
// returns false the walk stops.
func Walk(f *Frame, visit func(*Frame) bool) {
	if f == nil || visit == nil {
		return
	}
	_ = VisitorFunc(func(fr *Frame) error {
		if !visit(fr) {
			return errStopWalk
		}
		return nil
	}).VisitFrame(f)
}

// Flatten returns the leaf frames of the tree in depth-first order.
func Flatten(f *Frame) []*Frame {
	var out []*Frame
	Walk(f, func(fr *Frame) bool {
		if fr.ChildrenLen() == 0 {
			out = append(out, fr)
		}
		return true
	})
	return out
}

// Root returns the first DFS leaf: the deepest frame along the first-child
// path. If f is nil, Root returns nil.
func Root(f *Frame) *Frame {
	if f == nil {
		return nil
	}
	for f.ChildrenLen() > 0 {
		f = f.Child(0)
	}
	return f
}

// Depth returns the number of frames on the longest root-to-leaf path.
func Depth(f *Frame) int {
	if f == nil {
		return 0
	}
	d := 0
	for c := range f.Children() {
		d = max(d, Depth(c))
	}
	return d + 1
}

// Find returns the first payload of type T in pre-order, starting with f's
// own payload.
func Find[T any](f *Frame) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(f, func(fr *Frame) bool {
		if v, ok := fr.err.(T); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// FindIn is Find for any error. Trees are searched frame by frame; foreign
// errors are searched through their Unwrap graph.
func FindIn[T any](err error) (T, bool) {
	if f, ok := AsFrame(err); ok {
		return Find[T](f)
	}
	return findNative[T](err, 0)
}

func findNative[T any](err error, depth int) (T, bool) {
	var zero T
	if err == nil || depth >= maxCauseDepth {
		return zero, false
	}
	if v, ok := err.(T); ok {
		return v, true
	}
	for _, c := range nativeCauses(err) {
		if v, ok := findNative[T](c, depth+1); ok {
			return v, true
		}
	}
	return zero, false
}

// FindContext returns the first context entry of type T in pre-order;
// within a frame, entries are checked oldest first.
func FindContext[T any](f *Frame) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(f, func(fr *Frame) bool {
		out, found = ContextOf[T](fr)
		return !found
	})
	return out, found
}
