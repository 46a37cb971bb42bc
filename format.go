// format.go — renderers for frame trees.
//
// Layouts (all pre-order, depth-first):
//
//	Indented (%+v on Exn/Frame, Native reports):
//	    C, at a.go:30
//	    |
//	    |-> B, at a.go:20
//	    |
//	    |-> A, at a.go:10
//
//	Compact (box drawing):
//	    F, at a.go:30
//	    ├─ X, at a.go:10
//	    └─ Y, at a.go:20
//
//	Outline (quick inspection, two spaces per depth):
//	    F at a.go:30
//	      X at a.go:10
//
// Each renderer is a Visitor carrying only the prefix for the subtree it is
// rendering; a fresh visitor is made per child with the extended prefix.
package exn

import (
	"fmt"
	"io"
	"strings"
)

// formatConcise writes the one-line message (the root display text).
func formatConcise(w io.Writer, f *Frame) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, f.Error())
}

// formatFrame is the shared fmt.Formatter body for tree-carrying types.
func formatFrame(s fmt.State, verb rune, f *Frame, layout Layout) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_ = Render(s, f, layout)
			return
		}
		formatConcise(s, f)
	case 's':
		formatConcise(s, f)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		formatConcise(s, f)
	}
}

// Format implements fmt.Formatter; %+v renders the indented tree.
func (f *Frame) Format(s fmt.State, verb rune) {
	formatFrame(s, verb, f, LayoutIndented)
}

// -----------------------------------------------------------------------------
// Indented layout
// -----------------------------------------------------------------------------

type indentVisitor struct {
	w      io.Writer
	level  int
	prefix string
}

func (v *indentVisitor) VisitFrame(f *Frame) error {
	if _, err := fmt.Fprintf(v.w, "%s, at %s", f.Error(), f.Location()); err != nil {
		return err
	}

	n := f.ChildrenLen()
	i := 0
	for child := range f.Children() {
		if _, err := fmt.Fprintf(v.w, "\n%s|\n%s|-> ", v.prefix, v.prefix); err != nil {
			return err
		}

		next := &indentVisitor{w: v.w}
		switch {
		case v.level == 0 && n == 1 && child.ChildrenLen() == 1:
			// Linear chains stay flat instead of staircasing.
			next.prefix = v.prefix
		case i < n-1:
			next.level, next.prefix = v.level+1, v.prefix+"|   "
		default:
			next.level, next.prefix = v.level+1, v.prefix+"    "
		}
		if err := next.VisitFrame(child); err != nil {
			return err
		}
		i++
	}
	return nil
}

func (v *indentVisitor) VisitContext(any) error { return nil }

// -----------------------------------------------------------------------------
// Compact layout
// -----------------------------------------------------------------------------

type compactVisitor struct {
	w      io.Writer
	root   bool
	prefix string
}

func (v *compactVisitor) VisitFrame(f *Frame) error {
	if _, err := fmt.Fprintf(v.w, "%s, at %s", f.Error(), f.Location()); err != nil {
		return err
	}

	n := f.ChildrenLen()
	i := 0
	for child := range f.Children() {
		var (
			connector string
			next      = &compactVisitor{w: v.w}
		)
		switch {
		case v.root && n == 1 && child.ChildrenLen() == 1:
			connector, next.root, next.prefix = "├─ ", true, v.prefix
		case i+1 < n:
			connector, next.prefix = "├─ ", v.prefix+"│  "
		default:
			connector, next.prefix = "└─ ", v.prefix+"   "
		}
		if _, err := fmt.Fprintf(v.w, "\n%s%s", v.prefix, connector); err != nil {
			return err
		}
		if err := next.VisitFrame(child); err != nil {
			return err
		}
		i++
	}
	return nil
}

func (v *compactVisitor) VisitContext(any) error { return nil }

// -----------------------------------------------------------------------------
// Outline layout
// -----------------------------------------------------------------------------

type outlineVisitor struct {
	w     io.Writer
	level int
	first bool
}

func (v *outlineVisitor) VisitFrame(f *Frame) error {
	if !v.first {
		if _, err := io.WriteString(v.w, "\n"); err != nil {
			return err
		}
	}
	v.first = false

	line := strings.Repeat("  ", v.level) + f.Error() + " at " + f.Location().String()
	if _, err := io.WriteString(v.w, line); err != nil {
		return err
	}

	v.level++
	defer func() { v.level-- }()
	return f.VisitChildren(v)
}

func (v *outlineVisitor) VisitContext(any) error { return nil }
