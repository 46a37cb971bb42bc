// report.go — pluggable presentation of any error tree.
//
// A Report wraps a tree together with the layout used by %+v. Display text
// (%v, %s, Error()) is always the root payload's text, whatever the layout.
//
//	fmt.Printf("%+v\n", exn.Compact(err))
package exn

import (
	"fmt"
	"io"
	"strings"
)

// Layout selects a tree rendering.
type Layout int

const (
	// LayoutIndented renders "|" / "|-> " rails, collapsing linear chains.
	LayoutIndented Layout = iota
	// LayoutCompact renders box-drawing connectors.
	LayoutCompact
	// LayoutOutline renders one indented line per frame.
	LayoutOutline
)

var layoutNames = map[Layout]string{
	LayoutIndented: "indented",
	LayoutCompact:  "compact",
	LayoutOutline:  "outline",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// Render writes f's tree to w. Only write errors are returned.
func Render(w io.Writer, f *Frame, layout Layout) error {
	var v Visitor
	switch layout {
	case LayoutCompact:
		v = &compactVisitor{w: w, root: true}
	case LayoutOutline:
		v = &outlineVisitor{w: w, first: true}
	default:
		v = &indentVisitor{w: w}
	}
	return v.VisitFrame(f)
}

// Sprint renders f's tree into a string.
func Sprint(f *Frame, layout Layout) string {
	var sb strings.Builder
	_ = Render(&sb, f, layout)
	return sb.String()
}

// Report is an error that renders its tree with a fixed layout.
type Report struct {
	frame  *Frame
	layout Layout
}

// Native reports err with the indented layout. err must not be nil.
func Native(err error) *Report { return newReport(err, LayoutIndented, captureLocation(1)) }

// Compact reports err with the box-drawing layout.
func Compact(err error) *Report { return newReport(err, LayoutCompact, captureLocation(1)) }

// Outline reports err with the outline layout.
func Outline(err error) *Report { return newReport(err, LayoutOutline, captureLocation(1)) }

// newReport takes ownership of err's tree (see adopt). Like New, it panics
// on a nil err or a typed nil handle, so a *Report is never nil.
func newReport(err error, layout Layout, loc Location) *Report {
	f := adopt(err, loc)
	if f == nil {
		panic(panicNilError)
	}
	return &Report{frame: f, layout: layout}
}

func (r *Report) root() *Frame {
	if r == nil {
		return nil
	}
	return r.frame
}

// Frame returns the root frame.
func (r *Report) Frame() *Frame { return r.frame }

// Layout returns the layout used by %+v.
func (r *Report) Layout() Layout { return r.layout }

// Error returns the root payload's display text.
func (r *Report) Error() string { return r.frame.Error() }

// Unwrap exposes the whole tree to errors.Is/As.
func (r *Report) Unwrap() []error { return r.frame.Unwrap() }

// Format implements fmt.Formatter; %+v renders with the report's layout.
func (r *Report) Format(s fmt.State, verb rune) {
	formatFrame(s, verb, r.frame, r.layout)
}
