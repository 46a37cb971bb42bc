// doc.go — package documentation for exn
//
// Package exn models errors as trees of frames. Each frame holds one error
// payload, the source location it was raised at, an ordered list of context
// values and an ordered list of child frames (the errors that caused it).
// It is designed to be:
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter, Unwrap() []error)
//   - Typed at the root (Exn[E] knows the concrete type of its newest layer)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Building Trees
//
//	x := exn.New(ReadError{Path: p})                 // one frame
//	y := exn.Raise(x, ParseError{Line: 3})            // x becomes y's first child
//	z := exn.RaiseAll(BatchError{}, err1, err2, y)    // three children
//
// Raise and RaiseAll consume the handles they are given: the old handle is
// left empty and any further use of it panics with "use of consumed
// exception". A frame therefore has exactly one parent, and trees can never
// contain cycles.
//
// When a payload wraps other errors (Unwrap() error or Unwrap() []error),
// New walks that chain eagerly and turns each cause into a display-only
// child frame. Only the outermost payload keeps its concrete type; causes
// keep their text and location. Causes that are themselves exn trees are
// copied in whole.
//
// # Where Are Locations Captured?
//
//	+-------------------------------+-----------------------------------+
//	| Operation                     | Location recorded                 |
//	+-------------------------------+-----------------------------------+
//	| New / Raise / RaiseAll        | caller of the function            |
//	| Wrap / OrRaise / Ensure / ... | caller of the helper              |
//	| payload is LocationProvider   | the payload's own ExnLocation()   |
//	| translated native cause       | the cause's own location, else    |
//	|                               | the location of the frame above   |
//	| AttachStack                   | full stack, stored as a context   |
//	+-------------------------------+-----------------------------------+
//
// Go has no column information, so a location renders as file:line.
//
// # Context
//
// Attach appends any value to the root frame; AttachKV appends key/value
// Fields. Typed access goes through TypedKey:
//
//	var KUserID = exn.Key[int64]("user_id")
//	x.Attach(KUserID.Field(42))
//	id, ok := KUserID.Lookup(err)
//
// Codes (CodeNotFound, CodeTimeout, ...) are plain context values; see
// CodeOf and HasCode.
//
// # Formatting
//
//   - `%v`, `%s`   → the root payload's display text only
//   - `%+v`        → the whole tree (indented layout)
//   - `%q`         → quoted display text
//
// Native, Compact and Outline wrap any error in a Report whose %+v uses the
// chosen layout. Render and Sprint render a frame directly.
//
// # Traversal
//
// Frames are read through a view: Error, Location, Contexts, Children and
// the double-dispatch helpers VisitContexts / VisitChildren. Visitor
// implementations decide how to recurse; VisitorFunc gives a pre-order walk.
// Find, FindIn and FindContext search pre-order and report absence instead
// of failing.
//
// # Adapters
//
// Logging and foreign error ecosystems live in sub-packages:
//   - exnzerolog: zerolog object marshaling for frame trees
//   - exnpkgerrors: conversion to and from github.com/pkg/errors chains
package exn
