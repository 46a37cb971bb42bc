// Package exnpkgerrors converts between exn frame trees and
// github.com/pkg/errors chains.
//
// From rebuilds a pkg/errors chain as a linear frame chain, one frame per
// message layer, located where the chain's recorded stack traces say the
// layer was created. To erases a tree back into a chain, keeping the display
// text of each level along the first-child path.
package exnpkgerrors

import (
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/xgx-io/exn"
)

// Message is the payload of every frame built by From.
type Message struct {
	Text   string
	Origin exn.Location
}

func (m Message) Error() string { return m.Text }

// ExnLocation implements exn.LocationProvider.
func (m Message) ExnLocation() exn.Location { return m.Origin }

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// From walks err's Cause chain outermost first and rebuilds it bottom-up.
// Layers without Cause are followed through Unwrap() error.
// Layers that only add a stack (errors.WithStack, the outer half of
// errors.Wrap) do not become frames; their stack locates the message layer
// beneath them. Layers without any recorded stack are located at the caller
// of From. A nil err yields nil.
func From(err error) *exn.Exn[Message] {
	if err == nil {
		return nil
	}
	fallback := exn.Caller(1)

	var (
		msgs    []Message
		pending exn.Location
	)
	for e := err; e != nil; {
		cause := next(e)

		loc := stackLocation(e)
		if cause != nil && e.Error() == cause.Error() {
			// stack-only layer; the innermost one wins
			if !loc.IsZero() {
				pending = loc
			}
			e = cause
			continue
		}

		if loc.IsZero() {
			loc = pending
		}
		if loc.IsZero() {
			loc = fallback
		}
		pending = exn.Location{}

		text := e.Error()
		if cause != nil {
			text = strings.TrimSuffix(text, ": "+cause.Error())
		}
		msgs = append(msgs, Message{Text: text, Origin: loc})
		e = cause
	}

	x := exn.New(msgs[len(msgs)-1])
	for i := len(msgs) - 2; i >= 0; i-- {
		x = exn.Raise(x, msgs[i])
	}
	return x
}

// next returns e's Cause, or its single Unwrap for standard library layers
// mixed into the chain.
func next(e error) error {
	switch c := e.(type) {
	case causer:
		return c.Cause()
	case interface{ Unwrap() error }:
		return c.Unwrap()
	}
	return nil
}

// stackLocation returns the innermost recorded call site of e's own stack
// trace, or the zero Location.
func stackLocation(e error) exn.Location {
	st, ok := e.(stackTracer)
	if !ok {
		return exn.Location{}
	}
	trace := st.StackTrace()
	if len(trace) == 0 {
		return exn.Location{}
	}
	pc := uintptr(trace[0]) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return exn.Location{}
	}
	file, line := fn.FileLine(pc)
	return exn.Location{File: file, Line: line, Function: fn.Name()}
}

// To erases x into a pkg/errors chain: the leaf of the first-child path
// becomes errors.New, every level above it one errors.WithMessage layer.
// Siblings, contexts and payload types are dropped. A nil x yields nil.
func To(x exn.Exception) error {
	if x == nil {
		return nil
	}
	var texts []string
	for f := x.Frame(); f != nil; f = f.Child(0) {
		texts = append(texts, f.Error())
	}

	err := pkgerrors.New(texts[len(texts)-1])
	for i := len(texts) - 2; i >= 0; i-- {
		err = pkgerrors.WithMessage(err, texts[i])
	}
	return err
}
