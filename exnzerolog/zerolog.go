// Package exnzerolog renders exn frame trees as structured zerolog fields.
//
//	exnzerolog.Install()
//	log.Error().Err(err).Msg("request failed")
//
// produces
//
//	{"level":"error","error":{"msg":"request failed","location":"api.go:41",
//	 "context":["user_id=42"],"causes":[{"msg":"db timeout","location":"db.go:88"}]},...}
//
// Errors that carry no frame tree are left to zerolog's default handling.
package exnzerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/xgx-io/exn"
)

// Field names used in the emitted objects.
const (
	MsgFieldName      = "msg"
	LocationFieldName = "location"
	ContextFieldName  = "context"
	CausesFieldName   = "causes"
	TreeFieldName     = "exn"
)

// Object returns a marshaler that writes x's whole tree.
func Object(x exn.Exception) zerolog.LogObjectMarshaler {
	return frameObject{f: x.Frame()}
}

// ErrorMarshalFunc has the signature of zerolog.ErrorMarshalFunc. Errors
// carrying a frame tree become nested objects; anything else is returned
// unchanged.
func ErrorMarshalFunc(err error) interface{} {
	if f, ok := exn.AsFrame(err); ok {
		return frameObject{f: f}
	}
	return err
}

// Install sets zerolog.ErrorMarshalFunc so that Event.Err and Event.AnErr
// emit frame trees. It returns a function restoring the previous marshaler.
func Install() (restore func()) {
	prev := zerolog.ErrorMarshalFunc
	zerolog.ErrorMarshalFunc = ErrorMarshalFunc
	return func() { zerolog.ErrorMarshalFunc = prev }
}

// Log adds x's display text under zerolog.ErrorFieldName and its tree under
// TreeFieldName.
func Log(ev *zerolog.Event, x exn.Exception) *zerolog.Event {
	if ev == nil || x == nil {
		return ev
	}
	return ev.Str(zerolog.ErrorFieldName, x.Error()).Object(TreeFieldName, Object(x))
}

type frameObject struct {
	f *exn.Frame
}

func (o frameObject) MarshalZerologObject(e *zerolog.Event) {
	e.Str(MsgFieldName, o.f.Error()).
		Str(LocationFieldName, o.f.Location().String())
	if o.f.ContextsLen() > 0 {
		e.Array(ContextFieldName, contextArray(o))
	}
	if o.f.ChildrenLen() > 0 {
		e.Array(CausesFieldName, causeArray(o))
	}
}

type contextArray frameObject

func (c contextArray) MarshalZerologArray(a *zerolog.Array) {
	_ = c.f.VisitContexts(contextVisitor{a: a})
}

type causeArray frameObject

func (c causeArray) MarshalZerologArray(a *zerolog.Array) {
	for child := range c.f.Children() {
		a.Object(frameObject{f: child})
	}
}

// contextVisitor writes one array element per context entry.
type contextVisitor struct {
	a *zerolog.Array
}

func (v contextVisitor) VisitFrame(*exn.Frame) error { return nil }

func (v contextVisitor) VisitContext(c any) error {
	switch c := c.(type) {
	case fmt.Stringer: // exn.Field, exn.Code, exn.Stack
		v.a.Str(c.String())
	case error:
		v.a.Str(c.Error())
	case string:
		v.a.Str(c)
	default:
		v.a.Interface(c)
	}
	return nil
}
