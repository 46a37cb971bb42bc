// stack.go — source positions and optional stack capture for exn frames.
//
// Design goals:
//   - Every frame records exactly one Location: where it was created, or the
//     position the payload reports about itself (LocationProvider).
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - Full stacks are opt-in (AttachStack) and live in the frame's context,
//     not in the frame itself.
//
// Go exposes no column information, so a Location renders as file:line.
package exn

import (
	"runtime"
	"strconv"
	"strings"
)

// Location is the source position a frame was created at.
type Location struct {
	File     string // absolute file path (as provided by runtime)
	Line     int    // line number
	Function string // fully-qualified function name (pkg.Func or method)
}

// String renders the location as file:line, or "<unknown>" for the zero value.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// IsZero reports whether l carries no position.
func (l Location) IsZero() bool { return l.File == "" && l.Line == 0 }

// LocationProvider is implemented by payloads that know where they were
// created. New prefers the provided location over its own call site.
type LocationProvider interface {
	ExnLocation() Location
}

// Caller returns the location of the function calling Caller, skipping
// 'skip' additional frames. Payload types use it to implement
// LocationProvider at their own construction site.
func Caller(skip int) Location {
	return captureLocation(skip + 1)
}

// captureLocation resolves a single call site. skip=0 is the caller of
// captureLocation.
//
//	+1 for runtime.Callers itself
//	+1 for captureLocation
func captureLocation(skip int) Location {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return Location{}
	}
	fr, _ := runtime.CallersFrames(pc[:]).Next()
	return Location{File: fr.File, Line: fr.Line, Function: fr.Function}
}

// locate picks the payload's own location when it provides one.
func locate(err error, fallback Location) Location {
	if lp, ok := err.(LocationProvider); ok {
		if l := lp.ExnLocation(); !l.IsZero() {
			return l
		}
	}
	return fallback
}

// StackFrame represents a single call site in a stack trace.
type StackFrame struct {
	PC       uintptr // program counter of the call return
	File     string
	Line     int
	Function string
}

// Stack is a slice of StackFrames from most recent call outward. It is
// attached to frames as a context entry by AttachStack.
type Stack []StackFrame

// String renders one "function file:line" per line, most recent first.
func (s Stack) String() string {
	var sb strings.Builder
	for i, fr := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fr.Function)
		sb.WriteByte(' ')
		sb.WriteString(fr.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(fr.Line))
	}
	return sb.String()
}

const (
	// defaultMaxDepth is a conservative bound that captures meaningful
	// context without excessive work on exceptional paths.
	defaultMaxDepth = 64
)

// CaptureStack records the calling goroutine's stack, skipping 'skip'
// frames above the caller of CaptureStack.
func CaptureStack(skip int) Stack {
	return captureStackDefault(skip + 1)
}

// captureStackDefault captures a stack skipping 'skip' frames, with a
// conservative default depth bound.
//
// Skip model for a typical call chain:
//
//	AttachStack → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 (runtime.Callers, captureStack, captureStackDefault)
// so skip=0 starts at the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, StackFrame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
