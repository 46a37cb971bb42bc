// predicates.go — classification queries over error trees.
//
// Scope:
//   • Zero-policy helpers answering "which code does this failure carry?".
//   • A frame's code is its newest Code context entry, else its payload's
//     Coder code. Trees are searched pre-order.
//   • Foreign errors fall back to errors.As against Coder.
//
// Out of scope:
//   • HTTP/status mapping, retry backoff policy, logging.
package exn

import "errors"

// frameCode returns the code carried by a single frame.
func frameCode(f *Frame) (Code, bool) {
	var (
		c     Code
		found bool
	)
	for v := range ContextsOf[Code](f) {
		c, found = v, true
	}
	if found {
		return c, true
	}
	if cd, ok := f.err.(Coder); ok {
		return cd.ExnCode(), true
	}
	return "", false
}

// CodeOf returns the first code found pre-order, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if f, ok := AsFrame(err); ok {
		var out Code
		Walk(f, func(fr *Frame) bool {
			c, ok := frameCode(fr)
			if ok {
				out = c
			}
			return !ok
		})
		return out
	}
	var cd Coder
	if errors.As(err, &cd) {
		return cd.ExnCode()
	}
	return ""
}

// HasCode reports whether any frame in err's tree carries code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	f, ok := AsFrame(err)
	if !ok {
		return CodeOf(err) == code
	}
	found := false
	Walk(f, func(fr *Frame) bool {
		if c, ok := frameCode(fr); ok && c == code {
			found = true
		}
		return !found
	})
	return found
}
