// join.go — errors.Join-shaped convenience over RaiseAll.
//
// Goals:
//   • Keep the stdlib shape for the concise form:
//       - Error() == newline-joined child Error() strings (like errors.Join).
//       - errors.Is/As reach every joined error through the frame tree.
//   • Make every joined error a child frame, so %+v renders the whole set
//     with any of the tree layouts.
//
// Prefer RaiseAll when the failures explain a typed error of your own; Join
// is for the case where the set itself is the error.
package exn

import "strings"

// joined is the payload of a Join root. Its text is fixed at join time
// because the children may be handles that are consumed by the join.
type joined struct {
	msg string
}

func (j joined) Error() string { return j.msg }

// Join returns an error whose children are the given errors, ignoring nils.
// Behavior:
//   • All nil → nil
//   • One non-nil → that error (identity preserved)
//   • 2+ non-nil → *Exn[error] with one child per error; handles are consumed
func Join(errs ...error) error {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			if r, ok := e.(rooted); ok && r.root() == nil {
				continue
			}
			nz = append(nz, e)
		}
	}
	switch len(nz) {
	case 0:
		return nil
	case 1:
		return nz[0]
	}

	var sb strings.Builder
	for i, e := range nz {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}

	loc := captureLocation(1)
	n := newExn[error](joined{msg: sb.String()}, loc)
	for _, e := range nz {
		n.frame.children = append(n.frame.children, adopt(e, loc))
	}
	return n
}

// Append joins more errors onto head with Join semantics, returning head
// itself when there is nothing to add.
func Append(head error, more ...error) error {
	if head == nil {
		return Join(more...)
	}
	onlyNil := true
	for _, e := range more {
		if e != nil {
			onlyNil = false
			break
		}
	}
	if onlyNil {
		return head
	}

	combined := make([]error, 0, 1+len(more))
	combined = append(combined, head)
	combined = append(combined, more...)
	return Join(combined...)
}
