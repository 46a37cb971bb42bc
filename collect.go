// collect.go — non-short-circuiting collection of fallible results.
//
// CollectAll always drains its input. It pairs with RaiseAll to report every
// failure of a batch under one error:
//
//	files, errs := exn.CollectAll(openAll(paths))
//	if errs != nil {
//	    return exn.RaiseAll(BatchError{N: len(paths)}, errs...)
//	}
package exn

import "iter"

// CollectAll consumes seq entirely. If any item failed it returns
// (nil, failures) in order; otherwise (values, nil).
func CollectAll[T any](seq iter.Seq2[T, error]) ([]T, []error) {
	var (
		oks  []T
		errs []error
	)
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(errs) == 0 {
			oks = append(oks, v)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return oks, nil
}

// Result is one fallible outcome, for callers holding results in a slice.
type Result[T any] struct {
	Value T
	Err   error
}

// CollectSlice is CollectAll over a slice of results.
func CollectSlice[T any](rs []Result[T]) ([]T, []error) {
	return CollectAll[T](func(yield func(T, error) bool) {
		for _, r := range rs {
			if !yield(r.Value, r.Err) {
				return
			}
		}
	})
}
