// Package result holds a success-or-failure value and the combinators used to
// fan validation out over many independent inputs without failing fast.
package result

import "sales/internal/pkg/errs"

// Result is either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From lifts a conventional (value, error) pair.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Combine returns Ok with every value in input order when all results succeeded.
// Otherwise it returns one composite failure of the given kind whose Inner lists
// every failing result's error, in input order.
func Combine[T any](kind errs.Kind, message string, value any, results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	failures := make([]error, 0)

	for _, r := range results {
		if r.IsFailure() {
			failures = append(failures, r.err)
			continue
		}
		values = append(values, r.value)
	}

	if err := errs.Collect(kind, message, value, failures...); err != nil {
		return Fail[[]T](err)
	}
	return Ok(values)
}

// Map builds one Result per input, preserving order.
func Map[In, Out any](inputs []In, fn func(int, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	for i, in := range inputs {
		out, err := fn(i, in)
		results[i] = From(out, err)
	}
	return results
}
