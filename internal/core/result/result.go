// Package result provides an explicit success/failure value with a fallback supplier,
// used wherever a provider call may fail and a deterministic substitute must be returned.
package result

import "fmt"

// Result holds either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("result: failure without cause")
	}
	return Result[T]{err: err}
}

// Of adapts a (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Try runs fn and converts a panic into a failure.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Fail[T](fmt.Errorf("panic: %v", p))
		}
	}()
	return Of(fn())
}

// Map transforms a successful value; failures pass through.
func Map[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Try(func() (U, error) { return fn(r.value) })
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Value() (T, bool) {
	return r.value, r.err == nil
}

// Then runs check on a successful value and turns its error into a failure.
func (r Result[T]) Then(check func(T) error) Result[T] {
	if r.err != nil {
		return r
	}
	if err := check(r.value); err != nil {
		return Fail[T](err)
	}
	return r
}

// OrElse returns the value, or the supplier's output when r is a failure.
func (r Result[T]) OrElse(supplier func(error) T) T {
	if r.err != nil {
		return supplier(r.err)
	}
	return r.value
}
