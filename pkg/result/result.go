// Package result provides an explicit success/failure container for expected
// failure paths. Use cases and value-object factories thread Results instead
// of raising panics, so every caller handles both branches.
package result

import "sort"

// Result holds either a value or an error, never both. The zero value is a
// failure with a nil error; construct through Ok and Fail only.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps an error. A nil error still produces a failure branch; callers
// should pass a real error.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the success branch is populated.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the failure branch is populated.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value. It panics on a failure Result; use Unwrap
// when the branch is not already known.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: Value called on failure result")
	}
	return r.value
}

// Err returns the failure error, nil for a success Result.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

// Unwrap exposes the Result as an ordinary Go return pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

// Erase drops the concrete type so heterogeneous Results can be combined.
func Erase[T any](r Result[T]) Result[any] {
	if r.ok {
		return Ok[any](r.value)
	}
	return Fail[any](r.err)
}

// Combine folds a slice of Results into one. The first failure, in slice
// order, becomes the combined failure; otherwise the values are returned in
// the same order.
func Combine[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return Fail[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// CombineObject folds named Results into one. Go map iteration order is
// random, so the failure that surfaces is decided by lexicographic key
// order; this ordering is part of the contract because it determines which
// single error reaches the caller when several fields are invalid. Use
// CombineFields when declaration order must win instead.
func CombineObject(fields map[string]Result[any]) Result[map[string]any] {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string]any, len(fields))
	for _, key := range keys {
		r := fields[key]
		if r.IsFailure() {
			return Fail[map[string]any](r.err)
		}
		values[key] = r.value
	}
	return Ok(values)
}

// Field pairs a name with an already-computed Result for CombineFields.
type Field struct {
	Name   string
	Result Result[any]
}

// CombineFields behaves like CombineObject but surfaces the first failure in
// declaration order. Entity assembly uses it so error precedence follows the
// field order of the aggregate.
func CombineFields(fields []Field) Result[map[string]any] {
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		if f.Result.IsFailure() {
			return Fail[map[string]any](f.Result.err)
		}
		values[f.Name] = f.Result.value
	}
	return Ok(values)
}
