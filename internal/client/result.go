// ABOUTME: Result type carrying the outcome of an asynchronous API call
// ABOUTME: Explicit success/failure variants instead of nullable values

package client

import "context"

// Result is the outcome of one call delivered across goroutines
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the call succeeded
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Call runs fn and packages its return values
func Call[T any](ctx context.Context, fn func(context.Context) (T, error)) Result[T] {
	v, err := fn(ctx)
	return Result[T]{Value: v, Err: err}
}
