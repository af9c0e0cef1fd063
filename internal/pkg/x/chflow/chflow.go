// Package chflow holds channel helpers that give up when a context is done.
package chflow

import "context"

// Receive waits for a value on ch. ok is false when ctx is done first or ch is
// closed.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers value on ch and reports false when ctx is done first.
func Send[T any](ctx context.Context, ch chan<- T, value T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- value:
		return true
	}
}
