// Package handlers carries the caller-supplied callback pairs through which
// mutating operations report their outcome. Both callbacks are optional.
package handlers

// Fn is the handler pair for operations with no success payload.
type Fn struct {
	OnSuccess func()
	OnError   func(error)
}

func (h Fn) Success() {
	if h.OnSuccess != nil {
		h.OnSuccess()
	}
}

func (h Fn) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

// FnOf is the handler pair for operations that produce a value.
type FnOf[T any] struct {
	OnSuccess func(T)
	OnError   func(error)
}

func (h FnOf[T]) Success(v T) {
	if h.OnSuccess != nil {
		h.OnSuccess(v)
	}
}

func (h FnOf[T]) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}
