package result

/*
{-| A `Result` is the result of a computation that may fail.

# Type and Constructors
@docs Result

# Mapping
@docs map

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, mapError
-}
*/

import (
	"github.com/npillmayer/patmat/maybe"
)

type Result[T any] interface {
	WithDefault(T) T
	ToMaybe() maybe.Maybe[T]
	get() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err == nil {
		return maybe.Just(r.value)
	}
	return maybe.Nothing[T]()
}

func (r result[T]) get() (T, error) {
	return r.value, r.err
}

// getAny is the untyped view the pattern adaptors work through.
func (r result[T]) getAny() (interface{}, error) {
	return r.value, r.err
}

func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	v, err := x.get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	v, err := x.get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	if _, err := x.get(); err != nil {
		return Err[T](f(err))
	}
	return x
}
