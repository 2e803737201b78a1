// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides helpers for the generic payload T of a tree.
//
// Values may decide their own equality by implementing Equaler and their
// own deep copy by implementing Cloner. Everything else falls back to
// reflect.DeepEqual and a plain copy.
//
// This is an internal package used by the bst implementation.
package value

import (
	"reflect"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[T any] interface {
	Equal(other T) bool
}

// Equal compares two values of type T for equality.
// If T implements Equaler[T], that custom equality method is used,
// avoiding the potentially expensive reflect.DeepEqual.
// Otherwise, reflect.DeepEqual is used as a fallback.
func Equal[T any](v1, v2 T) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[T]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type T.
type Cloner[T any] interface {
	Clone() T
}

// CloneFunc takes a value of type T and returns the (possibly cloned) value.
type CloneFunc[T any] func(T) T

// CloneFnFactory returns CloneVal if T implements Cloner[T],
// otherwise CopyVal.
func CloneFnFactory[T any]() CloneFunc[T] {
	var zero T
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[T]); ok {
		return CloneVal[T]
	}
	return CopyVal[T]
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[T]. If val does not implement
// Cloner[T] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[T any](val T) T {
	c, ok := any(val).(Cloner[T])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// CopyVal just copies the value of any type T.
func CopyVal[T any](val T) T {
	return val
}
