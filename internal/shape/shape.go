// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package shape

import (
	"reflect"
)

// Shape identifies the structure of a value.
type Shape int

const (
	// Unclassified values are rendered by a generic dumper.
	Unclassified Shape = iota
	// Scalar is a single non-collection value.
	Scalar
	// ArrayOfScalars is a non-empty ordered collection of scalars.
	ArrayOfScalars
	// ArrayOfArraysOfScalars is a non-empty ordered collection of ordered
	// collections of scalars.
	ArrayOfArraysOfScalars
	// ArrayOfRecordsOfScalars is a non-empty ordered collection of maps whose
	// values are scalars.
	ArrayOfRecordsOfScalars
)

func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case ArrayOfScalars:
		return "array of scalars"
	case ArrayOfArraysOfScalars:
		return "array of arrays of scalars"
	case ArrayOfRecordsOfScalars:
		return "array of records of scalars"
	default:
		return "unclassified"
	}
}

// Classify returns the Shape of v.
func Classify(v any) Shape {
	rv := indirect(reflect.ValueOf(v))

	if isScalar(rv) {
		return Scalar
	}

	if !isOrdered(rv) || rv.Len() == 0 {
		return Unclassified
	}

	switch {
	case allElems(rv, isScalar):
		return ArrayOfScalars
	case allElems(rv, func(e reflect.Value) bool {
		return isOrdered(e) && allElems(e, isScalar)
	}):
		return ArrayOfArraysOfScalars
	case allElems(rv, func(e reflect.Value) bool {
		return e.Kind() == reflect.Map && allMapValues(e, isScalar)
	}):
		return ArrayOfRecordsOfScalars
	}

	return Unclassified
}

// IsScalar reports whether v is a scalar: nil, a nil pointer, a string, a bool
// or any numeric kind.
func IsScalar(v any) bool {
	return isScalar(indirect(reflect.ValueOf(v)))
}

// IsCollection reports whether v is anything other than a scalar.
func IsCollection(v any) bool {
	return !IsScalar(v)
}

// Indirect returns the reflect.Value of v with interface wrapping removed. A
// nil v yields the zero Value.
func Indirect(v any) reflect.Value {
	return indirect(reflect.ValueOf(v))
}

// Elem returns the i-th element of an ordered collection with any interface
// wrapping removed.
func Elem(rv reflect.Value, i int) reflect.Value {
	return indirect(rv.Index(i))
}

// MapValue returns the value stored under key with any interface wrapping
// removed.
func MapValue(rv reflect.Value, key reflect.Value) reflect.Value {
	return indirect(rv.MapIndex(key))
}

func isScalar(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Pointer:
		return rv.IsNil()
	}

	return false
}

func isOrdered(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

func allElems(rv reflect.Value, pred func(reflect.Value) bool) bool {
	for i := 0; i < rv.Len(); i++ {
		if !pred(Elem(rv, i)) {
			return false
		}
	}
	return true
}

func allMapValues(rv reflect.Value, pred func(reflect.Value) bool) bool {
	iter := rv.MapRange()
	for iter.Next() {
		if !pred(indirect(iter.Value())) {
			return false
		}
	}
	return true
}

// indirect strips interface wrappers so that an []any holding a []string is
// seen as a slice, not as an interface.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
