// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	var nilPtr *int
	one := 1

	tests := []struct {
		name  string
		value any
		want  Shape
	}{
		{name: "string", value: "a", want: Scalar},
		{name: "int", value: 42, want: Scalar},
		{name: "float", value: 4.2, want: Scalar},
		{name: "bool", value: true, want: Scalar},
		{name: "nil", value: nil, want: Scalar},
		{name: "nil pointer", value: nilPtr, want: Scalar},
		{name: "pointer", value: &one, want: Unclassified},
		{name: "empty slice", value: []string{}, want: Unclassified},
		{name: "nil slice", value: []any(nil), want: Unclassified},
		{name: "empty array", value: [0]int{}, want: Unclassified},
		{name: "strings", value: []string{"a", "b"}, want: ArrayOfScalars},
		{name: "mixed scalars", value: []any{"a", 1, nil, 2.5}, want: ArrayOfScalars},
		{name: "fixed array", value: [2]int{1, 2}, want: ArrayOfScalars},
		{name: "bytes", value: []byte("ab"), want: ArrayOfScalars},
		{name: "arrays", value: [][]int{{1, 2}, {3}}, want: ArrayOfArraysOfScalars},
		{name: "arrays via any", value: []any{[]any{1, "x"}, []string{"y"}}, want: ArrayOfArraysOfScalars},
		{name: "arrays with empty inner", value: [][]int{{}}, want: ArrayOfArraysOfScalars},
		{name: "records", value: []map[string]any{{"a": 1}, {"b": "x"}}, want: ArrayOfRecordsOfScalars},
		{name: "records via any", value: []any{map[string]any{"a": nil}}, want: ArrayOfRecordsOfScalars},
		{name: "top level map", value: map[string]int{"a": 1}, want: Unclassified},
		{name: "mixed arrays and scalars", value: []any{"a", []int{1}}, want: Unclassified},
		{name: "mixed arrays and records", value: []any{[]int{1}, map[string]int{"a": 1}}, want: Unclassified},
		{name: "nested too deep", value: [][][]int{{{1}}}, want: Unclassified},
		{name: "record with nested value", value: []map[string]any{{"a": []int{1}}}, want: Unclassified},
		{name: "struct", value: struct{ A int }{1}, want: Unclassified},
		{name: "slice of structs", value: []struct{ A int }{{1}}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value), tt.want.String())
		})
	}
}

func TestIsCollection(t *testing.T) {
	assert.False(t, IsCollection("a"))
	assert.False(t, IsCollection(nil))
	assert.False(t, IsCollection(3))
	assert.True(t, IsCollection([]string{}))
	assert.True(t, IsCollection(map[string]int{}))
	assert.True(t, IsCollection(struct{}{}))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "array of records of scalars", ArrayOfRecordsOfScalars.String())
	assert.Equal(t, "unclassified", Shape(99).String())
}
