// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package flatten

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpewDumperIsDeterministic(t *testing.T) {
	v := map[string]any{"zeta": 1, "alpha": []int{1, 2}, "mid": map[string]string{"y": "2", "x": "1"}}

	first, err := SpewDumper{}.Dump(v)
	require.NoError(t, err)
	second, err := SpewDumper{}.Dump(v)
	require.NoError(t, err)

	a, b := slices.Collect(first), slices.Collect(second)
	assert.Equal(t, a, b)
	require.NotEmpty(t, a)

	joined := strings.Join(a, "")
	assert.Less(t, strings.Index(joined, "alpha"), strings.Index(joined, "zeta"))
	for _, line := range a {
		assert.True(t, strings.HasSuffix(line, "\n"), "line %q keeps its terminator", line)
	}
}

func TestYAMLDumper(t *testing.T) {
	seq, err := YAMLDumper{}.Dump(map[string]any{"b": 1, "a": []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a:\n", "    - x\n", "b: 1\n"}, slices.Collect(seq))
}
