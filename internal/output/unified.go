// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a and b as a unified diff with context lines of
// context. Lines are expected to be escaped already; each is terminated with
// a newline for the diff.
func UnifiedDiff(a, b []string, labelA, labelB string, context int) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminate(a),
		B:        terminate(b),
		FromFile: labelA,
		ToFile:   labelB,
		Context:  context,
	})
}

// ContextDiff is UnifiedDiff in the older context format.
func ContextDiff(a, b []string, labelA, labelB string, context int) (string, error) {
	return difflib.GetContextDiffString(difflib.ContextDiff{
		A:        terminate(a),
		B:        terminate(b),
		FromFile: labelA,
		ToFile:   labelB,
		Context:  context,
	})
}

func terminate(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
