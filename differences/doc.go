// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differences compares two flat values (strings, arrays of scalars,
// arrays of arrays of scalars, arrays of records of scalars) and, when they
// differ, renders a side-by-side table of the differing lines.
//
//	func TestReport(t *testing.T) {
//		differences.Assert(t, render(), golden)
//	}
//
// Values of any other structure are serialized by a Dumper and compared line
// by line. Outcomes are handed to a Reporter: TB for Go tests, TAP for a TAP
// stream, or whatever SetDefaultReporter installed at startup.
package differences
