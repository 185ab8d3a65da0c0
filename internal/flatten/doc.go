// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package flatten turns classified values into ordered, escaped display lines.
// Scalars are split on line boundaries. Arrays become one line per element,
// with nested arrays and records laid out as comma-joined, column-aligned
// rows. Values the classifier could not place go to a Dumper instead.
package flatten
