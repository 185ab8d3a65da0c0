// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package shape classifies values by their top two levels of structure so the
// flattener knows how to lay them out as lines. Anything deeper, or anything
// empty, is Unclassified and left to a generic dumper.
package shape
