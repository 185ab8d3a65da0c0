// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders differ hunks for humans. The default rendering is a
// bordered two-column table (Got | Expected); unified and context renderings
// of the same lines are also available.
package output
