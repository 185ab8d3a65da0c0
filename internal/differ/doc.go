// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes line-level differences between two flattened values
// and groups them into hunks of aligned rows with surrounding context.
package differ
