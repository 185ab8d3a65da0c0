// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package input loads the files handed to the cmp command into values the
// comparator can classify: raw text, decoded JSON or YAML, and CSV or XLSX
// sheets turned into arrays of records keyed by their header row.
package input
