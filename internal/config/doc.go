// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads flatdiff's optional user configuration, a YAML document
// named flatdiff.yaml in the user's configuration directory (or the file named
// by FLATDIFF_CFG_FILE), and exposes typed accessors over dotted key paths.
//
// A typical file:
//
//	cmp:
//	  style: table
//	  strict:
//	    - --context 1
//	colors:
//	  changed: "#f6be00"
package config
