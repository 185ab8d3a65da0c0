// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller narrows a JSON document to the part named by a dot path,
// so that only that part of an input file is compared.
package driller
