// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tfctl/flatdiff/internal/log"
)

var (
	// ErrBadSegment is returned for a path segment that is not key, key[N],
	// key[*] or [N].
	ErrBadSegment = errors.New("invalid path segment")
	// ErrNotFound is returned when a segment names nothing in the document.
	ErrNotFound = errors.New("path not found")
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]*)(\[(\d+|\*)?\])?$`)

// Drill walks path through doc. Segments are separated by dots. A bare key
// whose value is a one element array steps into that element; key[N] picks
// element N; key[*] and key[] keep the whole array. An empty path returns doc.
func Drill(doc gjson.Result, path string) (gjson.Result, error) {
	if path == "" {
		return doc, nil
	}

	current := doc
	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if matches == nil || (matches[1] == "" && matches[2] == "") {
			return gjson.Result{}, fmt.Errorf("%w: %q", ErrBadSegment, p)
		}

		val := current
		if key := matches[1]; key != "" {
			val = current.Get(gjson.Escape(key))
			if !val.Exists() {
				return gjson.Result{}, fmt.Errorf("%w: %q", ErrNotFound, path)
			}
		}

		if val.IsArray() {
			arr := val.Array()
			switch idx := matches[3]; {
			case idx == "" && matches[2] == "":
				if len(arr) == 1 {
					val = arr[0]
				}
			case idx == "" || idx == "*":
			default:
				i, err := strconv.Atoi(idx)
				if err != nil || i >= len(arr) {
					return gjson.Result{}, fmt.Errorf("%w: %q index %s", ErrNotFound, p, idx)
				}
				val = arr[i]
			}
		} else if matches[3] != "" && matches[3] != "*" {
			return gjson.Result{}, fmt.Errorf("%w: %q is not an array", ErrNotFound, p)
		}

		log.Tracef("drill: segment=%s type=%s", p, val.Type)
		current = val
	}

	return current, nil
}

// DrillString parses jsonData and drills into it.
func DrillString(jsonData string, path string) (gjson.Result, error) {
	return Drill(gjson.Parse(jsonData), path)
}
