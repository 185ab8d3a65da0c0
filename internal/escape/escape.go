// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package escape renders arbitrary strings in a form that is safe to place in
// a fixed-width diff table.
package escape

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// mnemonics maps the control characters that have a familiar two-character
// escape.
var mnemonics = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// String returns s with newline, carriage return and tab replaced by their
// mnemonic escapes and every other rune outside printable ASCII replaced by a
// hex escape: \xhh up to 0xff, \x{hhhh} beyond. Bytes that are not valid
// UTF-8 are escaped individually as \xhh.
func String(s string) string {
	if isPrintable(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case mnemonics[r] != "":
			b.WriteString(mnemonics[r])
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			fmt.Fprintf(&b, `\x{%04x}`, r)
		}
		i += size
	}

	return b.String()
}

// isPrintable reports whether s is entirely printable ASCII, in which case
// String can return it untouched.
func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
