// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EqualFold matches lines under Unicode case folding.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// EqualTrimSpace matches lines after trimming leading and trailing whitespace.
func EqualTrimSpace(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// EqualIgnoreSpace matches lines with all whitespace removed, so "a b" and
// "ab" are equal.
func EqualIgnoreSpace(a, b string) bool {
	return equalSkipping(a, b, false)
}

// EqualFunc returns the line comparison for the given flags, or nil for
// exact matching.
func EqualFunc(ignoreCase, ignoreSpace bool) func(a, b string) bool {
	switch {
	case ignoreCase && ignoreSpace:
		return func(a, b string) bool { return equalSkipping(a, b, true) }
	case ignoreCase:
		return EqualFold
	case ignoreSpace:
		return EqualIgnoreSpace
	default:
		return nil
	}
}

// equalSkipping walks both strings rune by rune, skipping whitespace, without
// allocating.
func equalSkipping(a, b string, fold bool) bool {
	for {
		a = strings.TrimLeftFunc(a, unicode.IsSpace)
		b = strings.TrimLeftFunc(b, unicode.IsSpace)
		if a == "" || b == "" {
			return a == b
		}
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb && (!fold || !foldEqual(ra, rb)) {
			return false
		}
		a, b = a[na:], b[nb:]
	}
}

// foldEqual reports whether ra and rb are in the same case-folding orbit.
func foldEqual(ra, rb rune) bool {
	for r := unicode.SimpleFold(ra); r != ra; r = unicode.SimpleFold(r) {
		if r == rb {
			return true
		}
	}
	return false
}
