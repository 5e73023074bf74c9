/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package csvline implements the bespoke comma-delimited tokenizer this
// library's line format relies on. It is not RFC4180: a field is quoted
// only when it opens with '"' AND a matching, unescaped closing quote is
// immediately followed by ',', '\n', or end of string. encoding/csv applies
// different (and incompatible) escaping rules, so this tokenizer is a
// direct, from-scratch port rather than a wrapper around the standard
// library package.
package csvline

import "strings"

// Tokenizer splits one line into comma-delimited fields, honoring the
// quoting rule above. It holds no state beyond the remaining input, so the
// zero value is not useful; construct with NewTokenizer.
type Tokenizer struct {
	rest    string
	hasMore bool
}

// NewTokenizer prepares s for tokenizing. A trailing '\n' (and preceding
// '\r', if present) should already be stripped by the caller; csvline does
// not strip them itself, and a '\n' right after a closing quote ends the
// line (anything after it is dropped).
func NewTokenizer(s string) *Tokenizer {
	return &Tokenizer{rest: s, hasMore: true}
}

// findEndQuote looks, starting just after the opening quote at index 0 of
// s, for the matching close quote: a '"' immediately followed by ',', '\n',
// end of string, or another '"' (which is the escape for a literal quote, and
// is skipped over rather than treated as a terminator). Returns the index
// of the terminating quote, or -1 if none exists.
func findEndQuote(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		if i+1 < len(s) {
			switch s[i+1] {
			case '"':
				i++ // escaped quote; skip the pair and keep scanning
				continue
			case ',', '\n':
				return i
			}
			continue
		}
		return i // quote is the last character: end of string terminates it
	}
	return -1
}

// Next returns the next field and true, or ("", false) when no fields
// remain. A quoted field has its outer quotes stripped and any "" pair
// decoded to a single '"'. An unquoted field is returned verbatim,
// including any leading or trailing whitespace.
func (t *Tokenizer) Next() (string, bool) {
	if !t.hasMore {
		return "", false
	}

	s := t.rest
	if len(s) > 0 && s[0] == '"' {
		if end := findEndQuote(s); end >= 0 {
			field := s[1:end]
			if end+1 < len(s) && s[end+1] == ',' {
				t.rest = s[end+2:]
				t.hasMore = true
			} else {
				t.rest = ""
				t.hasMore = false
			}
			return strings.ReplaceAll(field, `""`, `"`), true
		}
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		t.rest = s[i+1:]
		t.hasMore = true
		return s[:i], true
	}
	t.rest = ""
	t.hasMore = false
	return s, true
}

// Fields splits s into all of its comma-delimited fields.
func Fields(s string) []string {
	tok := NewTokenizer(s)
	var out []string
	for {
		f, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, f)
	}
	return out
}

// Quote is the write-side counterpart of Tokenizer: it returns s unchanged
// if it contains neither ',' nor '"', and otherwise wraps it in quotes,
// doubling every embedded '"'.
func Quote(s string) string {
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
