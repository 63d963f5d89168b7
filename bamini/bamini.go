// Copyright 2026 The ConvertBaminiToUnicodePPTX Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package bamini converts text typed in the legacy Bamini25 Tamil font
// encoding to Unicode Tamil.
//
// Bamini is a glyph encoding, not a character encoding: each key produces a
// glyph shape, and vowel signs that render to the left of a consonant are
// typed before it. Conversion therefore matches multi-character patterns,
// longest first, and emits clusters in the logical order Unicode requires.
// Characters outside the dictionary pass through unchanged.
package bamini

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is a single substitution: a Bamini glyph sequence and the Unicode
// Tamil text that replaces it.
type Entry struct {
	Pattern     string
	Replacement string
}

// Table matches Bamini glyph sequences against text. Entries are grouped by
// their first rune and ordered longest pattern first, so a lookup at any
// position settles in one bucket scan. Tables are immutable after
// construction and safe for concurrent use.
type Table struct {
	buckets map[rune][]Entry
	size    int
}

// Default is the built-in Bamini25 dictionary.
var Default = NewTable()

// NewTable builds a Table from the built-in Bamini25 dictionary with extra
// entries merged on top. An extra entry whose Pattern already exists replaces
// the built-in replacement; new patterns are added.
func NewTable(extra ...Entry) *Table {
	entries := make([]Entry, len(baminiToUnicode), len(baminiToUnicode)+len(extra))
	copy(entries, baminiToUnicode)
	for _, e := range extra {
		replaced := false
		for i := range entries {
			if entries[i].Pattern == e.Pattern {
				entries[i].Replacement = e.Replacement
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, e)
		}
	}

	t := &Table{buckets: make(map[rune][]Entry)}
	for _, e := range entries {
		if e.Pattern == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(e.Pattern)
		t.buckets[first] = append(t.buckets[first], e)
		t.size++
	}
	for _, bucket := range t.buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return len(bucket[i].Pattern) > len(bucket[j].Pattern)
		})
	}
	return t
}

// Len reports the number of patterns in the table.
func (t *Table) Len() int {
	return t.size
}

// Lookup reports the longest pattern in the table that is a prefix of s. It
// returns the replacement text and the matched pattern's length in bytes.
// Two distinct patterns can never match the same prefix at the same length,
// so the longest match is unique.
func (t *Table) Lookup(s string) (replacement string, n int, ok bool) {
	if s == "" {
		return "", 0, false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, e := range t.buckets[first] {
		if strings.HasPrefix(s, e.Pattern) {
			return e.Replacement, len(e.Pattern), true
		}
	}
	return "", 0, false
}

// Convert rewrites Bamini encoded text as Unicode Tamil. The text is scanned
// left to right; at each position the longest matching pattern is replaced
// and the scan resumes after it, so earlier matches never reconsider text a
// later pattern could have claimed. Runes with no mapping are copied through.
func (t *Table) Convert(text string) string {
	// Most runs in a document carry no Bamini glyphs at all (numbers,
	// punctuation, embedded Unicode Tamil). Find the first match before
	// committing to a rebuild.
	i := 0
	for i < len(text) {
		if _, _, ok := t.Lookup(text[i:]); ok {
			break
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if i == len(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	b.WriteString(text[:i])
	for i < len(text) {
		if rep, n, ok := t.Lookup(text[i:]); ok {
			b.WriteString(rep)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// Convert rewrites text using the Default table.
func Convert(text string) string {
	return Default.Convert(text)
}
