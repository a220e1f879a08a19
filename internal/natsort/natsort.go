// Package natsort implements natural filename ordering: maximal digit runs
// compare by numeric value instead of lexicographically, so "page2.pdf"
// sorts before "page10.pdf".
package natsort

import (
	"path/filepath"
	"sort"
	"strings"
)

// Token is one element of a natural-sort key: either a lowercase literal
// substring or a run of decimal digits compared numerically.
type Token struct {
	Text    string
	Numeric bool
}

// Key splits s at every maximal run of decimal digits, keeping the runs as
// numeric tokens and lowercasing the literal parts in between. Empty literal
// segments are dropped so keys for typically-named files align position by
// position.
func Key(s string) []Token {
	var tokens []Token
	start := 0
	inDigits := false

	flush := func(end int, numeric bool) {
		if end == start {
			return
		}
		text := s[start:end]
		if !numeric {
			text = strings.ToLower(text)
		}
		tokens = append(tokens, Token{Text: text, Numeric: numeric})
	}

	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if isDigit != inDigits {
			flush(i, inDigits)
			start = i
			inDigits = isDigit
		}
	}
	flush(len(s), inDigits)
	return tokens
}

// Compare orders two keys element by element. Numeric tokens compare by
// integer value; a numeric token against a literal token falls back to plain
// string comparison of the token texts, which keeps the order total for
// irregularly named files. Shorter keys sort first when one is a prefix of
// the other.
func Compare(a, b []Token) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var c int
		if a[i].Numeric && b[i].Numeric {
			c = compareDigits(a[i].Text, b[i].Text)
		} else {
			c = strings.Compare(a[i].Text, b[i].Text)
		}
		if c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// compareDigits compares two decimal digit runs by numeric value without
// parsing them, so arbitrarily long runs cannot overflow. Leading zeros are
// ignored for the value comparison; equal values tie-break on fewer leading
// zeros ("1" before "01") to keep the order total.
func compareDigits(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) - len(tb)
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return len(a) - len(b)
}

// Less reports whether basename a naturally sorts before basename b.
func Less(a, b string) bool {
	return Compare(Key(a), Key(b)) < 0
}

// SortFiles stably sorts full paths in place by the natural key of their
// basenames. Sorting is deterministic and idempotent.
func SortFiles(paths []string) {
	keys := make(map[string][]Token, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		if _, ok := keys[base]; !ok {
			keys[base] = Key(base)
		}
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return Compare(keys[filepath.Base(paths[i])], keys[filepath.Base(paths[j])]) < 0
	})
}
