// Package normalize folds incoming field names and cleans field values
// Key pipeline order
// 1 Sanitize control bytes and repair UTF-8
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove format chars (BOM, zero-widths)
// 5 Width fold fullwidth to ASCII
// 6 Strip wrapping quotes
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)), // BOM FEFF, ZWJ, ZWNJ
			width.Fold,
		)
	},
}

// quotes wrapping a header cell or a value
const quotes = "\"'`«»“”"

// Key returns the lookup form of a header or payload key
// "  Имя " and "ИМЯ" both become "имя"; a leading BOM is dropped too
func Key(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(Sanitize(s), "")

	tr := chainPool.Get().(transform.Transformer)
	ks, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ks = strings.ToLower(s)
	}

	ks = strings.Trim(collapseSpaces(ks), quotes)
	return collapseSpaces(ks)
}

// Value returns a cleaned field value, empty means absent
// inner line breaks survive, control bytes do not
func Value(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(Sanitize(s))
}

// Unquote trims whitespace and one layer of wrapping quotes
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		f, l := s[0], s[len(s)-1]
		if (f == '"' && l == '"') || (f == '\'' && l == '\'') {
			s = s[1 : len(s)-1]
			s = strings.ReplaceAll(s, string(f)+string(f), string(f))
		}
	}
	return strings.TrimSpace(s)
}

// collapseSpaces converts any whitespace run to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
