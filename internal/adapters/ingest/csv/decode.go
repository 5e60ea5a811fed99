// Package csv turns uploaded spreadsheet exports into lead inputs
// Headers are matched against a bilingual synonym table, rows without
// any identity (source, name or phone) are dropped silently
package csv

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrEmpty is returned when the upload has no non blank line
	ErrEmpty = errors.New("CSV is empty")
	// ErrNotText is returned for binary uploads
	ErrNotText = errors.New("CSV is not a text file")
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode returns the upload as UTF-8 text
// UTF-8 and UTF-16 with a BOM are honored, BOM-less bytes that are not valid
// UTF-8 are read as windows-1251 which is what Russian spreadsheet tools export
func Decode(b []byte) (string, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return "", ErrEmpty
	}

	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if !hasBOM(b) {
		if bytes.IndexByte(b, 0) >= 0 {
			return "", ErrNotText
		}
		if !utf8.Valid(b) {
			fallback = charmap.Windows1251.NewDecoder()
		}
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), b)
	if err != nil {
		return "", fmt.Errorf("csv: decode: %w", err)
	}
	if bytes.IndexByte(out, 0) >= 0 {
		return "", ErrNotText
	}
	return string(out), nil
}

func hasBOM(b []byte) bool {
	return bytes.HasPrefix(b, bomUTF8) || bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE)
}
