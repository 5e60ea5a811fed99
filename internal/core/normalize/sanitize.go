package normalize

import (
	"strings"
	"unicode/utf8"
)

// control reports runes that never belong in a stored lead field
// C0 and C1 controls and DEL, line breaks and tabs excepted
func control(r rune) bool {
	switch {
	case r == '\n', r == '\r', r == '\t':
		return false
	case r < 0x20, r == 0x7F:
		return true
	default:
		return r >= 0x80 && r <= 0x9F
	}
}

// Sanitize drops control runes and invalid UTF-8 bytes, clean input is returned as is
func Sanitize(s string) string {
	dirty := !utf8.ValidString(s)
	for _, r := range s {
		if dirty {
			break
		}
		dirty = control(r)
	}
	if !dirty {
		return s
	}
	return strings.Map(func(r rune) rune {
		if control(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}
