// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize corrects mixed full-width/half-width punctuation in
// bibliographic entry text: Latin-script segments get half-width
// punctuation, Chinese-script segments get full-width punctuation.
//
// The pipeline per line is: UTF-8 repair, NFC composition, a global
// full-width fold, a script-scoped punctuation pass, and whitespace
// collapse. The result is idempotent.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/refformat/internal/script"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Fold applies the global full-width to half-width table anywhere in s,
// independent of script context.
func Fold(s string) string {
	return strings.Map(func(r rune) rune {
		if half, ok := foldTable[r]; ok {
			return half
		}
		return r
	}, s)
}

// Line normalizes one entry line. Empty input yields empty output, and
// Line(Line(s)) == Line(s) for all s.
func Line(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")
	s = norm.NFC.String(s)
	s = Fold(s)
	s = scopedPass(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// isASCIIAlnum reports whether r is an ASCII letter or digit.
func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// scopedPass walks the folded line and re-widens punctuation that
// belongs to a Chinese segment. A punctuation character is
// CJK-affiliated when the character immediately to its left is an
// ideograph and the character immediately to its right is not an ASCII
// alphanumeric; everything else is Latin-affiliated. The rule keeps
// bracketed numbers after Chinese text ("张三[1]") half-width while
// widening sentence punctuation ("张三." becomes "张三。").
func scopedPass(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range rs {
		switch {
		case script.IsCJK(r), isASCIIAlnum(r), r == ' ':
			b.WriteRune(r)
		case cjkAffiliated(rs, i):
			if full, ok := halfToFull[r]; ok {
				b.WriteRune(full)
			} else {
				b.WriteRune(r)
			}
		default:
			if half, ok := latinExtra[r]; ok {
				b.WriteRune(half)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// cjkAffiliated decides the script affiliation of the punctuation rune
// at index i.
func cjkAffiliated(rs []rune, i int) bool {
	if i == 0 || !script.IsCJK(rs[i-1]) {
		return false
	}
	if i+1 < len(rs) && isASCIIAlnum(rs[i+1]) {
		return false
	}
	return true
}
