// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns cleaned entry lists into the two output
// representations: a numbered plain-text listing and a Word-compatible
// styled HTML list with per-script font tags and counter-based
// auto-numbering.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/script"
	"github.com/pdiddy/refformat/pkg/types"
)

// PlainList renders entries as a numbered plain-text listing, one entry
// per line, numbered 1..N in input order. Zero entries yield "".
func PlainList(entries []string, f numbering.Format) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, f.Prefix(i+1)+entry)
	}
	return strings.Join(lines, "\n")
}

// fontSpan wraps escaped content in a span carrying the font family in
// all four mso variants, so Word applies it to every script range.
func fontSpan(font, escaped string) string {
	return fmt.Sprintf(
		`<span style="font-family: '%s'; mso-hansi-font-family: '%s'; mso-bidi-font-family: '%s'; mso-ascii-font-family: '%s';">%s</span>`,
		font, font, font, font, escaped)
}

// SpanRuns splits line into script runs and wraps each run in a
// font-tagged span. Run text is HTML-escaped here, exactly once.
func SpanRuns(line string, fonts types.FontConfig) string {
	fonts = fonts.Normalized()

	var b strings.Builder
	for _, run := range script.SplitRuns(line) {
		font := fonts.Font(script.Resolve(run))
		b.WriteString(fontSpan(font, html.EscapeString(run.Text)))
	}
	return b.String()
}

// sizedFontSpan is fontSpan with an explicit font size.
func sizedFontSpan(font string, sizePt float64, escaped string) string {
	return fmt.Sprintf(
		`<span style="font-family: '%s'; font-size: %gpt; mso-hansi-font-family: '%s'; mso-bidi-font-family: '%s'; mso-ascii-font-family: '%s';">%s</span>`,
		font, sizePt, font, font, font, escaped)
}

// SizedSpanRuns is SpanRuns with per-script font sizes in points, used
// by the document exporter where Chinese and English text are sized
// independently.
func SizedSpanRuns(line string, fonts types.FontConfig, cjkSizePt, latinSizePt float64) string {
	fonts = fonts.Normalized()

	var b strings.Builder
	for _, run := range script.SplitRuns(line) {
		class := script.Resolve(run)
		size := latinSizePt
		if class == types.ScriptCJK {
			size = cjkSizePt
		}
		b.WriteString(sizedFontSpan(fonts.Font(class), size, html.EscapeString(run.Text)))
	}
	return b.String()
}

// counterContent returns the CSS content expression that reproduces the
// format's bracket skin around the list counter.
func counterContent(f numbering.Format) string {
	switch f.CounterStyle {
	case "upper-roman":
		return `'[' counter(list-counter) '] '`
	case "lower-alpha":
		return `'(' counter(list-counter) ') '`
	default: // decimal
		return `counter(list-counter) '. '`
	}
}

// styleBlock is the embedded CSS for the styled list. The counter
// mechanism regenerates the visual number in the consumer; literal
// numerals appear only in the plain-text representation.
const styleBlock = `
<style>
    ol {
        list-style-type: none;
        counter-reset: list-counter;
        margin-left: 0;
        padding-left: 35px;
        font-family: '%[2]s';
        mso-hansi-font-family: '%[2]s';
        mso-bidi-font-family: '%[2]s';
        mso-ascii-font-family: '%[2]s';
    }
    li {
        counter-increment: list-counter;
        margin-bottom: 3px;
        position: relative;
        font-family: inherit;
    }
    li::before {
        content: %[1]s;
        position: absolute;
        left: -35px;
        width: 30px;
        text-align: right;
        display: inline-block;
        font-family: '%[2]s';
        mso-hansi-font-family: '%[2]s';
        mso-bidi-font-family: '%[2]s';
        mso-ascii-font-family: '%[2]s';
    }
</style>`

// StyledList renders the full styled document for items, where each
// item is the font-tagged inner HTML of one entry (already escaped by
// SpanRuns — never escape twice). Zero items yield "".
func StyledList(items []string, f numbering.Format, fonts types.FontConfig) string {
	if len(items) == 0 {
		return ""
	}

	fonts = fonts.Normalized()
	englishFont := fonts.EnglishFont

	var list strings.Builder
	for _, item := range items {
		fmt.Fprintf(&list,
			`<li style="mso-list: l0 level1 lfo1; font-family: '%s'; mso-hansi-font-family: '%s'; mso-bidi-font-family: '%s'; mso-ascii-font-family: '%s';">%s</li>`,
			englishFont, englishFont, englishFont, englishFont, item)
	}

	var b strings.Builder
	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word">` + "\n")
	b.WriteString("<head>\n<meta charset=\"UTF-8\">")
	fmt.Fprintf(&b, styleBlock, counterContent(f), englishFont)
	b.WriteString("\n</head>\n<body>\n<ol>")
	b.WriteString(list.String())
	b.WriteString("</ol>\n</body>\n</html>\n")
	return b.String()
}
