// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a formatted reference list as a Word-compatible
// HTML document. It is the only part of the pipeline that touches
// external resources; writes are atomic so a failed export never leaves
// a half-written destination behind.
package export

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/render"
	"github.com/pdiddy/refformat/pkg/types"
)

// ErrResourceUnavailable marks a destination that exists but cannot be
// written: locked by another process or lacking permission. Callers
// match it with errors.Is to show actionable guidance (close the file,
// check permissions) instead of a generic failure.
var ErrResourceUnavailable = errors.New("destination unavailable")

// Document renders the full export document for the given entries:
// title heading, style block with the caller's fonts, sizes and
// spacing, and the counter-numbered entry list. Zero entries yield "".
func Document(entries []string, f numbering.Format, opts types.ExportOptions) string {
	if len(entries) == 0 {
		return ""
	}

	opts = withDefaults(opts)
	fonts := opts.FontConfig

	var list strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&list, "<li>%s</li>\n",
			render.SizedSpanRuns(entry, fonts, opts.ChineseSizePt, opts.EnglishSizePt))
	}

	var b strings.Builder
	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word">` + "\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString(styleBlock(f, opts))
	b.WriteString("</head>\n<body>\n")

	if opts.Title != "" {
		fmt.Fprintf(&b,
			`<h2 style="text-align: %s; font-size: %gpt; font-family: '%s';">%s</h2>`+"\n",
			opts.TitleAlign, opts.TitleSizePt, fonts.ChineseFont, html.EscapeString(opts.Title))
	}

	b.WriteString("<ol>\n")
	b.WriteString(list.String())
	b.WriteString("</ol>\n</body>\n</html>\n")
	return b.String()
}

// styleBlock emits the CSS for the export document: counter-based
// numbering in the chosen skin plus the paragraph-level options.
func styleBlock(f numbering.Format, opts types.ExportOptions) string {
	content := counterContent(f)

	return fmt.Sprintf(`<style>
    ol {
        list-style-type: none;
        counter-reset: list-counter;
        margin-left: 0;
        padding-left: %[4]gpt;
        font-family: '%[2]s';
        font-size: %[3]gpt;
        line-height: %[5]g;
    }
    li {
        counter-increment: list-counter;
        margin-bottom: %[6]gpt;
        padding-left: %[4]gpt;
        text-indent: -%[4]gpt;
    }
    li::before {
        content: %[1]s;
        font-family: '%[2]s';
    }
</style>
`, content, opts.EnglishFont, opts.EnglishSizePt, hangingIndent(opts), opts.LineSpacing, opts.ItemSpacingPt)
}

func hangingIndent(opts types.ExportOptions) float64 {
	if opts.HangingIndentPt > 0 {
		return opts.HangingIndentPt
	}
	return 21 // two character widths at the default size
}

// counterContent mirrors the styled renderer's bracket skins.
func counterContent(f numbering.Format) string {
	switch f.CounterStyle {
	case "upper-roman":
		return `'[' counter(list-counter) '] '`
	case "lower-alpha":
		return `'(' counter(list-counter) ') '`
	default:
		return `counter(list-counter) '. '`
	}
}

func withDefaults(opts types.ExportOptions) types.ExportOptions {
	def := types.DefaultExportOptions()
	opts.FontConfig = opts.FontConfig.Normalized()
	if opts.ChineseSizePt <= 0 {
		opts.ChineseSizePt = def.ChineseSizePt
	}
	if opts.EnglishSizePt <= 0 {
		opts.EnglishSizePt = def.EnglishSizePt
	}
	if opts.LineSpacing <= 0 {
		opts.LineSpacing = def.LineSpacing
	}
	if opts.ItemSpacingPt < 0 {
		opts.ItemSpacingPt = def.ItemSpacingPt
	}
	if opts.TitleSizePt <= 0 {
		opts.TitleSizePt = def.TitleSizePt
	}
	if opts.TitleAlign == "" {
		opts.TitleAlign = def.TitleAlign
	}
	return opts
}

// Write renders the document and writes it to path atomically: the
// content goes to a temporary file in the destination directory first
// and is renamed into place only when fully written. On failure the
// previous file, if any, is untouched.
func Write(path string, entries []string, f numbering.Format, opts types.ExportOptions) error {
	doc := Document(entries, f, opts)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".refformat-export-*")
	if err != nil {
		return classify("creating temporary file", path, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.WriteString(doc); err != nil {
		cleanup()
		return classify("writing document", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return classify("flushing document", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return classify("replacing destination", path, err)
	}

	return nil
}

// classify separates the resource-unavailable condition (permission
// denied, file locked) from generic processing failure.
func classify(op, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s %s: %v: %w", op, path, err, ErrResourceUnavailable)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
