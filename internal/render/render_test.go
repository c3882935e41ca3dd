package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/pkg/types"
)

func TestPlainList(t *testing.T) {
	entries := []string{"Smith J. Title A", "Doe J. Title B", "Zhang S. Title C"}

	got := PlainList(entries, numbering.FormatPlain)
	want := "1. Smith J. Title A\n2. Doe J. Title B\n3. Zhang S. Title C"
	if got != want {
		t.Errorf("PlainList = %q, want %q", got, want)
	}

	got = PlainList(entries, numbering.FormatBracket)
	if !strings.HasPrefix(got, "[1] Smith") || !strings.Contains(got, "\n[3] Zhang") {
		t.Errorf("bracket PlainList = %q", got)
	}
}

func TestPlainListEmpty(t *testing.T) {
	if got := PlainList(nil, numbering.FormatPlain); got != "" {
		t.Errorf("PlainList(nil) = %q, want empty", got)
	}
}

// Numbering is always contiguous 1..N with no reordering.
func TestPlainListContiguous(t *testing.T) {
	var entries []string
	for i := 0; i < 12; i++ {
		entries = append(entries, fmt.Sprintf("entry %c", 'a'+i))
	}

	lines := strings.Split(PlainList(entries, numbering.FormatParen), "\n")
	if len(lines) != len(entries) {
		t.Fatalf("got %d lines, want %d", len(lines), len(entries))
	}
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("(%d) entry %c", i+1, 'a'+i)
		if line != wantPrefix {
			t.Errorf("line %d = %q, want %q", i, line, wantPrefix)
		}
	}
}

func TestSpanRuns(t *testing.T) {
	fonts := types.DefaultFonts()

	got := SpanRuns("张三。Title", fonts)

	if !strings.Contains(got, "'SimSun'") {
		t.Errorf("missing Chinese font: %q", got)
	}
	if !strings.Contains(got, "'Times New Roman'") {
		t.Errorf("missing English font: %q", got)
	}
	// The full-width period resolves to the Chinese font.
	if !strings.Contains(got, ">。</span>") {
		t.Errorf("CJK punctuation not wrapped: %q", got)
	}
	if strings.Count(got, "<span") != 3 {
		t.Errorf("want 3 spans, got %d: %q", strings.Count(got, "<span"), got)
	}
}

// Run text is escaped exactly once.
func TestSpanRunsEscaping(t *testing.T) {
	got := SpanRuns(`a <b> & "c"`, types.FontConfig{})

	if strings.Contains(got, "<b>") {
		t.Errorf("unescaped tag in output: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;") {
		t.Errorf("angle brackets not escaped: %q", got)
	}
	if strings.Contains(got, "&amp;amp;") {
		t.Errorf("double-escaped ampersand: %q", got)
	}
}

// CJK-resolved runs carry the Chinese size, Latin runs the English size.
func TestSizedSpanRuns(t *testing.T) {
	fonts := types.DefaultFonts()

	got := SizedSpanRuns("张三。Title", fonts, 12, 10.5)

	if !strings.Contains(got, "'SimSun'; font-size: 12pt") {
		t.Errorf("Chinese run not sized: %q", got)
	}
	if !strings.Contains(got, "'Times New Roman'; font-size: 10.5pt") {
		t.Errorf("English run not sized: %q", got)
	}
	// Both the ideograph run and the full-width period run resolve CJK
	// and take the Chinese size.
	if n := strings.Count(got, "'SimSun'; font-size: 12pt"); n != 2 {
		t.Errorf("want 2 Chinese-sized runs, got %d: %q", n, got)
	}
}

func TestStyledList(t *testing.T) {
	fonts := types.DefaultFonts()
	items := []string{
		SpanRuns("Smith J. Title", fonts),
		SpanRuns("张三。论文", fonts),
	}

	tests := []struct {
		format      numbering.Format
		wantContent string
	}{
		{numbering.FormatBracket, `'[' counter(list-counter) '] '`},
		{numbering.FormatPlain, `counter(list-counter) '. '`},
		{numbering.FormatParen, `'(' counter(list-counter) ') '`},
	}

	for _, tt := range tests {
		t.Run(tt.format.Name, func(t *testing.T) {
			got := StyledList(items, tt.format, fonts)

			if !strings.Contains(got, tt.wantContent) {
				t.Errorf("counter content %q missing from document", tt.wantContent)
			}
			if strings.Count(got, "<li") != len(items) {
				t.Errorf("want %d list items, got %d", len(items), strings.Count(got, "<li"))
			}
			if !strings.Contains(got, "counter-reset: list-counter") {
				t.Error("counter reset missing")
			}
			if !strings.Contains(got, "<ol>") || !strings.Contains(got, "</ol>") {
				t.Error("ordered list container missing")
			}
			// No literal numeral prefixes; the counter regenerates them.
			if strings.Contains(got, ">[1] ") || strings.Contains(got, ">1. ") {
				t.Errorf("literal numerals leaked into styled output: %q", got)
			}
		})
	}
}

func TestStyledListEmpty(t *testing.T) {
	if got := StyledList(nil, numbering.FormatPlain, types.FontConfig{}); got != "" {
		t.Errorf("StyledList(nil) = %q, want empty", got)
	}
}

func TestBlockPreview(t *testing.T) {
	markers := []types.BoundaryMarker{
		{Line: "[1] Smith", IsStart: true},
		{Line: "wrapped title", IsStart: false},
		{Line: "[2] Doe", IsStart: true},
		{Line: "[3] Zhang", IsStart: true},
	}

	got := BlockPreview(markers)

	if !strings.Contains(got, "文献 1") || !strings.Contains(got, "文献 3") {
		t.Errorf("block headers missing: %q", got)
	}
	if !strings.Contains(got, "共检测到 3 篇文献") {
		t.Errorf("count footer wrong: %q", got)
	}
	if !strings.Contains(got, "wrapped title") {
		t.Errorf("continuation line missing: %q", got)
	}
}

func TestBlockPreviewEmpty(t *testing.T) {
	if got := BlockPreview(nil); got != "" {
		t.Errorf("BlockPreview(nil) = %q, want empty", got)
	}
}

func TestBlockPreviewEscapesLines(t *testing.T) {
	markers := []types.BoundaryMarker{{Line: "<script>alert(1)</script>", IsStart: true}}
	got := BlockPreview(markers)
	if strings.Contains(got, "<script>") {
		t.Errorf("line not escaped: %q", got)
	}
}
