package process

import (
	"strings"
	"testing"

	"github.com/pdiddy/refformat/internal/extract"
	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/pkg/types"
)

func newTestProcessor() *Processor {
	return New(types.DefaultFonts(), nil)
}

func TestProcessNumberedInput(t *testing.T) {
	p := newTestProcessor()

	raw := "1. Smith J. Title A\n2. Doe J. Title B"
	result := p.Process(raw, numbering.FormatPlain)

	if !result.WasStripped {
		t.Error("WasStripped = false, want true")
	}
	if result.Plain != "1. Smith J. Title A\n2. Doe J. Title B" {
		t.Errorf("Plain = %q", result.Plain)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("Entries = %v", result.Entries)
	}
	if result.Entries[0] != "Smith J. Title A" {
		t.Errorf("entry 0 = %q", result.Entries[0])
	}
}

func TestProcessFullWidthNumbering(t *testing.T) {
	p := newTestProcessor()

	// 【1】 folds to [1] before stripping, and the period after the
	// ideograph widens to a Chinese period.
	result := p.Process("【1】张三. 论文标题", numbering.FormatBracket)

	if !result.WasStripped {
		t.Error("full-width marker not stripped")
	}
	if len(result.Entries) != 1 {
		t.Fatalf("Entries = %v", result.Entries)
	}
	if result.Entries[0] != "张三。 论文标题" {
		t.Errorf("entry = %q, want %q", result.Entries[0], "张三。 论文标题")
	}
	if result.Plain != "[1] 张三。 论文标题" {
		t.Errorf("Plain = %q", result.Plain)
	}
}

func TestProcessUnnumberedInput(t *testing.T) {
	p := newTestProcessor()

	result := p.Process("Smith J. Title A\nDoe J. Title B", numbering.FormatBracket)

	if result.WasStripped {
		t.Error("WasStripped = true for unnumbered input")
	}
	if result.Plain != "[1] Smith J. Title A\n[2] Doe J. Title B" {
		t.Errorf("Plain = %q", result.Plain)
	}
}

func TestProcessBlankInput(t *testing.T) {
	p := newTestProcessor()

	for _, raw := range []string{"", "   ", "\n\n\t\n"} {
		result := p.Process(raw, numbering.FormatPlain)
		if result.Plain != "" || result.Styled != "" || result.WasStripped || len(result.Entries) != 0 {
			t.Errorf("Process(%q) = %+v, want zero result", raw, result)
		}
	}
}

// Plain and styled outputs are built from the same entry list: the
// styled document must extract back to the plain entries.
func TestProcessRepresentationsAgree(t *testing.T) {
	p := newTestProcessor()

	raw := "[3] Smith J. Title A\n[7] 张三。论文标题\n[1] Doe J. Title B"
	result := p.Process(raw, numbering.FormatBracket)

	recovered := extract.Entries(result.Styled)
	if len(recovered) != len(result.Entries) {
		t.Fatalf("styled extracts %d entries, plain has %d", len(recovered), len(result.Entries))
	}
	for i := range recovered {
		if recovered[i] != result.Entries[i] {
			t.Errorf("entry %d: styled %q vs plain %q", i, recovered[i], result.Entries[i])
		}
	}

	// Renumbering is contiguous regardless of the stripped numbers.
	for i, line := range strings.Split(result.Plain, "\n") {
		_, stripped, n := numbering.Strip(line)
		if !stripped || n != i+1 {
			t.Errorf("line %d renumbered as %d (stripped=%v)", i, n, stripped)
		}
	}
}

func TestSplitPreview(t *testing.T) {
	p := newTestProcessor()

	if got := p.SplitPreview("  "); got != "" {
		t.Errorf("SplitPreview(blank) = %q, want empty", got)
	}

	got := p.SplitPreview("Smith 2020\n\nDoe 2021")
	if !strings.Contains(got, "共检测到 2 篇文献") {
		t.Errorf("blank-gap split not detected: %q", got)
	}
}

func TestFormattedSplitPreview(t *testing.T) {
	p := newTestProcessor()

	if got := p.FormattedSplitPreview("", numbering.FormatPlain); got != "" {
		t.Errorf("FormattedSplitPreview(blank) = %q, want empty", got)
	}

	// The formatted path renumbers first, so detection runs on exact
	// markers and every entry lands in its own block.
	raw := "[1] Smith J. Title A\n[2] Doe J. Title B\n[3] Zhang S. Title C"
	got := p.FormattedSplitPreview(raw, numbering.FormatPlain)
	if !strings.Contains(got, "共检测到 3 篇文献") {
		t.Errorf("formatted split = %q", got)
	}
}

func TestProcessorIsReusable(t *testing.T) {
	p := newTestProcessor()

	first := p.Process("[1] one\n[2] two", numbering.FormatPlain)
	second := p.Process("[1] one\n[2] two", numbering.FormatPlain)

	if first.Plain != second.Plain || first.Styled != second.Styled {
		t.Error("repeated Process calls disagree")
	}
}
