// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process runs the reference normalization pipeline: numbering
// removal, character normalization, script-run styling, and rendering
// into the two synchronized output representations.
package process

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/refformat/internal/boundary"
	"github.com/pdiddy/refformat/internal/normalize"
	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/internal/render"
	"github.com/pdiddy/refformat/pkg/types"
)

// Processor holds the immutable configuration of one pipeline. It keeps
// no per-call state: every method is a pure function of its input, so a
// single Processor is safe for concurrent use.
type Processor struct {
	fonts types.FontConfig
	log   *zap.Logger
}

// New returns a Processor using the given fonts. A nil logger disables
// logging; no behavior depends on it.
func New(fonts types.FontConfig, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{fonts: fonts.Normalized(), log: log}
}

// Process cleans and renders a pasted reference list. Per line it
// folds full-width characters, strips pre-existing numbering,
// normalizes punctuation by script, and builds both the plain and the
// styled representation from the same entry list. Blank input yields a
// zero Result.
func (p *Processor) Process(raw string, f numbering.Format) types.Result {
	if strings.TrimSpace(raw) == "" {
		return types.Result{}
	}

	var entries []string
	var items []string
	wasStripped := false

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Fold before stripping so full-width markers like 【1】 are
		// recognized as numbering.
		folded := normalize.Fold(line)
		cleaned, stripped, n := numbering.Strip(folded)
		if stripped {
			wasStripped = true
			p.log.Debug("stripped numbering", zap.Int("number", n))
		}

		entry := normalize.Line(cleaned)
		entries = append(entries, entry)
		items = append(items, render.SpanRuns(entry, p.fonts))
	}

	result := types.Result{
		Plain:       render.PlainList(entries, f),
		Styled:      render.StyledList(items, f, p.fonts),
		WasStripped: wasStripped,
		Entries:     entries,
	}

	p.log.Debug("processed reference list",
		zap.Int("entries", len(entries)),
		zap.String("format", f.Name),
		zap.Bool("was_stripped", wasStripped))

	return result
}

// SplitPreview renders the grouped-entry preview for raw, unformatted
// input, using the loose boundary chain (numbering, paragraph gaps,
// keyword density).
func (p *Processor) SplitPreview(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	markers := boundary.DetectLoose(strings.Split(raw, "\n"))
	return render.BlockPreview(markers)
}

// FormattedSplitPreview formats the input first and then renders the
// grouped preview of the renumbered output. On formatted lines the
// precise numbering chain is authoritative, so every entry lands in its
// own block.
func (p *Processor) FormattedSplitPreview(raw string, f numbering.Format) string {
	result := p.Process(raw, f)
	if result.Plain == "" {
		return ""
	}

	markers := boundary.Detect(strings.Split(result.Plain, "\n"))
	return render.BlockPreview(markers)
}
