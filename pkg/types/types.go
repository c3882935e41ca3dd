// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data types of the refformat pipeline.
package types

// ScriptClass identifies the script family of a run of text.
type ScriptClass string

const (
	// ScriptCJK covers CJK Unified Ideographs (U+4E00..U+9FFF).
	ScriptCJK ScriptClass = "cjk"

	// ScriptLatin covers ASCII letters, digits, and whitespace.
	ScriptLatin ScriptClass = "latin"

	// ScriptOther covers remaining punctuation and symbols. A run of this
	// class resolves to a display script by sniffing for known CJK
	// punctuation characters.
	ScriptOther ScriptClass = "other"
)

// ScriptRun is a maximal substring of uniform script classification,
// the atomic unit for font assignment. The concatenation of all runs of
// a line reconstructs the line exactly.
type ScriptRun struct {
	Text  string      `json:"text" yaml:"text"`
	Class ScriptClass `json:"class" yaml:"class"`
}

// BoundaryMarker pairs a line with a flag indicating whether the line
// starts a new bibliographic entry. Computed fresh per preview request,
// never cached.
type BoundaryMarker struct {
	Line    string `json:"line" yaml:"line"`
	IsStart bool   `json:"is_start" yaml:"is_start"`
}

// Result bundles the two synchronized representations of one processed
// reference list. Plain and Styled are always regenerated together from
// the same entry list so the clipboard alternatives never skew.
type Result struct {
	// Plain is the numbered plain-text listing.
	Plain string `json:"plain" yaml:"plain"`

	// Styled is the Word-compatible HTML document with per-run font tags
	// and counter-based auto-numbering.
	Styled string `json:"styled" yaml:"styled"`

	// WasStripped reports whether any input line carried pre-existing
	// numbering that was removed.
	WasStripped bool `json:"was_stripped" yaml:"was_stripped"`

	// Entries holds the cleaned entry texts in final numbering order.
	Entries []string `json:"entries" yaml:"entries"`
}
