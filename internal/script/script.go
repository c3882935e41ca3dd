// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package script classifies characters of mixed Chinese/English text and
// splits lines into maximal single-script runs for font assignment.
package script

import (
	"strings"
	"unicode"

	"github.com/pdiddy/refformat/pkg/types"
)

// cjkPunct is the set of full-width punctuation marks that mark a
// punctuation run as Chinese-styled when resolving display fonts.
const cjkPunct = "，。：；！？"

// IsCJK reports whether r is a CJK Unified Ideograph.
func IsCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// isLatin reports whether r belongs to the ASCII letter/digit/whitespace
// class rendered with the English font.
func isLatin(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return unicode.IsSpace(r)
}

// ClassOf returns the script class of a single rune.
func ClassOf(r rune) types.ScriptClass {
	switch {
	case IsCJK(r):
		return types.ScriptCJK
	case isLatin(r):
		return types.ScriptLatin
	}
	return types.ScriptOther
}

// SplitRuns segments line into maximal runs of a single script class, in
// order. Runs are non-overlapping and non-empty, and their concatenation
// equals the input exactly.
func SplitRuns(line string) []types.ScriptRun {
	if line == "" {
		return nil
	}

	var runs []types.ScriptRun
	var b strings.Builder
	current := types.ScriptClass("")

	flush := func() {
		if b.Len() > 0 {
			runs = append(runs, types.ScriptRun{Text: b.String(), Class: current})
			b.Reset()
		}
	}

	for _, r := range line {
		class := ClassOf(r)
		if class != current {
			flush()
			current = class
		}
		b.WriteRune(r)
	}
	flush()

	return runs
}

// Resolve maps a run to the script whose font it should be rendered
// with. CJK and Latin runs resolve to themselves; punctuation runs are
// Chinese-styled when they contain at least one known CJK punctuation
// character, English-styled otherwise.
func Resolve(run types.ScriptRun) types.ScriptClass {
	if run.Class != types.ScriptOther {
		return run.Class
	}
	if strings.ContainsAny(run.Text, cjkPunct) {
		return types.ScriptCJK
	}
	return types.ScriptLatin
}
