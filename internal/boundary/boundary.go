// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package boundary decides which lines of a pasted reference list start
// a new bibliographic entry.
//
// Detection is a prioritized rule chain over (previous line, current
// line) pairs; the first rule returning a verdict wins. The precise
// chain trusts formatted numbering and paragraph gaps. The loose chain
// adds a keyword-density heuristic for raw, never-numbered input.
package boundary

import (
	"strings"

	"github.com/pdiddy/refformat/internal/numbering"
	"github.com/pdiddy/refformat/pkg/types"
)

// Verdict is a rule's three-valued answer: start a new entry, continue
// the current one, or abstain and defer to the next rule.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictStart
	VerdictContinue
)

// Rule inspects one line transition. prev is the raw preceding line,
// curr the raw current line.
type Rule func(prev, curr string) Verdict

// numberedRule starts a new entry on a formatted numbering marker.
// Authoritative once numbering has been applied.
func numberedRule(_, curr string) Verdict {
	trimmed := strings.TrimSpace(curr)
	if trimmed == "" {
		return VerdictContinue
	}
	if HasNumbering(trimmed) {
		return VerdictStart
	}
	return VerdictNone
}

// blankGapRule starts a new entry when content follows a blank line.
func blankGapRule(prev, curr string) Verdict {
	if strings.TrimSpace(prev) == "" && strings.TrimSpace(curr) != "" {
		return VerdictStart
	}
	return VerdictNone
}

// keywordRule starts a new entry when the line carries enough
// bibliographic indicator substrings. Loose chain only.
func keywordRule(_, curr string) Verdict {
	if LooksLikeNewReference(curr) {
		return VerdictStart
	}
	return VerdictNone
}

// The two chains, in priority order.
var (
	preciseChain = []Rule{numberedRule, blankGapRule}
	looseChain   = []Rule{numberedRule, blankGapRule, keywordRule}
)

// Detect marks entry starts using the precise chain. The first line is
// always a start, even if empty. Single forward pass, no backtracking.
func Detect(lines []string) []types.BoundaryMarker {
	return detect(lines, preciseChain)
}

// DetectLoose marks entry starts on raw, unformatted input, adding the
// keyword-density heuristic to the chain.
func DetectLoose(lines []string) []types.BoundaryMarker {
	return detect(lines, looseChain)
}

func detect(lines []string, chain []Rule) []types.BoundaryMarker {
	if len(lines) == 0 {
		return nil
	}

	markers := make([]types.BoundaryMarker, 0, len(lines))
	markers = append(markers, types.BoundaryMarker{Line: lines[0], IsStart: true})

	for i := 1; i < len(lines); i++ {
		isStart := false
		for _, rule := range chain {
			v := rule(lines[i-1], lines[i])
			if v == VerdictNone {
				continue
			}
			isStart = v == VerdictStart
			break
		}
		markers = append(markers, types.BoundaryMarker{Line: lines[i], IsStart: isStart})
	}

	return markers
}

// HasNumbering reports whether the trimmed line begins with a formatted
// numbering marker: [n], n., or (n).
func HasNumbering(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	_, stripped, _ := numbering.Strip(trimmed)
	return stripped
}

// referenceIndicators are substrings that suggest a line opens a new
// bibliographic entry, covering both English and Chinese conventions.
var referenceIndicators = []string{
	"作者：", "作者:", "author:", "authors:", "标题：", "标题:",
	"title:", "journal", "期刊", "vol.", "卷", "no.", "期",
	"pp.", "页码", "pages:", "年", "year:", "doi:", "http",
}

// LooksLikeNewReference reports whether a line reads like the start of
// a new reference: at least two indicator substrings, or one indicator
// on a short line.
func LooksLikeNewReference(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	lower := strings.ToLower(line)
	count := 0
	for _, ind := range referenceIndicators {
		if strings.Contains(lower, ind) {
			count++
		}
	}

	return count >= 2 || (len([]rune(trimmed)) < 100 && count >= 1)
}

// DetectNumberReset reports a likely renumbering artifact: both lines
// carry numbering and the previous number exceeds the current one by
// more than 5. Diagnostic signal only; detection never acts on it.
func DetectNumberReset(prev, curr string) bool {
	_, prevOK, prevN := numbering.Strip(strings.TrimSpace(prev))
	_, currOK, currN := numbering.Strip(strings.TrimSpace(curr))

	if !prevOK || !currOK || prevN <= 0 || currN <= 0 {
		return false
	}
	return currN < prevN && prevN-currN > 5
}
