// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package numbering strips pre-existing enumeration markers from
// reference lines and defines the supported presentation formats.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// markerRe matches a leading enumeration marker in one of three shapes:
// [n], (n), or n. — optionally surrounded by whitespace.
var markerRe = regexp.MustCompile(`^\s*(\[\d+\]|\(\d+\)|\d+\.)\s*`)

// Strip removes a leading enumeration marker from line. It returns the
// cleaned remainder, whether a marker was found, and the recovered
// integer. A digit run that fails integer conversion recovers 0 while
// still reporting a strip. Calling Strip on already-stripped text is a
// no-op, so idempotent pipelines are safe.
func Strip(line string) (cleaned string, stripped bool, n int) {
	loc := markerRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return strings.TrimSpace(line), false, 0
	}

	marker := line[loc[2]:loc[3]]
	digits := strings.Trim(marker, "[]() .")
	n, err := strconv.Atoi(digits)
	if err != nil {
		n = 0
	}

	return strings.TrimSpace(line[loc[1]:]), true, n
}

// Format is one presentation style for list numbers: a plain-text
// prefix template plus the HTML counter skin that reproduces the same
// bracketing in styled output.
type Format struct {
	// Name is the identifier used on the CLI and in config files.
	Name string

	// PlainPrefix is a fmt template with a single %d verb, e.g. "[%d] ".
	PlainPrefix string

	// CounterStyle identifies the styled-list counter skin. The names
	// are historical Word list-type identifiers; the rendered symbol is
	// always an Arabic digit with a format-specific bracket.
	CounterStyle string
}

// Prefix instantiates the plain-text template for entry number i.
func (f Format) Prefix(i int) string {
	return fmt.Sprintf(f.PlainPrefix, i)
}

// The closed set of supported formats.
var (
	// FormatBracket renders "[1] ". Recommended for GB/T 7714 lists.
	FormatBracket = Format{Name: "bracket", PlainPrefix: "[%d] ", CounterStyle: "upper-roman"}

	// FormatPlain renders "1. ", the Word default.
	FormatPlain = Format{Name: "plain", PlainPrefix: "%d. ", CounterStyle: "decimal"}

	// FormatParen renders "(1) ".
	FormatParen = Format{Name: "paren", PlainPrefix: "(%d) ", CounterStyle: "lower-alpha"}
)

// Formats lists the supported formats in presentation order. The first
// entry is the fallback for unknown names.
var Formats = []Format{FormatBracket, FormatPlain, FormatParen}

// ByName returns the format with the given name. Unknown names fall
// back to the first registered format rather than failing, so a stale
// config value degrades to a usable default.
func ByName(name string) Format {
	for _, f := range Formats {
		if f.Name == name {
			return f
		}
	}
	return Formats[0]
}
