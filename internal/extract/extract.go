// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers clean entry text from previously generated
// styled markup. It is the lossy inverse of the styled renderer: tags
// and font metadata are discarded, entities are unescaped, and only the
// entry text survives for the document exporter.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Entries returns the entry texts of a styled markup document in
// document order. Each list item is flattened to text, entity-unescaped,
// whitespace-collapsed, and kept only if non-empty.
//
// A document without list items degrades gracefully: the whole body
// text is returned as a single entry when non-empty, so a caller
// handing over plain text still gets its content back.
func Entries(markup string) []string {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	// html.Parse is total over string input; the error path only fires
	// on reader failures, which strings.Reader never produces.
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return fallbackEntries(markup)
	}

	var entries []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			if text := clean(textContent(n)); text != "" {
				entries = append(entries, text)
			}
			return // nested lists inside an entry stay part of it
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(entries) > 0 {
		return entries
	}

	// No list items: treat the whole body as one unextracted unit.
	if text := clean(textContent(doc)); text != "" {
		return []string{text}
	}
	return nil
}

// textContent flattens the text nodes under n, skipping style and
// script payloads that are markup plumbing rather than entry text.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "style" || n.Data == "script" || n.Data == "head") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// clean collapses whitespace runs and trims.
func clean(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// tagRe strips anything tag-shaped in the regex fallback path.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// fallbackEntries is the degraded path when parsing is unavailable:
// strip tag-shaped spans, unescape entities, return the remainder.
func fallbackEntries(markup string) []string {
	text := clean(html.UnescapeString(tagRe.ReplaceAllString(markup, " ")))
	if text == "" {
		return nil
	}
	return []string{text}
}
