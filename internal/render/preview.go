// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/refformat/pkg/types"
)

// blockStyle is one of the cycling pastel palettes for preview blocks.
type blockStyle struct {
	bg       string
	border   string
	headerBg string
}

// blockStyles cycle per entry so adjacent blocks are visually distinct.
var blockStyles = []blockStyle{
	{bg: "#f0f8ff", border: "#b0d0e0", headerBg: "#d0e8f0"},
	{bg: "#fff8f0", border: "#e0c0b0", headerBg: "#f0e0d0"},
	{bg: "#f8f8f0", border: "#d0d0b0", headerBg: "#e8e8d0"},
}

// BlockPreview groups marked lines into entry blocks and renders them
// as an HTML preview: one bordered, numbered block per entry plus a
// footer with the detected count. Empty input yields "".
func BlockPreview(markers []types.BoundaryMarker) string {
	if len(markers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; font-size: 11pt; line-height: 1.5; padding: 10px;">`)

	var block []string
	blockIndex := 0

	for i, m := range markers {
		if i > 0 && m.IsStart && len(block) > 0 {
			b.WriteString(renderBlock(block, blockIndex))
			block = block[:0]
			blockIndex++
		}
		block = append(block, m.Line)
	}
	if len(block) > 0 {
		b.WriteString(renderBlock(block, blockIndex))
	}

	fmt.Fprintf(&b,
		`<div style="text-align: center; color: #666; padding: 15px; background: #f0f0f0; border-radius: 5px; margin-top: 20px; font-size: 10pt;">共检测到 %d 篇文献</div>`,
		blockIndex+1)
	b.WriteString("</div>")

	return b.String()
}

// renderBlock renders one entry block: a numbered header bar plus one
// row per non-blank line.
func renderBlock(lines []string, blockNum int) string {
	style := blockStyles[blockNum%len(blockStyles)]

	var b strings.Builder
	fmt.Fprintf(&b,
		`<div style="margin: 25px 0; border-radius: 8px; box-shadow: 0 3px 6px rgba(0,0,0,0.1);">`+
			`<div style="background: %s; padding: 10px 15px; font-weight: bold; border-radius: 8px 8px 0 0; border: 2px solid %s; border-bottom: 1px dashed %s; color: #333; font-size: 12pt;">文献 %d</div>`,
		style.headerBg, style.border, style.border, blockNum+1)

	fmt.Fprintf(&b,
		`<div style="background-color: %s; border: 2px solid %s; border-top: none; border-radius: 0 0 8px 8px;">`,
		style.bg, style.border)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(&b,
			`<div style="padding: 8px 15px; border-left: 2px solid %s; border-right: 2px solid %s; font-family: 'Courier New', monospace; white-space: pre-wrap;">%s</div>`,
			style.border, style.border, html.EscapeString(line))
	}

	b.WriteString("</div></div>")
	return b.String()
}
