package extract

import (
	"regexp"
	"strings"
)

// Pre-compiled expressions for markdown stripping.
var (
	mdCodeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	mdInlineCode   = regexp.MustCompile("`[^`]+`")
	mdImages       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLinks        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeadings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBlockquote   = regexp.MustCompile(`(?m)^>\s*`)
	mdRule         = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	mdListMarkers  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdNumberedList = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	mdNewlines     = regexp.MustCompile(`\n{3,}`)
)

// Markdown strips markdown formatting and returns the plain text.
// This is a simplified implementation that handles common cases.
func Markdown(_ string, content []byte) (string, error) {
	text := string(content)

	text = mdCodeBlock.ReplaceAllString(text, "")
	text = mdInlineCode.ReplaceAllString(text, "")
	text = mdImages.ReplaceAllString(text, "")

	// Keep link text, drop the target.
	text = mdLinks.ReplaceAllString(text, "$1")

	text = mdHeadings.ReplaceAllString(text, "")

	// Bold and italic markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, "_", " ")

	text = mdBlockquote.ReplaceAllString(text, "")
	text = mdRule.ReplaceAllString(text, "")
	text = mdListMarkers.ReplaceAllString(text, "")
	text = mdNumberedList.ReplaceAllString(text, "")
	text = mdNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}
