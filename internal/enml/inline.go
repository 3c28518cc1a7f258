// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enml

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
)

// placeholder returns the token standing in for extracted code span i.
// NUL bytes cannot occur in transcript text and pass through the HTML
// escape unchanged, so the token is recoverable after escaping.
func placeholder(i int) string {
	return "\x00CODE" + strconv.Itoa(i) + "\x00"
}

// Inline converts the inline Markdown spans of a single line (`code`,
// **bold**, *italic*) to ENML and HTML-escapes everything else exactly once.
//
// Code spans are extracted into an indexed side table and replaced with
// placeholder tokens before any other processing, so asterisks or markup
// characters inside them are never interpreted as formatting. Bold runs
// before italic so a ** pair is consumed whole and cannot be split into two
// italic delimiters. Unmatched backticks or asterisks are left as literal
// text; the function is total over any input.
func Inline(line string) string {
	var spans []string
	processed := inlineCodeRe.ReplaceAllStringFunc(line, func(m string) string {
		spans = append(spans, m[1:len(m)-1])
		return placeholder(len(spans) - 1)
	})

	processed = html.EscapeString(processed)

	processed = boldRe.ReplaceAllString(processed, "<strong>$1</strong>")
	processed = italicRe.ReplaceAllString(processed, "<em>$1</em>")

	for i, span := range spans {
		styled := `<span style="` + styleInlineCode + `">` + html.EscapeString(span) + `</span>`
		processed = strings.ReplaceAll(processed, html.EscapeString(placeholder(i)), styled)
	}
	return processed
}
