// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enml converts Markdown-flavored chat transcripts into ENML, the
// XHTML dialect Evernote accepts as note content. The converter is a pure
// line-oriented transformation: fenced code blocks, headings, speaker
// markers, list items, and inline code/bold/italic spans are recognized;
// everything else passes through HTML-escaped. It is safe for concurrent
// use; all state is local to one call.
package enml

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// ENML envelope. Evernote requires this exact wrapper around note content.
const (
	xmlDecl   = `<?xml version="1.0" encoding="UTF-8"?>`
	docType   = `<!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd">`
	noteOpen  = "<en-note>"
	noteClose = "</en-note>"
)

// Inline styles for generated fragments. ENML forbids CSS classes, so all
// styling is inlined.
const (
	styleCodeBlock  = "font-family: monospace; background-color: #f5f5f5; padding: 10px; margin: 10px 0; white-space: pre-wrap;"
	styleInlineCode = "font-family: monospace; background-color: #f0f0f0; padding: 2px 4px;"
	styleHuman      = "color: #0066cc; font-weight: bold; margin-top: 15px;"
	styleAssistant  = "color: #009933; font-weight: bold; margin-top: 15px;"
)

// lineKind tags the outcome of classifying one transcript line.
type lineKind int

const (
	kindFence lineKind = iota
	kindBlank
	kindHeading3
	kindHeading2
	kindHeading1
	kindHuman
	kindAssistant
	kindBullet
	kindNumbered
	kindPlain
)

// numberedRe matches a numbered-list marker: digits, a period, whitespace.
var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// classify determines the kind of a line outside a code block. The cascade
// is ordered and the first match wins; heading prefixes are checked longest
// first so "### " is not taken for "# ". The returned remainder is the text
// the fragment should carry: heading or bullet text after its marker, the
// full raw line otherwise.
func classify(line string) (lineKind, string) {
	stripped := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "```"):
		return kindFence, ""
	case stripped == "":
		return kindBlank, ""
	case strings.HasPrefix(line, "### "):
		return kindHeading3, line[4:]
	case strings.HasPrefix(line, "## "):
		return kindHeading2, line[3:]
	case strings.HasPrefix(line, "# "):
		return kindHeading1, line[2:]
	case strings.HasPrefix(line, "Human:") || strings.HasPrefix(line, "User:"):
		return kindHuman, line
	case strings.HasPrefix(line, "Assistant:") || strings.HasPrefix(line, "Claude:"):
		return kindAssistant, line
	case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
		return kindBullet, stripped[2:]
	case numberedRe.MatchString(stripped):
		return kindNumbered, line
	default:
		return kindPlain, line
	}
}

// Document converts a chat transcript to a complete ENML document. It never
// fails: malformed input (an unterminated code fence, stray delimiters)
// degrades to literal text, and the empty string yields a minimal document.
func Document(content string) string {
	var b strings.Builder
	b.WriteString(xmlDecl)
	b.WriteString(docType)
	b.WriteString(noteOpen)

	inCode := false
	var code []string

	// A single trailing newline terminates the last line; it does not
	// start an extra blank one.
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		if inCode && !strings.HasPrefix(line, "```") {
			code = append(code, line)
			continue
		}

		kind, rest := classify(line)
		switch kind {
		case kindFence:
			if inCode {
				writeCodeBlock(&b, code)
				code = nil
			}
			inCode = !inCode
		case kindBlank:
			b.WriteString("<br/>")
		case kindHeading3:
			fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(rest))
		case kindHeading2:
			fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(rest))
		case kindHeading1:
			fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(rest))
		case kindHuman:
			fmt.Fprintf(&b, `<div style="%s">%s</div>`, styleHuman, html.EscapeString(rest))
		case kindAssistant:
			fmt.Fprintf(&b, `<div style="%s">%s</div>`, styleAssistant, html.EscapeString(rest))
		case kindBullet:
			fmt.Fprintf(&b, "<div>- %s</div>", html.EscapeString(rest))
		case kindNumbered:
			// The raw line is kept verbatim so the number labels survive.
			fmt.Fprintf(&b, "<div>%s</div>", html.EscapeString(rest))
		case kindPlain:
			fmt.Fprintf(&b, "<div>%s</div>", Inline(rest))
		}
	}

	// Unterminated fence: flush whatever was collected rather than lose it.
	if inCode && len(code) > 0 {
		writeCodeBlock(&b, code)
	}

	b.WriteString(noteClose)
	return b.String()
}

// writeCodeBlock emits the accumulated fence content as one monospace block,
// escaped verbatim with whitespace preserved.
func writeCodeBlock(b *strings.Builder, lines []string) {
	fmt.Fprintf(b, `<div style="%s">%s</div>`, styleCodeBlock, html.EscapeString(strings.Join(lines, "\n")))
}
