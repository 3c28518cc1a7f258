// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enml

import (
	"strings"
	"testing"
)

func TestInline(t *testing.T) {
	codeSpan := func(content string) string {
		return `<span style="` + styleInlineCode + `">` + content + `</span>`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "just words",
			want:  "just words",
		},
		{
			name:  "bold",
			input: "**bold**",
			want:  "<strong>bold</strong>",
		},
		{
			name:  "italic",
			input: "*italic*",
			want:  "<em>italic</em>",
		},
		{
			name:  "bold and italic together",
			input: "**bold** and *italic*",
			want:  "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:  "inline code",
			input: "run `go test` now",
			want:  "run " + codeSpan("go test") + " now",
		},
		{
			name:  "asterisks inside code span stay literal",
			input: "`*args`",
			want:  codeSpan("*args"),
		},
		{
			name:  "markup inside code span is escaped",
			input: "use `<ptr> & co`",
			want:  "use " + codeSpan("&lt;ptr&gt; &amp; co"),
		},
		{
			name:  "bold around code span",
			input: "**x** and `**y**`",
			want:  "<strong>x</strong> and " + codeSpan("**y**"),
		},
		{
			name:  "html escaped outside spans",
			input: "a < b & c > d",
			want:  "a &lt; b &amp; c &gt; d",
		},
		{
			name:  "unmatched backtick is literal",
			input: "a ` b",
			want:  "a ` b",
		},
		{
			name:  "unmatched asterisks are literal",
			input: "2 * 3 = 6",
			want:  "2 * 3 = 6",
		},
		{
			name:  "dangling double asterisk is literal",
			input: "a ** b",
			want:  "a ** b",
		},
		{
			name:  "two code spans restored in order",
			input: "`one` then `two`",
			want:  codeSpan("one") + " then " + codeSpan("two"),
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.input); got != tt.want {
				t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInlineBoldBeforeItalic(t *testing.T) {
	// A ** pair must be consumed as bold, never split into two italics.
	got := Inline("**strong**")
	if strings.Contains(got, "<em>") {
		t.Errorf("bold delimiters mis-split into italics: %q", got)
	}
	if got != "<strong>strong</strong>" {
		t.Errorf("Inline(**strong**) = %q", got)
	}
}

func TestInlineCodeSpanShieldsFormatting(t *testing.T) {
	got := Inline("`*args` and *real*")
	if !strings.Contains(got, ">*args</span>") {
		t.Errorf("code span content altered: %q", got)
	}
	if !strings.Contains(got, "<em>real</em>") {
		t.Errorf("italic outside code span not converted: %q", got)
	}
	if strings.Contains(got, "<em>args</em>") {
		t.Errorf("italic applied inside code span: %q", got)
	}
}

func TestInlineQuotesEscaped(t *testing.T) {
	got := Inline(`say "hi"`)
	if strings.Contains(got, `"hi"`) {
		t.Errorf("quotes not escaped: %q", got)
	}
	if !strings.Contains(got, "&#34;hi&#34;") {
		t.Errorf("expected escaped quotes, got %q", got)
	}
}
