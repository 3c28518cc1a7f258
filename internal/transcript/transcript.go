// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript handles the chat-transcript side of a save: optional
// YAML front matter carrying note metadata, default note titles, and
// empty-content checks.
package transcript

import (
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Meta is note metadata supplied through front matter. CLI flags take
// precedence over these values.
type Meta struct {
	Title    string   `yaml:"title"`
	Notebook string   `yaml:"notebook"`
	Tags     []string `yaml:"tags"`
}

const frontMatterFence = "---"

// Parse splits optional YAML front matter from a transcript. The front
// matter block is a leading "---" line, YAML mappings, and a closing "---"
// line. Absent or malformed front matter is not an error: Parse returns
// empty metadata and the content unchanged. On success the returned body
// has the block stripped.
func Parse(content string) (Meta, string) {
	rest, ok := strings.CutPrefix(content, frontMatterFence+"\n")
	if !ok {
		return Meta{}, content
	}

	block, body, ok := cutFence(rest)
	if !ok {
		return Meta{}, content
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Meta{}, content
	}
	return meta, body
}

// cutFence splits rest at the first closing "---" line.
func cutFence(rest string) (block, body string, ok bool) {
	if after, found := strings.CutPrefix(rest, frontMatterFence+"\n"); found {
		return "", after, true
	}
	if rest == frontMatterFence {
		return "", "", true
	}
	if block, body, found := strings.Cut(rest, "\n"+frontMatterFence+"\n"); found {
		return block, body, true
	}
	if block, found := strings.CutSuffix(rest, "\n"+frontMatterFence); found {
		return block, "", true
	}
	return "", "", false
}

// DefaultTitle is the auto-generated note title used when none is supplied.
func DefaultTitle(now time.Time) string {
	return "Claude Chat - " + now.Format("2006-01-02 15:04")
}

// IsEmpty reports whether content has no meaningful text. Callers reject
// empty transcripts before conversion.
func IsEmpty(content string) bool {
	return strings.TrimSpace(content) == ""
}
