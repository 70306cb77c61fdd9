// Package markdown converts between block sequences and the textual
// interchange format: Markdown-style line prefixes plus `:::ref` fenced
// reference regions. Parsing and serialization are total functions; malformed
// input degrades to the most permissive classification instead of erroring.
package markdown

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dgallion1/blockdoc/internal/block"
)

var (
	dividerRe  = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	numberedRe = regexp.MustCompile(`^\d+\.\s+`)
	bulletedRe = regexp.MustCompile(`^-\s+`)
	refIDRe    = regexp.MustCompile(`id=([^\s"]+)`)
	refTitleRe = regexp.MustCompile(`title="([^"]*)"`)
)

const (
	refOpen  = ":::ref"
	refClose = ":::"
)

// lineRule pairs a line predicate with its block constructor. Rules are tried
// in order, so classification tie-breaks (divider before bulleted, heading
// before paragraph) stay explicit.
type lineRule struct {
	match func(line, trimmed string) bool
	build func(line, trimmed string) block.Block
}

var lineRules = []lineRule{
	{
		match: func(_, trimmed string) bool { return dividerRe.MatchString(trimmed) },
		build: func(_, _ string) block.Block { return block.New(block.Divider, "") },
	},
	{
		match: func(line, _ string) bool { return strings.HasPrefix(line, "# ") },
		build: func(line, _ string) block.Block {
			return block.New(block.Heading1, strings.TrimSpace(line[2:]))
		},
	},
	{
		match: func(line, _ string) bool { return strings.HasPrefix(line, "## ") },
		build: func(line, _ string) block.Block {
			return block.New(block.Heading2, strings.TrimSpace(line[3:]))
		},
	},
	{
		match: func(line, _ string) bool { return strings.HasPrefix(line, "### ") },
		build: func(line, _ string) block.Block {
			return block.New(block.Heading3, strings.TrimSpace(line[4:]))
		},
	},
	{
		match: func(line, _ string) bool { return strings.HasPrefix(line, "> ") },
		build: func(line, _ string) block.Block {
			return block.New(block.Quote, strings.TrimSpace(line[2:]))
		},
	},
	{
		// The literal ordinal is discarded: numbering is positional.
		match: func(line, _ string) bool { return numberedRe.MatchString(line) },
		build: func(line, _ string) block.Block {
			return block.New(block.Numbered, numberedRe.ReplaceAllString(line, ""))
		},
	},
	{
		match: func(line, _ string) bool { return bulletedRe.MatchString(line) },
		build: func(line, _ string) block.Block {
			return block.New(block.Bulleted, bulletedRe.ReplaceAllString(line, ""))
		},
	},
	{
		// Fallback: any other non-blank line is a paragraph, verbatim.
		match: func(_, _ string) bool { return true },
		build: func(line, _ string) block.Block { return block.New(block.Paragraph, line) },
	},
}

// ToBlocks parses interchange text into a block sequence. It never fails and
// never returns an empty sequence: blank input yields one empty paragraph.
func ToBlocks(content string) []block.Block {
	if blocks, ok := fromJSON(content); ok {
		return block.Normalize(blocks)
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	var blocks []block.Block

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, refOpen) {
			b, next := parseRefRegion(lines, i, trimmed)
			blocks = append(blocks, b)
			i = next
			continue
		}
		for _, rule := range lineRules {
			if rule.match(line, trimmed) {
				blocks = append(blocks, rule.build(line, trimmed))
				break
			}
		}
	}

	return block.Normalize(blocks)
}

// parseRefRegion consumes a `:::ref` fenced region starting at line i. The
// marker line carries `id=<token>` and an optional quoted `title=`; both
// degrade to empty when malformed. Body lines run up to (but not including) a
// line that is exactly `:::` after trimming; the closing fence is consumed.
// An unterminated fence consumes the rest of the input as body text.
// Returns the ref block and the index of the last consumed line.
func parseRefRegion(lines []string, i int, marker string) (block.Block, int) {
	b := block.New(block.Ref, "")
	if m := refIDRe.FindStringSubmatch(marker); m != nil {
		b.RefID = m[1]
	}
	if m := refTitleRe.FindStringSubmatch(marker); m != nil {
		b.RefTitle = m[1]
	}

	var body []string
	j := i + 1
	for ; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == refClose {
			break
		}
		body = append(body, lines[j])
	}
	b.Text = strings.TrimSpace(strings.Join(body, "\n"))
	if j >= len(lines) {
		j = len(lines) - 1
	}
	return b, j
}

// jsonBlock mirrors the serialized block shape. Pointer fields let the fast
// path distinguish "missing" from "present but not a string" (the latter
// fails to unmarshal and falls through to line parsing).
type jsonBlock struct {
	ID       *string `json:"id"`
	Type     *string `json:"type"`
	Text     *string `json:"text"`
	RefID    string  `json:"refId"`
	RefTitle string  `json:"refTitle"`
}

// fromJSON attempts the JSON fast path: a whole-document JSON array of block
// objects is adopted directly, so a surface that persists the in-memory model
// as JSON round-trips losslessly. Any parse failure or shape mismatch falls
// through to line parsing.
func fromJSON(content string) ([]block.Block, bool) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var raw []jsonBlock
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, false
	}
	for _, r := range raw {
		if r.Type == nil || r.Text == nil {
			return nil, false
		}
	}

	blocks := make([]block.Block, 0, len(raw))
	for _, r := range raw {
		b := block.Block{
			Type:     block.Type(*r.Type),
			Text:     *r.Text,
			RefID:    r.RefID,
			RefTitle: r.RefTitle,
		}
		if r.ID != nil {
			b.ID = *r.ID
		} else {
			b.ID = block.NewID()
		}
		blocks = append(blocks, b)
	}
	return blocks, true
}
