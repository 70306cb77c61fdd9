package markdown

import (
	"encoding/json"
	"strings"

	"github.com/dgallion1/blockdoc/internal/block"
)

// FromBlocks renders a block sequence to interchange text: one line per block
// except refs, which emit a fenced region. Numbered blocks always emit the
// literal ordinal `1.` — true ordering is positional and reconstructed by the
// parser from sequence position. Never fails; unrecognized types fall back to
// raw text. No trailing newline is appended.
func FromBlocks(blocks []block.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Type {
		case block.Heading1:
			lines = append(lines, "# "+b.Text)
		case block.Heading2:
			lines = append(lines, "## "+b.Text)
		case block.Heading3:
			lines = append(lines, "### "+b.Text)
		case block.Quote:
			lines = append(lines, "> "+b.Text)
		case block.Bulleted:
			lines = append(lines, "- "+b.Text)
		case block.Numbered:
			lines = append(lines, "1. "+b.Text)
		case block.Divider:
			lines = append(lines, "---")
		case block.Ref:
			fence := refOpen + " id=" + b.RefKey()
			if b.RefTitle != "" {
				fence += ` title="` + b.RefTitle + `"`
			}
			lines = append(lines, fence)
			if b.Text != "" {
				lines = append(lines, b.Text)
			}
			lines = append(lines, refClose)
		default:
			lines = append(lines, b.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// BlocksJSON renders a block sequence as the JSON interchange form. Unlike
// the text form, JSON carries block IDs, so it is the form to persist when
// IDs must stay stable across a parse round-trip (ToBlocks reads it back via
// its JSON fast path without minting new IDs).
func BlocksJSON(blocks []block.Block) string {
	data, _ := json.Marshal(blocks)
	return string(data)
}
