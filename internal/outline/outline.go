// Package outline derives a navigation index from a block sequence.
package outline

import "github.com/dgallion1/blockdoc/internal/block"

// ItemType distinguishes the two kinds of navigable blocks.
type ItemType string

const (
	Heading ItemType = "heading"
	Ref     ItemType = "ref"
)

// Item is a read-only projection of one heading or ref block. It has no
// identity beyond its source block and is rebuilt from scratch on every
// change to the sequence.
type Item struct {
	ID      string   `json:"id"`
	BlockID string   `json:"blockId"`
	Type    ItemType `json:"type"`
	Level   int      `json:"level"` // 1..3 for headings, 0 for refs
	Text    string   `json:"text"`
}

const (
	untitledLabel = "(untitled)"
	refLabel      = "(reference block)"

	// Untitled ref blocks are labeled with a prefix of their body text.
	refLabelMax = 24
)

// Build walks the block sequence once, in order, and emits one item per
// heading or ref block. All other block types are skipped. The result order
// matches the input order.
func Build(blocks []block.Block) []Item {
	var items []Item
	for _, b := range blocks {
		switch b.Type {
		case block.Heading1, block.Heading2, block.Heading3:
			text := b.Text
			if text == "" {
				text = untitledLabel
			}
			items = append(items, Item{
				ID:      b.ID,
				BlockID: b.ID,
				Type:    Heading,
				Level:   b.HeadingLevel(),
				Text:    text,
			})
		case block.Ref:
			items = append(items, Item{
				ID:      b.ID,
				BlockID: b.ID,
				Type:    Ref,
				Level:   0,
				Text:    refItemLabel(b),
			})
		}
	}
	return items
}

func refItemLabel(b block.Block) string {
	if b.RefTitle != "" {
		return b.RefTitle
	}
	if b.Text != "" {
		r := []rune(b.Text)
		if len(r) > refLabelMax {
			r = r[:refLabelMax]
		}
		return string(r)
	}
	return refLabel
}
