// Package paste converts clipboard rich content into block fragments to be
// spliced into a document. It approximates the source's block structure and
// never errors; unusable input yields an empty fragment, which tells the
// caller to fall back to native caret insertion.
package paste

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/blockdoc/internal/block"
)

// HTMLToBlocks parses a pasted HTML fragment into new blocks. When the HTML
// yields no block-worthy content, the plain-text fallback is split on
// newlines into one paragraph per non-blank line. A single-line plain-text
// paste with no HTML at all returns nil: the caller should let the rendering
// surface do its default single-line insertion.
func HTMLToBlocks(fragment, plainText string) []block.Block {
	hasHTML := strings.TrimSpace(fragment) != ""
	var blocks []block.Block

	if hasHTML {
		if doc, err := html.Parse(strings.NewReader(fragment)); err == nil {
			root := findBody(doc)
			if root == nil {
				root = doc
			}
			w := &walker{}
			w.walk(root, "")
			w.flush()
			blocks = w.blocks
		}
	}
	if len(blocks) > 0 {
		return blocks
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(plainText, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	if !hasHTML && len(lines) == 1 {
		return nil
	}
	for _, line := range lines {
		blocks = append(blocks, block.New(block.Paragraph, line))
	}
	return blocks
}

// walker does a depth-first pass over the parsed fragment, accumulating
// visible text in a single buffer. Block-level leaf tags flush the buffer and
// emit a typed block from their aggregate text; container tags flush around
// their children; everything else feeds the buffer.
type walker struct {
	blocks []block.Block
	buf    strings.Builder
}

func (w *walker) flush() {
	t := strings.TrimSpace(w.buf.String())
	if t != "" {
		w.blocks = append(w.blocks, block.New(block.Paragraph, t))
	}
	w.buf.Reset()
}

// listTag is the nearest enclosing list container ("ul" or "ol", "" outside
// any list); it decides whether an <li> becomes bulleted or numbered.
func (w *walker) walk(n *html.Node, listTag string) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		w.buf.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return

		case "ul", "ol", "div":
			w.flush()
			nested := listTag
			if n.Data != "div" {
				nested = n.Data
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				w.walk(c, nested)
			}
			w.flush()
			return

		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote":
			w.flush()
			// Nested block elements inside a leaf are not recursed; their
			// rendered text arrives via the aggregate text content.
			text := textContent(n)
			if text != "" {
				w.blocks = append(w.blocks, block.New(leafType(n.Data, listTag), text))
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, listTag)
	}
}

func leafType(tag, listTag string) block.Type {
	switch tag {
	case "h1":
		return block.Heading1
	case "h2":
		return block.Heading2
	case "h3", "h4", "h5", "h6":
		return block.Heading3
	case "blockquote":
		return block.Quote
	case "li":
		if listTag == "ol" {
			return block.Numbered
		}
		return block.Bulleted
	}
	return block.Paragraph
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
