package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/blockdoc/internal/block"
)

// MarkdownImporter handles Markdown files using goldmark. Unlike the
// interchange parser, this accepts arbitrary CommonMark (multi-line
// paragraphs, emphasis, nested lists) and flattens it into the block model.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Import(r io.Reader, filename string) ([]block.Block, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []block.Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, convertNode(n, src)...)
	}
	return blocks, nil
}

func convertNode(n ast.Node, src []byte) []block.Block {
	switch node := n.(type) {
	case *ast.Heading:
		typ := block.Heading3
		switch node.Level {
		case 1:
			typ = block.Heading1
		case 2:
			typ = block.Heading2
		}
		return []block.Block{block.New(typ, inlineText(node, src))}

	case *ast.List:
		typ := block.Bulleted
		if node.IsOrdered() {
			typ = block.Numbered
		}
		var blocks []block.Block
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			if t := inlineText(item, src); t != "" {
				blocks = append(blocks, block.New(typ, t))
			}
		}
		return blocks

	case *ast.Blockquote:
		if t := inlineText(node, src); t != "" {
			return []block.Block{block.New(block.Quote, t)}
		}
		return nil

	case *ast.ThematicBreak:
		return []block.Block{block.New(block.Divider, "")}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if t := rawLines(n, src); t != "" {
			return []block.Block{block.New(block.Paragraph, t)}
		}
		return nil

	default:
		if t := inlineText(n, src); t != "" {
			return []block.Block{block.New(block.Paragraph, t)}
		}
		return nil
	}
}

// inlineText flattens a node's inline content to plain text, joining soft
// line breaks with spaces.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

// rawLines returns a block node's source lines verbatim (used for code
// blocks, which have no inline children).
func rawLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
