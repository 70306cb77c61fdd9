package importer

import (
	"strings"
	"testing"

	"github.com/dgallion1/blockdoc/internal/block"
)

func TestMarkdownImporter_BasicDocument(t *testing.T) {
	input := `# Title

Intro text.

## Section A

- one
- two

1. first
2. second

> a quote

---
`
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		typ  block.Type
		text string
	}{
		{block.Heading1, "Title"},
		{block.Paragraph, "Intro text."},
		{block.Heading2, "Section A"},
		{block.Bulleted, "one"},
		{block.Bulleted, "two"},
		{block.Numbered, "first"},
		{block.Numbered, "second"},
		{block.Quote, "a quote"},
		{block.Divider, ""},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(blocks), blocks)
	}
	for i, w := range want {
		if blocks[i].Type != w.typ || blocks[i].Text != w.text {
			t.Errorf("block %d: expected {%s %q}, got {%s %q}",
				i, w.typ, w.text, blocks[i].Type, blocks[i].Text)
		}
	}
}

func TestMarkdownImporter_DeepHeadingsCollapse(t *testing.T) {
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader("#### Deep\n\n###### Deeper\n"), "h.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if b.Type != block.Heading3 {
			t.Errorf("block %d: expected heading3, got %q", i, b.Type)
		}
	}
}

func TestMarkdownImporter_MultilineParagraphFlattened(t *testing.T) {
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader("line one\nline two\n"), "p.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "line one line two" {
		t.Errorf("expected soft break joined with space, got %q", blocks[0].Text)
	}
}

func TestMarkdownImporter_CodeBlockKeptVerbatim(t *testing.T) {
	input := "text\n\n```\nGET /api/users\nPOST /api/users\n```\n"
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[1].Type != block.Paragraph {
		t.Errorf("expected paragraph for code block, got %q", blocks[1].Type)
	}
	if !strings.Contains(blocks[1].Text, "GET /api/users") {
		t.Errorf("expected code content, got %q", blocks[1].Text)
	}
}

func TestMarkdownImporter_EmphasisStripped(t *testing.T) {
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader("some **bold** and *italic* text"), "e.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Text != "some bold and italic text" {
		t.Fatalf("expected flattened text, got %+v", blocks)
	}
}

func TestMarkdownImporter_EmptyInput(t *testing.T) {
	p := &MarkdownImporter{}
	blocks, err := p.Import(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("expected 0 blocks for empty input, got %d", len(blocks))
	}
}
