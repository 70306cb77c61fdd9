package paste

import (
	"testing"

	"github.com/dgallion1/blockdoc/internal/block"
)

func TestHTMLToBlocks_HeadingAndParagraph(t *testing.T) {
	blocks := HTMLToBlocks("<h1>Hi</h1><p>there</p>", "")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Heading1 || blocks[0].Text != "Hi" {
		t.Errorf("block 0: expected heading1(Hi), got %+v", blocks[0])
	}
	if blocks[1].Type != block.Paragraph || blocks[1].Text != "there" {
		t.Errorf("block 1: expected paragraph(there), got %+v", blocks[1])
	}
}

func TestHTMLToBlocks_HeadingLevels(t *testing.T) {
	blocks := HTMLToBlocks("<h2>two</h2><h3>three</h3><h4>four</h4><h6>six</h6>", "")
	want := []block.Type{block.Heading2, block.Heading3, block.Heading3, block.Heading3}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, typ := range want {
		if blocks[i].Type != typ {
			t.Errorf("block %d: expected %q, got %q", i, typ, blocks[i].Type)
		}
	}
}

func TestHTMLToBlocks_Lists(t *testing.T) {
	blocks := HTMLToBlocks("<ol><li>first</li><li>second</li></ol><ul><li>dot</li></ul>", "")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Numbered || blocks[0].Text != "first" {
		t.Errorf("block 0: expected numbered(first), got %+v", blocks[0])
	}
	if blocks[1].Type != block.Numbered || blocks[1].Text != "second" {
		t.Errorf("block 1: expected numbered(second), got %+v", blocks[1])
	}
	if blocks[2].Type != block.Bulleted || blocks[2].Text != "dot" {
		t.Errorf("block 2: expected bulleted(dot), got %+v", blocks[2])
	}
}

func TestHTMLToBlocks_Blockquote(t *testing.T) {
	blocks := HTMLToBlocks("<blockquote>wise</blockquote>", "")
	if len(blocks) != 1 || blocks[0].Type != block.Quote || blocks[0].Text != "wise" {
		t.Fatalf("expected quote(wise), got %+v", blocks)
	}
}

func TestHTMLToBlocks_InlineTagsFeedBuffer(t *testing.T) {
	// Inline markup contributes visible text only; loose text around it is
	// flushed as a trailing paragraph.
	blocks := HTMLToBlocks("some <b>bold</b> and <em>italic</em> text", "")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Paragraph || blocks[0].Text != "some bold and italic text" {
		t.Errorf("expected flattened paragraph, got %+v", blocks[0])
	}
}

func TestHTMLToBlocks_DivFlushesAround(t *testing.T) {
	blocks := HTMLToBlocks("before<div><p>inside</p></div>after", "")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(blocks), blocks)
	}
	want := []string{"before", "inside", "after"}
	for i, text := range want {
		if blocks[i].Type != block.Paragraph || blocks[i].Text != text {
			t.Errorf("block %d: expected paragraph(%q), got %+v", i, text, blocks[i])
		}
	}
}

func TestHTMLToBlocks_NestedBlockInsideLeafNotRecursed(t *testing.T) {
	// A block element nested in a leaf contributes text via the leaf's
	// aggregate content instead of producing its own block.
	blocks := HTMLToBlocks("<li>outer <p>inner</p></li>", "")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Bulleted || blocks[0].Text != "outer inner" {
		t.Errorf("expected bulleted(outer inner), got %+v", blocks[0])
	}
}

func TestHTMLToBlocks_EmptyLeafSkipped(t *testing.T) {
	blocks := HTMLToBlocks("<p></p><p>kept</p><h1>  </h1>", "")
	if len(blocks) != 1 || blocks[0].Text != "kept" {
		t.Fatalf("expected only the non-empty paragraph, got %+v", blocks)
	}
}

func TestHTMLToBlocks_PlainTextFallback(t *testing.T) {
	blocks := HTMLToBlocks("", "line one\n\nline two\nline three")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %+v", len(blocks), blocks)
	}
	want := []string{"line one", "line two", "line three"}
	for i, text := range want {
		if blocks[i].Type != block.Paragraph || blocks[i].Text != text {
			t.Errorf("block %d: expected paragraph(%q), got %+v", i, text, blocks[i])
		}
	}
}

func TestHTMLToBlocks_SingleLineNoHTMLDeclines(t *testing.T) {
	if blocks := HTMLToBlocks("", "just a word"); blocks != nil {
		t.Errorf("expected decline (nil), got %+v", blocks)
	}
	if blocks := HTMLToBlocks("", ""); blocks != nil {
		t.Errorf("expected nil for empty paste, got %+v", blocks)
	}
}

func TestHTMLToBlocks_BlocklessHTMLUsesFallback(t *testing.T) {
	// HTML was provided but produced nothing block-worthy; even a single
	// fallback line becomes a paragraph.
	blocks := HTMLToBlocks("<span></span>", "solo line")
	if len(blocks) != 1 || blocks[0].Type != block.Paragraph || blocks[0].Text != "solo line" {
		t.Fatalf("expected paragraph(solo line), got %+v", blocks)
	}
}

func TestHTMLToBlocks_ScriptIgnored(t *testing.T) {
	blocks := HTMLToBlocks("<p>visible</p><script>alert(1)</script>", "")
	if len(blocks) != 1 || blocks[0].Text != "visible" {
		t.Fatalf("expected script content dropped, got %+v", blocks)
	}
}
