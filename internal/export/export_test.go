package export

import (
	"strings"
	"testing"

	"github.com/dgallion1/blockdoc/internal/block"
)

func TestHTML_RendersBlocks(t *testing.T) {
	blocks := []block.Block{
		block.New(block.Heading1, "Title"),
		block.New(block.Paragraph, "Some text"),
		block.New(block.Bulleted, "item"),
		block.New(block.Divider, ""),
	}
	out, err := HTML("My Doc", blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<title>My Doc</title>",
		"<h1>Title</h1>",
		"<p>Some text</p>",
		"<li>item</li>",
		"<hr>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\ngot:\n%s", want, out)
		}
	}
}

func TestHTML_DividerAfterParagraphIsNotHeading(t *testing.T) {
	blocks := []block.Block{
		block.New(block.Paragraph, "text"),
		block.New(block.Divider, ""),
	}
	out, err := HTML("d", blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<h2>text</h2>") {
		t.Errorf("divider was read as a setext underline:\n%s", out)
	}
	if !strings.Contains(out, "<p>text</p>") || !strings.Contains(out, "<hr>") {
		t.Errorf("expected paragraph and rule:\n%s", out)
	}
}

func TestHTML_RefBlockAsFigure(t *testing.T) {
	ref := block.New(block.Ref, "cited <body>")
	ref.RefID = "r1"
	ref.RefTitle = "A & B"
	out, err := HTML("d", []block.Block{
		block.New(block.Paragraph, "before"),
		ref,
		block.New(block.Paragraph, "after"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<figure class="ref" data-ref-id="r1">`,
		"<blockquote>cited &lt;body&gt;</blockquote>",
		"<figcaption>A &amp; B</figcaption>",
		"<p>before</p>",
		"<p>after</p>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\ngot:\n%s", want, out)
		}
	}
}

func TestHTML_EscapesTitle(t *testing.T) {
	out, err := HTML("<script>", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<title><script></title>") {
		t.Error("expected title to be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped title, got:\n%s", out)
	}
}
