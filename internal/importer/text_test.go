package importer

import (
	"strings"
	"testing"

	"github.com/dgallion1/blockdoc/internal/block"
)

func TestTextImporter_ParagraphGrouping(t *testing.T) {
	input := "first line\nsecond line\n\nnext paragraph\n\n\nlast one\n"
	p := &TextImporter{}
	blocks, err := p.Import(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first line second line", "next paragraph", "last one"}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(blocks), blocks)
	}
	for i, text := range want {
		if blocks[i].Type != block.Paragraph || blocks[i].Text != text {
			t.Errorf("block %d: expected paragraph(%q), got %+v", i, text, blocks[i])
		}
	}
}

func TestTextImporter_Empty(t *testing.T) {
	p := &TextImporter{}
	blocks, err := p.Import(strings.NewReader("  \n\n  "), "blank.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestCSVImporter_BatchedRows(t *testing.T) {
	input := "name,age\nalice,30\nbob,25\n"
	p := &CSVImporter{}
	blocks, err := p.Import(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Heading3 || blocks[0].Text != "Rows 2-3" {
		t.Errorf("expected batch heading, got %+v", blocks[0])
	}
	if blocks[1].Type != block.Bulleted || blocks[1].Text != "name: alice, age: 30" {
		t.Errorf("expected labeled row, got %+v", blocks[1])
	}
	if blocks[2].Text != "name: bob, age: 25" {
		t.Errorf("expected labeled row, got %+v", blocks[2])
	}
}

func TestHTMLImporter_SharesPasteWalker(t *testing.T) {
	input := "<html><head><title>x</title></head><body><h1>Hi</h1><p>there</p></body></html>"
	p := &HTMLImporter{}
	blocks, err := p.Import(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Type != block.Heading1 || blocks[0].Text != "Hi" {
		t.Errorf("expected heading1(Hi), got %+v", blocks[0])
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename  string
		supported bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"doc.TXT", true},
		{"doc.csv", true},
		{"page.html", true},
		{"page.htm", true},
		{"file.pdf", true},
		{"file.docx", true},
		{"image.png", false},
		{"noext", false},
	}
	for _, tt := range tests {
		imp, err := ForFile(tt.filename)
		if tt.supported {
			if err != nil || imp == nil {
				t.Errorf("%s: expected importer, got error %v", tt.filename, err)
			}
		} else if err == nil {
			t.Errorf("%s: expected error for unsupported extension", tt.filename)
		}
		if got := IsSupportedExtension(tt.filename); got != tt.supported {
			t.Errorf("IsSupportedExtension(%s): expected %v, got %v", tt.filename, tt.supported, got)
		}
	}
}
