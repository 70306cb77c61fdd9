package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/blockdoc/internal/block"
)

// DOCXImporter handles .docx files: paragraphs with Heading styles become
// heading blocks (levels 3-6 collapse to heading3), everything else becomes
// paragraphs.
type DOCXImporter struct{}

func (p *DOCXImporter) Import(r io.Reader, filename string) ([]block.Block, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "blockdoc-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var blocks []block.Block
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		blocks = append(blocks, block.New(docxBlockType(para), text))
	}
	return blocks, nil
}

func docxBlockType(para *docx.Paragraph) block.Type {
	if para.Properties == nil || para.Properties.Style == nil {
		return block.Paragraph
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	switch style {
	case "heading1":
		return block.Heading1
	case "heading2":
		return block.Heading2
	case "heading3", "heading4", "heading5", "heading6":
		return block.Heading3
	case "quote", "intensequote":
		return block.Quote
	case "listparagraph":
		return block.Bulleted
	}
	return block.Paragraph
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
