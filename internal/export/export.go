// Package export renders documents to standalone formats for download.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/blockdoc/internal/block"
	"github.com/dgallion1/blockdoc/internal/markdown"
)

// HTML renders a block sequence to a standalone HTML page. Runs of regular
// blocks are serialized to interchange text and rendered through goldmark;
// ref blocks become <figure> elements since their fences mean nothing to a
// Markdown renderer.
func HTML(title string, blocks []block.Block) (string, error) {
	md := goldmark.New()
	var body strings.Builder

	var run []block.Block
	flushRun := func() error {
		if len(run) == 0 {
			return nil
		}
		// Blank lines between blocks keep goldmark from reading a divider
		// after a paragraph as a setext heading underline.
		parts := make([]string, len(run))
		for i, b := range run {
			parts[i] = markdown.FromBlocks([]block.Block{b})
		}
		src := strings.Join(parts, "\n\n")
		run = run[:0]
		if err := md.Convert([]byte(src), &body); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		return nil
	}

	for _, b := range blocks {
		if b.Type != block.Ref {
			run = append(run, b)
			continue
		}
		if err := flushRun(); err != nil {
			return "", err
		}
		writeRef(&body, b)
	}
	if err := flushRun(); err != nil {
		return "", err
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>" + html.EscapeString(title) + "</title>\n</head>\n<body>\n")
	page.WriteString(body.String())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

func writeRef(w *strings.Builder, b block.Block) {
	fmt.Fprintf(w, "<figure class=\"ref\" data-ref-id=%q>\n", b.RefKey())
	if b.Text != "" {
		w.WriteString("<blockquote>" + html.EscapeString(b.Text) + "</blockquote>\n")
	}
	if b.RefTitle != "" {
		w.WriteString("<figcaption>" + html.EscapeString(b.RefTitle) + "</figcaption>\n")
	}
	w.WriteString("</figure>\n")
}
