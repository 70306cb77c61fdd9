package importer

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/blockdoc/internal/block"
)

// TextImporter handles plain text files: each blank-line-separated paragraph
// becomes one paragraph block.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) ([]block.Block, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blocks []block.Block
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, block.New(block.Paragraph, strings.Join(current, " ")))
			current = current[:0]
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
		} else {
			current = append(current, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}
