package importer

import (
	"io"

	"github.com/dgallion1/blockdoc/internal/block"
	"github.com/dgallion1/blockdoc/internal/paste"
)

// HTMLImporter handles HTML files. Whole-document import shares the walker
// used for clipboard paste: the structure mapping is identical, only the
// source differs.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) ([]block.Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return paste.HTMLToBlocks(string(data), ""), nil
}
