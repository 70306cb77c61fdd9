package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/blockdoc/internal/block"
)

// CSVImporter handles CSV files: rows are grouped into batches, each batch
// headed by a batch-range heading with one bulleted block per row.
type CSVImporter struct{}

const csvBatchSize = 20

func (p *CSVImporter) Import(r io.Reader, filename string) ([]block.Block, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	var blocks []block.Block
	for i := 0; i < len(dataRows); i += csvBatchSize {
		end := i + csvBatchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}
		// 1-indexed source rows, skipping the header row.
		blocks = append(blocks, block.New(block.Heading3, fmt.Sprintf("Rows %d-%d", i+2, end+1)))
		for _, row := range dataRows[i:end] {
			blocks = append(blocks, block.New(block.Bulleted, formatRow(headers, row)))
		}
	}
	return blocks, nil
}

func formatRow(headers, row []string) string {
	var parts []string
	for j, cell := range row {
		if j < len(headers) && headers[j] != "" {
			parts = append(parts, headers[j]+": "+cell)
		} else {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, ", ")
}
