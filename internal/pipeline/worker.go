package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/blockdoc/internal/block"
	"github.com/dgallion1/blockdoc/internal/importer"
	"github.com/dgallion1/blockdoc/internal/markdown"
	"github.com/dgallion1/blockdoc/internal/store"
)

// Worker turns one uploaded file into a stored document.
type Worker struct {
	docs *store.Store
	log  *slog.Logger
}

func NewWorker(docs *store.Store, log *slog.Logger) *Worker {
	return &Worker{docs: docs, log: log}
}

// Process runs the import pipeline for a job: parse the file into blocks,
// serialize them to the stored JSON form, store the new document.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	job.SetStatus(StatusParsing, "parsing")
	imp, err := importer.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	blocks, err := imp.Import(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("import failed", "error", err)
		job.AddError(fmt.Sprintf("import: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	job.SetStatus(StatusConverting, "converting")
	blocks = block.Normalize(blocks)
	job.SetBlockCount(len(blocks))
	content := markdown.BlocksJSON(blocks)

	job.SetStatus(StatusStoring, "storing")
	doc := &store.Document{
		ID:      job.DocID,
		Title:   job.Title,
		Content: content,
	}
	if err := w.docs.Create(ctx, doc); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("import completed", "blocks", len(blocks))
	job.SetStatus(StatusCompleted, "done")
}
