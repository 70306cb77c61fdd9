package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/blockdoc/internal/block"
	"github.com/dgallion1/blockdoc/internal/export"
	"github.com/dgallion1/blockdoc/internal/markdown"
	"github.com/dgallion1/blockdoc/internal/outline"
	"github.com/dgallion1/blockdoc/internal/paste"
	"github.com/dgallion1/blockdoc/internal/store"
)

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Canonicalize through the block model so a new document always stores a
	// well-formed block sequence (never empty). Documents persist in the JSON
	// form: the text form drops block IDs, and clients target blocks by ID
	// across requests, so IDs must survive the round-trip.
	blocks := markdown.ToBlocks(req.Content)
	doc := &store.Document{
		ID:      block.NewID(),
		Title:   req.Title,
		Content: markdown.BlocksJSON(blocks),
	}
	if err := s.docs.Create(r.Context(), doc); err != nil {
		jsonError(w, "failed to create document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.List(r.Context())
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// loadDocument fetches a document or writes the appropriate error response.
func (s *Server) loadDocument(w http.ResponseWriter, r *http.Request) *store.Document {
	doc, err := s.docs.Get(r.Context(), chi.URLParam(r, "docID"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "document not found", http.StatusNotFound)
		return nil
	}
	if err != nil {
		jsonError(w, "failed to load document: "+err.Error(), http.StatusInternalServerError)
		return nil
	}
	return doc
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}
	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Content != nil {
		doc.Content = markdown.BlocksJSON(markdown.ToBlocks(*req.Content))
	}
	if err := s.docs.Update(r.Context(), doc); err != nil {
		jsonError(w, "failed to update document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	err := s.docs.Delete(r.Context(), chi.URLParam(r, "docID"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": true})
}

func (s *Server) handleGetBlocks(w http.ResponseWriter, r *http.Request) {
	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"blocks": markdown.ToBlocks(doc.Content)})
}

func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}
	items := outline.Build(markdown.ToBlocks(doc.Content))
	if items == nil {
		items = []outline.Item{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"outline": items})
}

// handlePaste splices pasted clipboard content into a document. When the
// importer declines (single-line plain text, no HTML) nothing is persisted
// and the caller should fall back to native caret insertion.
func (s *Server) handlePaste(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetBlockID string `json:"target_block_id"`
		HTML          string `json:"html"`
		Text          string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}

	fragment := paste.HTMLToBlocks(req.HTML, req.Text)
	w.Header().Set("Content-Type", "application/json")
	if len(fragment) == 0 {
		json.NewEncoder(w).Encode(map[string]any{"declined": true})
		return
	}

	blocks, focus := block.Splice(markdown.ToBlocks(doc.Content), req.TargetBlockID, fragment)
	doc.Content = markdown.BlocksJSON(blocks)
	if err := s.docs.Update(r.Context(), doc); err != nil {
		jsonError(w, "failed to save document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"blocks":         fragment,
		"focus_block_id": focus,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	doc := s.loadDocument(w, r)
	if doc == nil {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(markdown.FromBlocks(markdown.ToBlocks(doc.Content))))
	case "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(markdown.ToBlocks(doc.Content))
	case "html":
		page, err := export.HTML(doc.Title, markdown.ToBlocks(doc.Content))
		if err != nil {
			jsonError(w, "failed to render html: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	default:
		jsonError(w, "unsupported export format: "+format, http.StatusBadRequest)
	}
}
