package block

// Normalize enforces the document invariants on a block sequence: a document
// is never empty (a single empty paragraph is the canonical blank document)
// and every block has a non-empty ID. The input slice is returned, repaired
// in place.
func Normalize(blocks []Block) []Block {
	if len(blocks) == 0 {
		return []Block{New(Paragraph, "")}
	}
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = NewID()
		}
	}
	return blocks
}

// IndexOf returns the position of the block with the given ID, or -1.
func IndexOf(blocks []Block, id string) int {
	for i := range blocks {
		if blocks[i].ID == id {
			return i
		}
	}
	return -1
}

// Splice inserts a pasted fragment into a block sequence at the block with
// targetID. If the target block's text is blank the fragment replaces it in
// place; otherwise the fragment is inserted immediately after it, leaving the
// original block untouched. An empty fragment is a no-op. A missing target
// appends the fragment at the end.
//
// Returns the updated sequence and the ID of the last inserted block, which
// the editing surface should re-focus ("" when nothing was inserted).
func Splice(blocks []Block, targetID string, fragment []Block) ([]Block, string) {
	if len(fragment) == 0 {
		return blocks, ""
	}
	focus := fragment[len(fragment)-1].ID

	i := IndexOf(blocks, targetID)
	if i < 0 {
		return append(blocks, fragment...), focus
	}

	out := make([]Block, 0, len(blocks)+len(fragment))
	if blocks[i].Text == "" {
		out = append(out, blocks[:i]...)
		out = append(out, fragment...)
		out = append(out, blocks[i+1:]...)
	} else {
		out = append(out, blocks[:i+1]...)
		out = append(out, fragment...)
		out = append(out, blocks[i+1:]...)
	}
	return out, focus
}
