package block

// Type identifies what kind of content a block holds.
type Type string

const (
	Paragraph Type = "paragraph"
	Heading1  Type = "heading1"
	Heading2  Type = "heading2"
	Heading3  Type = "heading3"
	Quote     Type = "quote"
	Bulleted  Type = "bulleted"
	Numbered  Type = "numbered"
	Ref       Type = "ref"
	Divider   Type = "divider"
)

// Block is the atomic unit of a document: one typed run of content.
// A document is an ordered []Block; order is reading order and also
// determines numbered-list numbering (position + 1, never stored).
type Block struct {
	ID   string `json:"id"`
	Type Type   `json:"type"`
	Text string `json:"text"`

	// RefID and RefTitle are only meaningful for Ref blocks. RefID is an
	// external reference key distinct from ID; RefTitle is a user-editable
	// caption.
	RefID    string `json:"refId,omitempty"`
	RefTitle string `json:"refTitle,omitempty"`
}

// New returns a block of the given type with a freshly generated ID.
func New(t Type, text string) Block {
	return Block{ID: NewID(), Type: t, Text: text}
}

// RefKey returns the block's external reference key, defaulting to the
// block's own ID when none was set.
func (b Block) RefKey() string {
	if b.RefID != "" {
		return b.RefID
	}
	return b.ID
}

// KnownType reports whether t is one of the closed set of block types.
func KnownType(t Type) bool {
	switch t {
	case Paragraph, Heading1, Heading2, Heading3, Quote, Bulleted, Numbered, Ref, Divider:
		return true
	}
	return false
}

// HeadingLevel returns 1..3 for heading blocks and 0 for everything else.
func (b Block) HeadingLevel() int {
	switch b.Type {
	case Heading1:
		return 1
	case Heading2:
		return 2
	case Heading3:
		return 3
	}
	return 0
}
