package markdown

import "regexp"

// Span is one run of a block's text prepared for display: plain text when
// Href is empty, a link otherwise (Text is the visible label).
type Span struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// Alternation order is the match priority: bracketed link, angle-bracketed
// URL, bare URL. Go's regexp prefers earlier alternatives at the same
// position, so the order here is the tie-break.
var inlineLinkRe = regexp.MustCompile(
	`\[([^\]]+)\]\((https?://[^)\s]+)\)` +
		`|<(https?://[^>\s]+)>` +
		`|https?://[^\s<>"\[\]()]+`)

// Inline scans a block's raw text for link syntax and returns an ordered,
// position-preserving sequence of plain and link spans. It is a display-time
// transform only and never mutates the stored text; total on any input.
func Inline(text string) []Span {
	if text == "" {
		return []Span{{Text: ""}}
	}

	matches := inlineLinkRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			spans = append(spans, Span{Text: text[last:start]})
		}
		switch {
		case m[2] >= 0: // [label](url)
			spans = append(spans, Span{Text: text[m[2]:m[3]], Href: text[m[4]:m[5]]})
		case m[6] >= 0: // <url>
			url := text[m[6]:m[7]]
			spans = append(spans, Span{Text: url, Href: url})
		default: // bare url
			url := text[start:end]
			spans = append(spans, Span{Text: url, Href: url})
		}
		last = end
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
