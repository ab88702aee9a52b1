package campaign

import "strings"

// BlockKind is the style of one content line.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockQuote
	BlockBullet
)

// Span is a run of text with uniform weight.
type Span struct {
	Text string
	Bold bool
}

// Block is one rendered line of summary content.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Text joins the spans without markup.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Bold reports whether every span is bold.
func (b Block) Bold() bool {
	if len(b.Spans) == 0 {
		return false
	}
	for _, s := range b.Spans {
		if !s.Bold {
			return false
		}
	}
	return true
}

// ParseContent splits summary content into blocks. Blank lines separate
// nothing and are dropped. An unterminated ** runs bold to the end of its
// line.
func ParseContent(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kind := BlockParagraph
		switch {
		case strings.HasPrefix(line, ">"):
			kind = BlockQuote
			line = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "- "):
			kind = BlockBullet
			line = strings.TrimSpace(line[2:])
		}
		if spans := parseSpans(line); len(spans) > 0 {
			blocks = append(blocks, Block{Kind: kind, Spans: spans})
		}
	}
	return blocks
}

func parseSpans(line string) []Span {
	var spans []Span
	for i, part := range strings.Split(line, "**") {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}
