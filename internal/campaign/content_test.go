package campaign

import (
	"reflect"
	"testing"
)

func TestParseContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Block
	}{
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
		{
			name:    "mixed paragraph",
			content: "**Kenya** is being assessed.",
			want: []Block{{Kind: BlockParagraph, Spans: []Span{
				{Text: "Kenya", Bold: true},
				{Text: " is being assessed."},
			}}},
		},
		{
			name:    "heading and bullets",
			content: "Body.\n\n**Campaign Highlights:**\n- Nairobi rally\n- Mombasa cleanup",
			want: []Block{
				{Kind: BlockParagraph, Spans: []Span{{Text: "Body."}}},
				{Kind: BlockParagraph, Spans: []Span{{Text: "Campaign Highlights:", Bold: true}}},
				{Kind: BlockBullet, Spans: []Span{{Text: "Nairobi rally"}}},
				{Kind: BlockBullet, Spans: []Span{{Text: "Mombasa cleanup"}}},
			},
		},
		{
			name:    "quote",
			content: "> \"It was great\"",
			want:    []Block{{Kind: BlockQuote, Spans: []Span{{Text: "\"It was great\""}}}},
		},
		{
			name:    "unterminated bold",
			content: "plain **bold",
			want: []Block{{Kind: BlockParagraph, Spans: []Span{
				{Text: "plain "},
				{Text: "bold", Bold: true},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseContent(%q) = %+v, want %+v", tt.content, got, tt.want)
			}
		})
	}
}

func TestBlockHelpers(t *testing.T) {
	b := ParseContent("**Voices from the Field:**")[0]
	if !b.Bold() {
		t.Error("all-bold block not reported bold")
	}
	if b.Text() != "Voices from the Field:" {
		t.Errorf("Text() = %q", b.Text())
	}

	mixed := ParseContent("**A** b")[0]
	if mixed.Bold() {
		t.Error("mixed block reported bold")
	}
	if mixed.Text() != "A b" {
		t.Errorf("Text() = %q", mixed.Text())
	}
}
