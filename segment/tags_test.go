package segment

import "testing"

func TestExtractTagBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "no tags",
			input: "plain text",
			want:  nil,
		},
		{
			name:  "thought block",
			input: "[THOUGHT]I should check the weather[/THOUGHT]",
			want: []Segment{
				{Kind: TagThought, Content: "I should check the weather", Order: 1000},
			},
		},
		{
			name:  "lowercase tags match",
			input: "[thought]still works[/thought]",
			want: []Segment{
				{Kind: TagThought, Content: "still works", Order: 1000},
			},
		},
		{
			name:  "content trimmed and multiline",
			input: "[PLANNING]\nstep one\nstep two\n[/PLANNING]",
			want: []Segment{
				{Kind: TagPlanning, Content: "step one\nstep two", Order: 1000},
			},
		},
		{
			name:  "unterminated tag produces no match",
			input: "[DEBUG]oops no closing tag",
			want:  nil,
		},
		{
			name:  "mismatched closing tag produces no match",
			input: "[THOUGHT]mixed up[/PLANNING]",
			want:  nil,
		},
		{
			name:  "offset feeds the order key",
			input: "[THOUGHT]a[/THOUGHT][PLANNING]b[/PLANNING]",
			want: []Segment{
				{Kind: TagThought, Content: "a", Order: 1000},
				{Kind: TagPlanning, Content: "b", Order: 1020},
			},
		},
		{
			name: "all five tag kinds",
			input: "[THOUGHT]t[/THOUGHT][PLANNING]p[/PLANNING][UTILITY]u[/UTILITY]" +
				"[DEBUG]d[/DEBUG][JSON]j[/JSON]",
			want: []Segment{
				{Kind: TagThought, Content: "t", Order: 1000},
				{Kind: TagPlanning, Content: "p", Order: 1020},
				{Kind: TagUtility, Content: "u", Order: 1042},
				{Kind: TagDebug, Content: "d", Order: 1062},
				{Kind: TagJSON, Content: "j", Order: 1078},
			},
		},
		{
			name:  "angle brackets escaped",
			input: "[DEBUG]value <nil> seen[/DEBUG]",
			want: []Segment{
				{Kind: TagDebug, Content: "value &lt;nil&gt; seen", Order: 1000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTagBlocks(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractTagBlocks(%q) returned %d segments, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Repeated blocks of the same tag all match, each at its own offset.
func TestExtractTagBlocks_RepeatedTag(t *testing.T) {
	input := "[THOUGHT]first[/THOUGHT] and [THOUGHT]second[/THOUGHT]"
	got := ExtractTagBlocks(input)

	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got))
	}
	if got[0].Content != "first" || got[1].Content != "second" {
		t.Errorf("contents = %q, %q", got[0].Content, got[1].Content)
	}
	if got[0].Order >= got[1].Order {
		t.Errorf("orders not ascending: %d, %d", got[0].Order, got[1].Order)
	}
}
