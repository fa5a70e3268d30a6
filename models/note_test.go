package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{
			name: "empty string",
			tags: "",
			want: nil,
		},
		{
			name: "only whitespace",
			tags: "   ",
			want: nil,
		},
		{
			name: "single tag",
			tags: "work",
			want: []string{"work"},
		},
		{
			name: "trims whitespace around tags",
			tags: " work , ideas ,home",
			want: []string{"work", "ideas", "home"},
		},
		{
			name: "drops blank entries",
			tags: "work,,ideas, ,",
			want: []string{"work", "ideas"},
		},
		{
			name: "deduplicates preserving first occurrence",
			tags: "work,ideas,work,home,ideas",
			want: []string{"work", "ideas", "home"},
		},
		{
			name: "unicode tags",
			tags: "работа, идеи",
			want: []string{"работа", "идеи"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.tags))
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   int
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			limit:   15,
			want:    "",
		},
		{
			name:    "whitespace only",
			content: "  \n\t ",
			limit:   15,
			want:    "",
		},
		{
			name:    "shorter than limit keeps all words",
			content: "just a few words",
			limit:   15,
			want:    "just a few words...",
		},
		{
			name:    "exactly at limit",
			content: "one two three",
			limit:   3,
			want:    "one two three...",
		},
		{
			name:    "truncates beyond limit",
			content: "one two three four five",
			limit:   3,
			want:    "one two three...",
		},
		{
			name:    "collapses internal whitespace",
			content: "one\n\ntwo   three",
			limit:   15,
			want:    "one two three...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.content, tt.limit))
		})
	}
}
