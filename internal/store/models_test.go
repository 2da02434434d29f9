package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "trims each segment",
			raw:  "eco, fast",
			want: []string{"eco", "fast"},
		},
		{
			name: "single keyword",
			raw:  "tech",
			want: []string{"tech"},
		},
		{
			name: "trailing comma keeps empty segment",
			raw:  "eco, fast,",
			want: []string{"eco", "fast", ""},
		},
		{
			name: "double comma keeps empty segment",
			raw:  "eco,,fast",
			want: []string{"eco", "", "fast"},
		},
		{
			name: "empty input yields one empty keyword",
			raw:  "",
			want: []string{""},
		},
		{
			name: "whitespace around commas",
			raw:  "  tech ,  eco-friendly , minimalist  ",
			want: []string{"tech", "eco-friendly", "minimalist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitKeywords(tt.raw))
		})
	}
}
