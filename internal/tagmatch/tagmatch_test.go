package tagmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitRate(t *testing.T) {
	tests := []struct {
		name        string
		source      []string
		target      []string
		wantMatched []string
		wantTotal   int
		wantRate    float64
	}{
		{
			name:        "partial overlap",
			source:      []string{"list", "map", "loop"},
			target:      []string{"list", "map", "set"},
			wantMatched: []string{"list", "map"},
			wantTotal:   3,
			wantRate:    2.0 / 3.0,
		},
		{
			name:        "full overlap",
			source:      []string{"tcp", "udp"},
			target:      []string{"udp", "tcp", "ip"},
			wantMatched: []string{"tcp", "udp"},
			wantTotal:   2,
			wantRate:    1.0,
		},
		{
			name:      "empty source",
			source:    nil,
			target:    []string{"a", "b"},
			wantTotal: 0,
			wantRate:  0,
		},
		{
			name:      "empty target",
			source:    []string{"a", "b"},
			target:    nil,
			wantTotal: 2,
			wantRate:  0,
		},
		{
			name:        "case insensitive",
			source:      []string{"Java", "SPRING"},
			target:      []string{"java", "spring"},
			wantMatched: []string{"java", "spring"},
			wantTotal:   2,
			wantRate:    1.0,
		},
		{
			name:        "duplicates count once",
			source:      []string{"map", "map", "set"},
			target:      []string{"map"},
			wantMatched: []string{"map"},
			wantTotal:   2,
			wantRate:    0.5,
		},
		{
			name:        "whitespace trimmed",
			source:      []string{" list ", "tree"},
			target:      []string{"list"},
			wantMatched: []string{"list"},
			wantTotal:   2,
			wantRate:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitRate(tt.source, tt.target)
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.Equal(t, len(tt.wantMatched), got.MatchedCount)
			assert.Equal(t, tt.wantTotal, got.TotalCount)
			assert.InDelta(t, tt.wantRate, got.Rate, 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"lowercase and dedup", []string{"B", "a", " b ", "", "A"}, []string{"b", "a"}},
		{"preserves first-seen order", []string{"set", "map", "set"}, []string{"set", "map"}},
		{"nil input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
