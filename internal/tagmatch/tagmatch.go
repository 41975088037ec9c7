// Package tagmatch computes set-intersection hit rates between tag sets.
// It is the shared scoring primitive behind category classification and
// lecture recommendation.
package tagmatch

import (
	"sort"
	"strings"
)

// Overlap describes how much of a source tag set is present in a target set.
type Overlap struct {
	// Matched contains the normalized source tags also found in target,
	// sorted for deterministic output.
	Matched []string

	// MatchedCount is len(Matched).
	MatchedCount int

	// TotalCount is the number of distinct normalized source tags.
	TotalCount int

	// Rate is MatchedCount/TotalCount, or 0 when TotalCount is 0.
	Rate float64
}

// HitRate computes the overlap of source against target.
// Tags are compared case-insensitively after trimming; duplicates within a
// set count once. An empty source or target yields rate 0, never an error.
func HitRate(source, target []string) Overlap {
	src := Normalize(source)
	dst := make(map[string]bool, len(target))
	for _, t := range target {
		if n := normalizeTag(t); n != "" {
			dst[n] = true
		}
	}

	var matched []string
	for _, s := range src {
		if dst[s] {
			matched = append(matched, s)
		}
	}
	sort.Strings(matched)

	o := Overlap{
		Matched:      matched,
		MatchedCount: len(matched),
		TotalCount:   len(src),
	}
	if o.TotalCount > 0 {
		o.Rate = float64(o.MatchedCount) / float64(o.TotalCount)
	}
	return o
}

// Normalize lowercases and trims tags, drops empties, and removes duplicates.
// The result preserves first-occurrence order.
func Normalize(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		n := normalizeTag(t)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
