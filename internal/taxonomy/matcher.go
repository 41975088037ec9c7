package taxonomy

import (
	"github.com/daehan/examly/internal/tagmatch"
)

// UnclassifiedFolder is the folder path suggested when no category matched.
// The label is the Korean "unclassified", kept verbatim from the note service
// this engine fronts.
const UnclassifiedFolder = "[미분류]"

// Config holds the matcher thresholds.
type Config struct {
	// LowConfidence is the threshold below which content stays unclassified.
	// The default of 0 means "unclassified only when there is no overlap at all".
	LowConfidence float64

	// HighConfidence gates whether a caller may auto-apply the matched
	// category without asking the user to confirm.
	HighConfidence float64
}

// DefaultConfig returns the standard matcher thresholds.
func DefaultConfig() Config {
	return Config{
		LowConfidence:  0.0,
		HighConfidence: 0.7,
	}
}

// Result is the outcome of classifying a keyword set.
type Result struct {
	// ExtractedKeywords is the normalized input keyword set.
	ExtractedKeywords []string

	// MatchedCategory is the best-matching node, or nil when unclassified.
	MatchedCategory *Node

	// Confidence is the fraction of the matched node's keyword set present
	// in the input, clamped to [0,1]. Zero when unclassified.
	Confidence float64

	// SuggestedFolderPath is "large/medium/small" for a match, or
	// UnclassifiedFolder otherwise.
	SuggestedFolderPath string

	highThreshold float64
}

// HighConfidence reports whether the match is strong enough to auto-apply.
func (r Result) HighConfidence() bool {
	return r.MatchedCategory != nil && r.Confidence >= r.highThreshold
}

// Matcher classifies keyword sets against a category node set.
type Matcher struct {
	nodes []Node
	cfg   Config
}

// NewMatcher creates a matcher over the loaded hierarchy.
func NewMatcher(cfg Config) *Matcher {
	return &Matcher{nodes: All(), cfg: cfg}
}

// NewMatcherFor creates a matcher over an explicit node set. Used by tests
// and by callers that classify against a sub-hierarchy.
func NewMatcherFor(nodes []Node, cfg Config) *Matcher {
	return &Matcher{nodes: nodes, cfg: cfg}
}

// Classify maps a keyword set to the best-matching category node.
//
// For every node the overlap score is |keywords ∩ node.Keywords| divided by
// |node.Keywords| (0 for an empty node keyword set). The node with the
// maximum score wins; ties prefer the node with the larger keyword set
// (the more specific match), then the smallest label path comparing
// large, then medium, then small. Pure function of (keywords, hierarchy
// snapshot).
func (m *Matcher) Classify(keywords []string) Result {
	normalized := tagmatch.Normalize(keywords)

	var best *Node
	bestScore := 0.0

	for i := range m.nodes {
		n := &m.nodes[i]
		score := tagmatch.HitRate(n.Keywords, normalized).Rate
		if score == 0 {
			continue
		}

		switch {
		case best == nil, score > bestScore:
			best, bestScore = n, score
		case score == bestScore:
			if preferNode(n, best) {
				best = n
			}
		}
	}

	res := Result{
		ExtractedKeywords:   normalized,
		Confidence:          clamp01(bestScore),
		SuggestedFolderPath: UnclassifiedFolder,
		highThreshold:       m.cfg.HighConfidence,
	}

	if best == nil || res.Confidence <= 0 || res.Confidence < m.cfg.LowConfidence {
		res.MatchedCategory = nil
		res.Confidence = 0
		return res
	}

	node := *best
	res.MatchedCategory = &node
	res.SuggestedFolderPath = node.FolderPath()
	return res
}

// Classify runs the default matcher over the loaded hierarchy.
func Classify(keywords []string) Result {
	return NewMatcher(DefaultConfig()).Classify(keywords)
}

// preferNode reports whether a should win a score tie against b:
// larger keyword set first, then label order compared field by field.
// Comparing the joined Key() would order differently when a label
// contains a character that sorts before '/'.
func preferNode(a, b *Node) bool {
	if len(a.Keywords) != len(b.Keywords) {
		return len(a.Keywords) > len(b.Keywords)
	}
	if a.Large != b.Large {
		return a.Large < b.Large
	}
	if a.Medium != b.Medium {
		return a.Medium < b.Medium
	}
	return a.Small < b.Small
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
