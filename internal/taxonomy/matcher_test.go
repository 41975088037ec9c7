package taxonomy

import (
	"reflect"
	"testing"
)

func testNodes() []Node {
	return []Node{
		{
			Large: "programming", Medium: "java", Small: "collections",
			Keywords: []string{"list", "map", "set"},
		},
		{
			Large: "programming", Medium: "java", Small: "concurrency",
			Keywords: []string{"thread", "lock", "synchronized", "executor"},
		},
		{
			Large: "database", Medium: "sql", Small: "joins",
			Keywords: []string{"join", "inner", "outer"},
		},
	}
}

func TestClassify_PartialOverlap(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())

	res := m.Classify([]string{"list", "map", "loop"})

	if res.MatchedCategory == nil {
		t.Fatal("expected a matched category")
	}
	if got, want := res.MatchedCategory.Key(), "programming/java/collections"; got != want {
		t.Errorf("matched %q, want %q", got, want)
	}
	if !floatEq(res.Confidence, 2.0/3.0) {
		t.Errorf("Confidence = %f, want %f", res.Confidence, 2.0/3.0)
	}
	if res.HighConfidence() {
		t.Error("0.667 should not be high confidence")
	}
	if res.SuggestedFolderPath != "programming/java/collections" {
		t.Errorf("SuggestedFolderPath = %q", res.SuggestedFolderPath)
	}
}

func TestClassify_NoOverlap(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())

	res := m.Classify([]string{"cooking", "recipe"})

	if res.MatchedCategory != nil {
		t.Errorf("MatchedCategory = %v, want nil", res.MatchedCategory)
	}
	if res.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0", res.Confidence)
	}
	if res.SuggestedFolderPath != UnclassifiedFolder {
		t.Errorf("SuggestedFolderPath = %q, want %q", res.SuggestedFolderPath, UnclassifiedFolder)
	}
	if res.HighConfidence() {
		t.Error("unclassified result must not be high confidence")
	}
}

func TestClassify_EmptyKeywords(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())

	res := m.Classify(nil)

	if res.MatchedCategory != nil || res.Confidence != 0 {
		t.Errorf("empty input should be unclassified, got %+v", res)
	}
}

func TestClassify_HighConfidence(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())

	res := m.Classify([]string{"list", "map", "set"})

	if !floatEq(res.Confidence, 1.0) {
		t.Fatalf("Confidence = %f, want 1.0", res.Confidence)
	}
	if !res.HighConfidence() {
		t.Error("full overlap should be high confidence")
	}

	// Exactly at the threshold counts as high confidence.
	m2 := NewMatcherFor([]Node{
		{Large: "a", Medium: "b", Small: "c", Keywords: []string{"w", "x", "y", "z", "q", "r", "s", "t", "u", "v"}},
	}, DefaultConfig())
	res2 := m2.Classify([]string{"w", "x", "y", "z", "q", "r", "s"})
	if !floatEq(res2.Confidence, 0.7) {
		t.Fatalf("Confidence = %f, want 0.7", res2.Confidence)
	}
	if !res2.HighConfidence() {
		t.Error("confidence exactly 0.7 should be high confidence")
	}
}

func TestClassify_TieBreakPrefersLargerKeywordSet(t *testing.T) {
	nodes := []Node{
		{Large: "a", Medium: "x", Small: "small", Keywords: []string{"k1", "k2"}},
		{Large: "b", Medium: "y", Small: "big", Keywords: []string{"k1", "k2", "k3", "k4"}},
	}
	m := NewMatcherFor(nodes, DefaultConfig())

	// 1/2 vs 2/4 — equal scores; the larger keyword set wins.
	res := m.Classify([]string{"k1", "k3"})

	if res.MatchedCategory == nil || res.MatchedCategory.Small != "big" {
		t.Errorf("matched %+v, want the larger keyword set node", res.MatchedCategory)
	}
}

func TestClassify_TieBreakLabelOrder(t *testing.T) {
	nodes := []Node{
		{Large: "zeta", Medium: "m", Small: "s", Keywords: []string{"k1", "k2"}},
		{Large: "alpha", Medium: "m", Small: "s", Keywords: []string{"k1", "k3"}},
	}
	m := NewMatcherFor(nodes, DefaultConfig())

	res := m.Classify([]string{"k1"})

	if res.MatchedCategory == nil || res.MatchedCategory.Large != "alpha" {
		t.Errorf("matched %+v, want the lexicographically first node", res.MatchedCategory)
	}
}

func TestClassify_TieBreakComparesLabelsFieldwise(t *testing.T) {
	// "a!" joins to a key that byte-sorts before "a/..." because '!'
	// precedes '/'; the field-wise comparison must still pick "a" first.
	nodes := []Node{
		{Large: "a!", Medium: "m", Small: "s", Keywords: []string{"k1", "k2"}},
		{Large: "a", Medium: "z", Small: "s", Keywords: []string{"k1", "k3"}},
	}
	m := NewMatcherFor(nodes, DefaultConfig())

	res := m.Classify([]string{"k1"})

	if res.MatchedCategory == nil || res.MatchedCategory.Large != "a" {
		t.Errorf("matched %+v, want large label %q", res.MatchedCategory, "a")
	}
}

func TestClassify_Idempotent(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())
	in := []string{"thread", "lock", "join"}

	a := m.Classify(in)
	b := m.Classify(in)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated classification differs: %+v vs %+v", a, b)
	}
}

func TestClassify_ConfidenceInRange(t *testing.T) {
	m := NewMatcherFor(testNodes(), DefaultConfig())
	inputs := [][]string{
		nil,
		{"list"},
		{"list", "map", "set", "thread", "lock", "join", "inner", "outer"},
		{"unrelated"},
	}
	for _, in := range inputs {
		res := m.Classify(in)
		if res.Confidence < 0 || res.Confidence > 1 {
			t.Errorf("Classify(%v).Confidence = %f out of [0,1]", in, res.Confidence)
		}
	}
}

func TestClassify_SeedHierarchy(t *testing.T) {
	// The package-level hierarchy must be loaded and usable as-is.
	res := Classify([]string{"list", "map", "loop"})
	if res.MatchedCategory == nil {
		t.Fatal("expected a match against the seed hierarchy")
	}
	if res.SuggestedFolderPath != "programming/java/collections" {
		t.Errorf("SuggestedFolderPath = %q", res.SuggestedFolderPath)
	}
}

func floatEq(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
