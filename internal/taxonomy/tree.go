package taxonomy

import (
	"fmt"
	"slices"
	"sort"
)

// tree holds the category hierarchy with precomputed indices.
type tree struct {
	nodes   []Node
	byKey   map[string]*Node
	byLarge map[string][]Node
	larges  []string
}

// t is the package-level tree singleton, set by init() in seed.go.
// It is built once at startup and treated as read-only afterward, so
// concurrent reads need no locking.
var t *tree

// buildTree constructs the tree and its indices from a slice of leaf nodes.
func buildTree(nodes []Node) *tree {
	tr := &tree{
		nodes:   nodes,
		byKey:   make(map[string]*Node, len(nodes)),
		byLarge: make(map[string][]Node),
	}

	for i := range tr.nodes {
		n := &tr.nodes[i]
		tr.byKey[n.Key()] = n
		tr.byLarge[n.Large] = append(tr.byLarge[n.Large], *n)
	}

	// Deterministic ordering within each large category.
	for large, group := range tr.byLarge {
		sorted := make([]Node, len(group))
		copy(sorted, group)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Medium != sorted[j].Medium {
				return sorted[i].Medium < sorted[j].Medium
			}
			return sorted[i].Small < sorted[j].Small
		})
		tr.byLarge[large] = sorted
	}

	for large := range tr.byLarge {
		tr.larges = append(tr.larges, large)
	}
	sort.Strings(tr.larges)

	return tr
}

// Load replaces the hierarchy with caller-supplied nodes. It validates the
// set first and must be called once at process start, before any Classify
// call; the tree is immutable afterward.
func Load(nodes []Node) error {
	if err := validateNodes(nodes); err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}
	t = buildTree(slices.Clone(nodes))
	return nil
}

// Get returns a node by its "large/medium/small" key.
func Get(key string) (Node, error) {
	n, ok := t.byKey[key]
	if !ok {
		return Node{}, fmt.Errorf("category not found: %q", key)
	}
	return *n, nil
}

// All returns every leaf node in the hierarchy.
func All() []Node {
	return slices.Clone(t.nodes)
}

// ByLarge returns the leaves under a large category, ordered by
// medium then small label.
func ByLarge(large string) []Node {
	return slices.Clone(t.byLarge[large])
}

// Larges returns the large-category labels in sorted order.
func Larges() []string {
	return slices.Clone(t.larges)
}

// Validate checks the loaded hierarchy for structural issues.
func Validate() error {
	return validateNodes(t.nodes)
}
