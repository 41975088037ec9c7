// Package taxonomy holds the fixed three-level category hierarchy and the
// keyword-overlap matcher that classifies free-form content against it.
package taxonomy

// Node is one leaf of the category hierarchy. Every leaf carries the full
// large/medium/small label path plus the keyword set used for matching.
type Node struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
	Small  string `json:"small"`

	// Keywords is the lowercase keyword set associated with this leaf.
	Keywords []string `json:"keywords"`

	// ExampleTag is a display tag suggested to callers, e.g. "#Java".
	ExampleTag string `json:"exampleTag,omitempty"`
}

// Key returns the unique "large/medium/small" identifier for the node.
func (n Node) Key() string {
	return n.Large + "/" + n.Medium + "/" + n.Small
}

// FolderPath returns the suggested folder path for content filed under
// this node. It is identical to Key but kept separate because callers
// treat it as a display string, not an identifier.
func (n Node) FolderPath() string {
	return n.Key()
}
