package taxonomy

import (
	"fmt"
	"strings"
)

// validateNodes performs all structural checks on the given node set.
// Returns a combined error describing all problems found, or nil if valid.
func validateNodes(nodes []Node) error {
	var errs []string

	keySet := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		if n.Large == "" || n.Medium == "" || n.Small == "" {
			errs = append(errs, fmt.Sprintf("node %q has an empty label level", n.Key()))
		}

		if keySet[n.Key()] {
			errs = append(errs, fmt.Sprintf("duplicate category key: %q", n.Key()))
		}
		keySet[n.Key()] = true

		if len(n.Keywords) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no keywords; it can never match", n.Key()))
		}

		kwSet := make(map[string]bool, len(n.Keywords))
		for _, kw := range n.Keywords {
			if kw != strings.ToLower(strings.TrimSpace(kw)) {
				errs = append(errs, fmt.Sprintf("category %q keyword %q is not normalized lowercase", n.Key(), kw))
			}
			if kwSet[kw] {
				errs = append(errs, fmt.Sprintf("category %q has duplicate keyword %q", n.Key(), kw))
			}
			kwSet[kw] = true
		}
	}

	if len(nodes) == 0 {
		errs = append(errs, "hierarchy has no categories")
	}

	if len(errs) > 0 {
		return fmt.Errorf("taxonomy validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
