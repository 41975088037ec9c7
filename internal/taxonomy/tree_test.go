package taxonomy

import "testing"

func TestSeedHierarchyValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed hierarchy invalid: %v", err)
	}
}

func TestGet(t *testing.T) {
	n, err := Get("programming/java/collections")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n.Large != "programming" || n.Medium != "java" || n.Small != "collections" {
		t.Errorf("unexpected node %+v", n)
	}

	if _, err := Get("no/such/category"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestByLargeOrdering(t *testing.T) {
	group := ByLarge("computer-science")
	if len(group) == 0 {
		t.Fatal("expected computer-science categories")
	}
	for i := 1; i < len(group); i++ {
		prev, cur := group[i-1], group[i]
		if prev.Medium > cur.Medium || (prev.Medium == cur.Medium && prev.Small > cur.Small) {
			t.Errorf("ByLarge not ordered: %q before %q", prev.Key(), cur.Key())
		}
	}
}

func TestLoad(t *testing.T) {
	seed := All()
	t.Cleanup(func() {
		if err := Load(seed); err != nil {
			t.Fatalf("restore seed hierarchy: %v", err)
		}
	})

	custom := []Node{
		{Large: "medicine", Medium: "anatomy", Small: "skeletal", Keywords: []string{"bone", "joint"}},
		{Large: "medicine", Medium: "anatomy", Small: "muscular", Keywords: []string{"muscle", "tendon"}},
	}
	if err := Load(custom); err != nil {
		t.Fatalf("Load: %v", err)
	}

	n, err := Get("medicine/anatomy/skeletal")
	if err != nil {
		t.Fatalf("Get after Load: %v", err)
	}
	if n.Keywords[0] != "bone" {
		t.Errorf("unexpected node %+v", n)
	}
	if larges := Larges(); len(larges) != 1 || larges[0] != "medicine" {
		t.Errorf("Larges = %v, want [medicine]", larges)
	}

	res := Classify([]string{"muscle", "tendon"})
	if res.MatchedCategory == nil || res.MatchedCategory.Small != "muscular" {
		t.Errorf("Classify against loaded hierarchy = %+v", res.MatchedCategory)
	}
}

func TestLoad_RejectsInvalidSetAndKeepsCurrent(t *testing.T) {
	invalid := []Node{
		{Large: "a", Medium: "b", Small: "c", Keywords: []string{"x"}},
		{Large: "a", Medium: "b", Small: "c", Keywords: []string{"y"}},
	}
	if err := Load(invalid); err == nil {
		t.Fatal("expected error for duplicate keys")
	}

	// The previously loaded hierarchy must survive a failed Load.
	if _, err := Get("programming/java/collections"); err != nil {
		t.Errorf("hierarchy lost after failed Load: %v", err)
	}
}

func TestValidateNodes(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantErr bool
	}{
		{
			name: "valid",
			nodes: []Node{
				{Large: "a", Medium: "b", Small: "c", Keywords: []string{"x"}},
			},
		},
		{
			name: "duplicate key",
			nodes: []Node{
				{Large: "a", Medium: "b", Small: "c", Keywords: []string{"x"}},
				{Large: "a", Medium: "b", Small: "c", Keywords: []string{"y"}},
			},
			wantErr: true,
		},
		{
			name: "empty label",
			nodes: []Node{
				{Large: "a", Medium: "", Small: "c", Keywords: []string{"x"}},
			},
			wantErr: true,
		},
		{
			name: "no keywords",
			nodes: []Node{
				{Large: "a", Medium: "b", Small: "c"},
			},
			wantErr: true,
		},
		{
			name: "unnormalized keyword",
			nodes: []Node{
				{Large: "a", Medium: "b", Small: "c", Keywords: []string{"Mixed Case"}},
			},
			wantErr: true,
		},
		{
			name:    "empty hierarchy",
			nodes:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNodes(tt.nodes)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateNodes error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
