package recommend

import (
	"reflect"
	"testing"
)

func testLectures() []Lecture {
	return []Lecture{
		{ID: "lec-3", Title: "Java Collections Deep Dive", Tags: []string{"java", "list", "map"}},
		{ID: "lec-1", Title: "Intro to SQL", Tags: []string{"sql", "join"}},
		{ID: "lec-2", Title: "Concurrency Basics", Tags: []string{"java", "thread"}},
	}
}

func TestRecommend_Ordering(t *testing.T) {
	noteTags := []string{"java", "list", "map"}

	var ids []string
	for m := range Recommend(noteTags, testLectures()) {
		ids = append(ids, m.Lecture.ID)
	}

	// lec-3 matches 3/3, lec-2 matches 1/3, lec-1 matches 0/3.
	want := []string{"lec-3", "lec-2", "lec-1"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestRecommend_TieBreaks(t *testing.T) {
	lectures := []Lecture{
		{ID: "b", Tags: []string{"x", "y"}},
		{ID: "a", Tags: []string{"x", "y"}},
	}

	var ids []string
	for m := range Recommend([]string{"x", "y"}, lectures) {
		ids = append(ids, m.Lecture.ID)
	}

	// Identical rate and matched count: ID ascending.
	want := []string{"a", "b"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
}

func TestRecommend_EmptyNoteTags(t *testing.T) {
	for m := range Recommend(nil, testLectures()) {
		if m.HitRate != 0 || m.TotalTags != 0 {
			t.Errorf("empty note tags should give rate 0, got %+v", m)
		}
	}
}

func TestRecommend_Restartable(t *testing.T) {
	seq := Recommend([]string{"java"}, testLectures())

	var first, second []string
	for m := range seq {
		first = append(first, m.Lecture.ID)
	}
	for m := range seq {
		second = append(second, m.Lecture.ID)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("restarted sequence differs: %v vs %v", first, second)
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	lectures := testLectures()
	orig := make([]Lecture, len(lectures))
	copy(orig, lectures)

	for range Recommend([]string{"java", "thread"}, lectures) {
	}

	if !reflect.DeepEqual(lectures, orig) {
		t.Error("Recommend mutated the lecture slice")
	}
}

func TestTop(t *testing.T) {
	got := Top([]string{"java"}, testLectures(), 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	// Both lec-2 and lec-3 match 1/1; lec-2 wins on ID.
	if got[0].Lecture.ID != "lec-2" {
		t.Errorf("top = %q, want lec-2", got[0].Lecture.ID)
	}

	if all := Top([]string{"java"}, testLectures(), 0); len(all) != 3 {
		t.Errorf("Top with n=0 returned %d, want all 3", len(all))
	}
}
