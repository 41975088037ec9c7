// Package recommend ranks external lecture material against a note's tag set.
package recommend

import (
	"iter"
	"sort"

	"github.com/daehan/examly/internal/tagmatch"
)

// Lecture is one external lecture record from the lecture source.
type Lecture struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Tags  []string `json:"tags"`
}

// Match is a lecture scored against a note's tags.
type Match struct {
	Lecture Lecture `json:"lecture"`

	// Matched contains the note tags also present on the lecture.
	Matched []string `json:"matchedTags"`

	// MatchedCount is len(Matched); TotalTags is the note's distinct tag
	// count, so HitRate = MatchedCount/TotalTags (0 when the note has no tags).
	MatchedCount int     `json:"matchedCount"`
	TotalTags    int     `json:"totalTags"`
	HitRate      float64 `json:"hitRate"`
}

// Recommend scores every lecture against the note's tags and yields matches
// in rank order: hit rate descending, then matched count descending, then
// lecture ID ascending. The returned sequence is finite and restartable;
// lectures are not mutated and each restart recomputes from the inputs.
func Recommend(noteTags []string, lectures []Lecture) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, m := range rank(noteTags, lectures) {
			if !yield(m) {
				return
			}
		}
	}
}

// Top returns the n best matches as a slice. n <= 0 returns all matches.
func Top(noteTags []string, lectures []Lecture, n int) []Match {
	ranked := rank(noteTags, lectures)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func rank(noteTags []string, lectures []Lecture) []Match {
	matches := make([]Match, 0, len(lectures))
	for _, lec := range lectures {
		o := tagmatch.HitRate(noteTags, lec.Tags)
		matches = append(matches, Match{
			Lecture:      lec,
			Matched:      o.Matched,
			MatchedCount: o.MatchedCount,
			TotalTags:    o.TotalCount,
			HitRate:      o.Rate,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].HitRate != matches[j].HitRate {
			return matches[i].HitRate > matches[j].HitRate
		}
		if matches[i].MatchedCount != matches[j].MatchedCount {
			return matches[i].MatchedCount > matches[j].MatchedCount
		}
		return matches[i].Lecture.ID < matches[j].Lecture.ID
	})

	return matches
}
