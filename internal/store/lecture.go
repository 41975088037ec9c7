package store

import (
	"context"
	"fmt"

	"github.com/daehan/examly/ent"
	"github.com/daehan/examly/ent/lecture"
	"github.com/daehan/examly/internal/recommend"
)

// lectureRepo implements LectureRepo using the ent client.
type lectureRepo struct {
	client *ent.Client
}

func (r *lectureRepo) All(ctx context.Context) ([]recommend.Lecture, error) {
	rows, err := r.client.Lecture.Query().
		Order(ent.Asc(lecture.FieldLectureID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lectures: %w", err)
	}

	out := make([]recommend.Lecture, 0, len(rows))
	for _, row := range rows {
		out = append(out, recommend.Lecture{
			ID:    row.LectureID,
			Title: row.Title,
			URL:   row.URL,
			Tags:  row.Tags,
		})
	}
	return out, nil
}

func (r *lectureRepo) Put(ctx context.Context, lectures []recommend.Lecture) error {
	for _, l := range lectures {
		exists, err := r.client.Lecture.Query().
			Where(lecture.LectureID(l.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check lecture %s: %w", l.ID, err)
		}

		if exists {
			_, err = r.client.Lecture.Update().
				Where(lecture.LectureID(l.ID)).
				SetTitle(l.Title).
				SetURL(l.URL).
				SetTags(l.Tags).
				Save(ctx)
		} else {
			_, err = r.client.Lecture.Create().
				SetLectureID(l.ID).
				SetTitle(l.Title).
				SetURL(l.URL).
				SetTags(l.Tags).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("put lecture %s: %w", l.ID, err)
		}
	}
	return nil
}
