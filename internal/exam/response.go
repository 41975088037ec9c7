package exam

import "time"

// QuestionView is the transport-facing projection of a question. The
// correct answer and explanation are deliberately omitted; graders get the
// full Question, exam takers get this.
type QuestionView struct {
	Seq        int    `json:"seq"` // 1-based position in the exam
	ID         string `json:"id"`
	Text       string `json:"text"`
	Type       Type   `json:"type"`
	Difficulty int    `json:"difficulty"`
	Score      int    `json:"score"`
}

// Response is the transport-facing projection of an assembled exam.
type Response struct {
	ExamID        string         `json:"examId"`
	Title         string         `json:"title"`
	Desc          string         `json:"desc"`
	QuestionCount int            `json:"questionCount"`
	TotalScore    int            `json:"totalScore"`
	CreatedAt     time.Time      `json:"createdAt"`
	Questions     []QuestionView `json:"questions"`
}

// Response builds the answer-free projection of the exam.
func (e *Exam) Response() Response {
	views := make([]QuestionView, len(e.Questions))
	for i, q := range e.Questions {
		views[i] = QuestionView{
			Seq:        i + 1,
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			Difficulty: q.Difficulty,
			Score:      q.Score,
		}
	}
	return Response{
		ExamID:        e.ID,
		Title:         e.Title,
		Desc:          e.Desc,
		QuestionCount: len(e.Questions),
		TotalScore:    e.TotalScore,
		CreatedAt:     e.CreatedAt,
		Questions:     views,
	}
}
