package exam

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExamResponse(t *testing.T) {
	ex := &Exam{
		ID:    "ex-1",
		Title: "Java quiz",
		Questions: []Question{
			{ID: "q1", Text: "What is a map?", Answer: "secret", Explanation: "secret too", Type: TypeConcept, Difficulty: 2, Score: 25},
			{ID: "q2", Text: "What is a list?", Answer: "secret", Type: TypeConcept, Difficulty: 3, Score: 25},
		},
		TotalScore: 50,
		CreatedAt:  time.Now(),
	}

	resp := ex.Response()

	if resp.QuestionCount != 2 || resp.TotalScore != 50 {
		t.Errorf("counts = %d/%d, want 2/50", resp.QuestionCount, resp.TotalScore)
	}
	for i, qv := range resp.Questions {
		if qv.Seq != i+1 {
			t.Errorf("Seq = %d, want %d", qv.Seq, i+1)
		}
	}

	// The serialized response must never leak answers or explanations.
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Errorf("response leaks the correct answer: %s", raw)
	}
}
