package exam

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Spec is the set of selection constraints for one exam.
type Spec struct {
	Title string
	Desc  string

	// Category constrains the question category; empty levels are wildcards.
	Category CategoryPath

	// Difficulty pins a single difficulty level when non-zero. Otherwise
	// MinDiff/MaxDiff bound the range; both zero means unconstrained (1-5).
	Difficulty int
	MinDiff    int
	MaxDiff    int

	// Count is the number of questions to select.
	Count int

	// Type filters by question type; empty means any type.
	Type Type

	// Adaptive enables accuracy-driven difficulty weighting for UserID.
	Adaptive bool
	UserID   string

	// ScorePerQuestion is the weight assigned to every selected question.
	ScorePerQuestion int
}

// Range resolves the spec's difficulty constraint to an inclusive range.
func (s Spec) Range() DifficultyRange {
	if s.Difficulty != 0 {
		return DifficultyRange{Min: s.Difficulty, Max: s.Difficulty}
	}
	r := DifficultyRange{Min: s.MinDiff, Max: s.MaxDiff}
	if r.Min == 0 {
		r.Min = MinDifficulty
	}
	if r.Max == 0 {
		r.Max = MaxDifficulty
	}
	return r
}

// Assembler selects question sets from the bank. The random source is
// injected so selection is reproducible under test.
type Assembler struct {
	bank    QuestionBankView
	history AttemptHistoryView
	cfg     Config
	rng     *rand.Rand
}

// NewAssembler creates an assembler. history may be nil when no caller
// uses adaptive mode.
func NewAssembler(bank QuestionBankView, history AttemptHistoryView, cfg Config, rng *rand.Rand) *Assembler {
	return &Assembler{bank: bank, history: history, cfg: cfg, rng: rng}
}

// Assemble builds an exam per the spec.
//
// Filtering keeps questions matching every non-wildcard category level, the
// type filter, and the difficulty range. In adaptive mode the candidate
// pool's per-difficulty sampling weights are biased by the user's recent
// accuracy before drawing. Returns *ErrInsufficientQuestions when the
// filtered pool is smaller than spec.Count.
func (a *Assembler) Assemble(ctx context.Context, spec Spec) (*Exam, error) {
	diff := spec.Range()

	candidates, err := a.bank.QueryByConstraints(ctx, spec.Category, diff, spec.Type)
	if err != nil {
		return nil, fmt.Errorf("query question bank: %w", err)
	}

	pool := filter(candidates, spec, diff)
	if len(pool) < spec.Count {
		return nil, &ErrInsufficientQuestions{Requested: spec.Count, Available: len(pool)}
	}

	weights := a.poolWeights(ctx, pool, spec, diff)
	drawn := a.sample(pool, weights, spec.Count)

	return &Exam{
		ID:         uuid.NewString(),
		Title:      spec.Title,
		Desc:       spec.Desc,
		Questions:  drawn,
		TotalScore: spec.Count * spec.ScorePerQuestion,
		CreatedAt:  time.Now(),
	}, nil
}

// filter applies the spec constraints in memory. The bank already queried
// by constraint, but view implementations are allowed to over-return.
func filter(candidates []Question, spec Spec, diff DifficultyRange) []Question {
	var pool []Question
	for _, q := range candidates {
		if !spec.Category.Covers(q.Category) {
			continue
		}
		if spec.Type != "" && q.Type != spec.Type {
			continue
		}
		if !diff.Contains(q.Difficulty) {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

// poolWeights returns one sampling weight per pool entry. Non-adaptive
// specs weight everything equally.
func (a *Assembler) poolWeights(ctx context.Context, pool []Question, spec Spec, diff DifficultyRange) []float64 {
	weights := make([]float64, len(pool))
	for i := range weights {
		weights[i] = 1
	}

	if !spec.Adaptive || a.history == nil {
		return weights
	}

	target := a.targetDifficulty(ctx, spec, diff)
	for i, q := range pool {
		if q.Difficulty == target {
			weights[i] = a.cfg.BiasWeight
		}
	}
	return weights
}

// sample draws count distinct questions without replacement, probability
// proportional to weight. Draw order assigns the sequence.
func (a *Assembler) sample(pool []Question, weights []float64, count int) []Question {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	drawn := make([]Question, 0, count)
	for len(drawn) < count {
		total := 0.0
		for _, i := range idx {
			total += weights[i]
		}

		r := a.rng.Float64() * total
		pick := len(idx) - 1
		acc := 0.0
		for pos, i := range idx {
			acc += weights[i]
			if r < acc {
				pick = pos
				break
			}
		}

		drawn = append(drawn, pool[idx[pick]])
		idx = append(idx[:pick], idx[pick+1:]...)
	}
	return drawn
}
