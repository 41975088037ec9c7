package exam

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func adaptiveAssembler(acc map[int]float64) *Assembler {
	return NewAssembler(nil, &mockHistory{accuracy: acc}, DefaultConfig(), testRNG())
}

func TestTargetDifficulty(t *testing.T) {
	tests := []struct {
		name string
		acc  map[int]float64
		diff DifficultyRange
		want int
	}{
		{"high accuracy moves up", map[int]float64{3: 0.9}, DifficultyRange{1, 5}, 4},
		{"low accuracy moves down", map[int]float64{3: 0.3}, DifficultyRange{1, 5}, 2},
		{"mid accuracy stays", map[int]float64{3: 0.6}, DifficultyRange{1, 5}, 3},
		{"no history stays at anchor", nil, DifficultyRange{1, 5}, 3},
		{"no data for anchor stays", map[int]float64{1: 0.9}, DifficultyRange{1, 5}, 3},
		{"exactly at up threshold stays", map[int]float64{3: 0.8}, DifficultyRange{1, 5}, 3},
		{"exactly at down threshold stays", map[int]float64{3: 0.4}, DifficultyRange{1, 5}, 3},
		{"clamped to range max", map[int]float64{4: 0.95}, DifficultyRange{3, 4}, 4},
		{"clamped to range min", map[int]float64{3: 0.1}, DifficultyRange{3, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := adaptiveAssembler(tt.acc)
			got := a.targetDifficulty(context.Background(), Spec{Adaptive: true, UserID: "u1"}, tt.diff)
			if got != tt.want {
				t.Errorf("targetDifficulty = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTargetDifficulty_HistoryErrorStaysAtAnchor(t *testing.T) {
	a := NewAssembler(nil, &mockHistory{err: errors.New("no table")}, DefaultConfig(), testRNG())
	got := a.targetDifficulty(context.Background(), Spec{UserID: "u1"}, DifficultyRange{1, 5})
	if got != 3 {
		t.Errorf("targetDifficulty = %d, want anchor 3", got)
	}
}

func TestPoolWeights_BiasTowardTarget(t *testing.T) {
	pool := []Question{
		{ID: "d2", Difficulty: 2},
		{ID: "d3", Difficulty: 3},
		{ID: "d4", Difficulty: 4},
	}
	a := adaptiveAssembler(map[int]float64{3: 0.9})

	weights := a.poolWeights(context.Background(), pool, Spec{Adaptive: true, UserID: "u1"}, DifficultyRange{1, 5})

	// Accuracy 0.9 at the anchor: difficulty 4 gets the bias weight,
	// 2 and 3 keep the base weight.
	if weights[2] <= weights[0] || weights[2] <= weights[1] {
		t.Errorf("weights = %v, want difficulty 4 weighted above 2 and 3", weights)
	}
	if weights[0] != 1 || weights[1] != 1 {
		t.Errorf("off-target weights = %v, want base weight 1 so variety remains", weights)
	}
}

func TestPoolWeights_NonAdaptiveUniform(t *testing.T) {
	pool := []Question{{Difficulty: 2}, {Difficulty: 4}}
	a := adaptiveAssembler(map[int]float64{3: 0.9})

	weights := a.poolWeights(context.Background(), pool, Spec{Adaptive: false}, DifficultyRange{1, 5})

	for i, w := range weights {
		if w != 1 {
			t.Errorf("weights[%d] = %f, want 1 when adaptive is off", i, w)
		}
	}
}

func TestAssemble_AdaptiveFavorsHarderBucket(t *testing.T) {
	// Pool: 10 questions each at difficulties 2, 3, 4.
	bank := &mockBank{}
	for _, d := range []int{2, 3, 4} {
		bank.questions = append(bank.questions, bankOf(10, d).questions...)
	}
	history := &mockHistory{accuracy: map[int]float64{3: 0.9}}

	// Over many seeded draws, difficulty-4 questions should be selected
	// more often than difficulty-2 questions.
	counts := map[int]int{}
	for seed := range uint64(200) {
		a := NewAssembler(bank, history, DefaultConfig(), rand.New(rand.NewPCG(seed, 0)))
		ex, err := a.Assemble(context.Background(), Spec{Count: 5, Adaptive: true, UserID: "u1"})
		if err != nil {
			t.Fatalf("Assemble: %v", err)
		}
		for _, q := range ex.Questions {
			counts[q.Difficulty]++
		}
	}

	if counts[4] <= counts[2] {
		t.Errorf("difficulty counts = %v, want 4 drawn more than 2", counts)
	}
	if counts[2] == 0 || counts[3] == 0 {
		t.Errorf("difficulty counts = %v, want nonzero variety at every level", counts)
	}
}
