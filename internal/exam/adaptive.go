package exam

import "context"

// targetDifficulty decides which difficulty bucket adaptive selection
// should favor.
//
// The anchor is the midpoint of the requested range (3 when unconstrained).
// If the user's recent accuracy at the anchor exceeds UpThreshold the target
// shifts one level up; below DownThreshold it shifts one level down;
// otherwise it stays at the anchor. The shifted target is clamped to the
// requested range so adaptive mode never selects outside the spec.
func (a *Assembler) targetDifficulty(ctx context.Context, spec Spec, diff DifficultyRange) int {
	anchor := diff.Midpoint()

	acc, err := a.history.RecentAccuracyByDifficulty(ctx, spec.UserID, a.cfg.WindowSize)
	if err != nil || acc == nil {
		// No history is a normal state; stay at the anchor.
		return anchor
	}

	rate, ok := acc[anchor]
	if !ok {
		return anchor
	}

	target := anchor
	switch {
	case rate > a.cfg.UpThreshold:
		target = anchor + 1
	case rate < a.cfg.DownThreshold:
		target = anchor - 1
	}

	if target < diff.Min {
		target = diff.Min
	}
	if target > diff.Max {
		target = diff.Max
	}
	if target < MinDifficulty {
		target = MinDifficulty
	}
	if target > MaxDifficulty {
		target = MaxDifficulty
	}
	return target
}
