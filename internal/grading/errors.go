package grading

import (
	"fmt"
	"time"
)

// ErrInvalidTimeRange indicates a submission that ends before it starts.
// Grading is aborted; no partial result is produced.
type ErrInvalidTimeRange struct {
	Start time.Time
	End   time.Time
}

func (e *ErrInvalidTimeRange) Error() string {
	return fmt.Sprintf("invalid time range: end %s before start %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}
