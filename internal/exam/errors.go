package exam

import "fmt"

// ErrInsufficientQuestions indicates the filtered pool was smaller than the
// requested question count. The exam is not created; callers never receive
// a partially filled exam.
type ErrInsufficientQuestions struct {
	Requested int
	Available int
}

func (e *ErrInsufficientQuestions) Error() string {
	return fmt.Sprintf("insufficient questions: requested %d, pool has %d", e.Requested, e.Available)
}
