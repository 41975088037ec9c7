package grading

// Config holds the grading policy knobs.
type Config struct {
	// SubjectiveCaseSensitive requires exact-case matches for subjective
	// answers. The default preserves the original exact-match-after-trim
	// behavior; disable it to fold case like the other types.
	SubjectiveCaseSensitive bool
}

// DefaultConfig returns the standard grading policy.
func DefaultConfig() Config {
	return Config{
		SubjectiveCaseSensitive: true,
	}
}
