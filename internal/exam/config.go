package exam

// Config holds the adaptive-difficulty tuning knobs.
type Config struct {
	// WindowSize is how many recent answers per difficulty level the
	// history view is asked to consider.
	WindowSize int

	// UpThreshold is the accuracy above which selection biases one level up.
	UpThreshold float64

	// DownThreshold is the accuracy below which selection biases one level down.
	DownThreshold float64

	// BiasWeight multiplies the sampling weight of the target difficulty
	// bucket. Other buckets keep weight 1, so the exam retains variety
	// rather than hard-cutting off-target difficulties.
	BiasWeight float64
}

// DefaultConfig returns the standard adaptive-difficulty settings.
func DefaultConfig() Config {
	return Config{
		WindowSize:    20,
		UpThreshold:   0.8,
		DownThreshold: 0.4,
		BiasWeight:    3.0,
	}
}
