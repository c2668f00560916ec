package wordgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated item. An item failing
	// any validator is dropped.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// DefaultCount is used when a request does not set Count.
	DefaultCount int

	// MaxPriority caps how many priority characters go into the prompt.
	MaxPriority int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&RomajiValidator{},
			&CharsetValidator{},
		},
		MaxTokens:    1024,
		Temperature:  0.8,
		DefaultCount: 10,
		MaxPriority:  8,
	}
}
