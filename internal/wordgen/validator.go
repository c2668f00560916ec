package wordgen

import (
	"fmt"

	"github.com/abhisek/kotoba/internal/vocab"
)

// Validator checks a generated item.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if the item passes.
	Validate(it *vocab.Item, req Request) *ValidationError
}

// ValidationError describes why an item was rejected.
type ValidationError struct {
	Validator string
	Item      string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q rejected %q: %s", e.Validator, e.Item, e.Message)
}
