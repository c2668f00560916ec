package wordgen

import (
	"context"
	"errors"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/vocab"
)

// ErrEmpty is returned when generation produced no usable words.
var ErrEmpty = errors.New("no usable words generated")

// Generator produces vocabulary items for a drill.
type Generator interface {
	// Generate returns up to req.Count validated items. Every returned
	// item passes the configured validators and, for closed categories,
	// uses only characters from req.Charset. When nothing usable is
	// produced the error wraps ErrEmpty.
	Generate(ctx context.Context, req Request) ([]vocab.Item, error)
}

// Request holds the context for one generation call.
type Request struct {
	Category   kana.Category
	Charset    kana.Charset // nil for open categories
	Difficulty scoring.Difficulty
	Topic      string   // optional free text
	Priority   []rune   // weak characters to favour, most important first
	Count      int
}
