// Package history keeps the bounded list of finished drill sessions.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/vocab"
)

// MaxResults is the number of sessions kept.
const MaxResults = 50

// Result summarizes one finished session.
type Result struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Category   string             `json:"category"`
	Difficulty scoring.Difficulty `json:"difficulty"`
	Score      int                `json:"score"`
	Accuracy   float64            `json:"accuracy"`
	Answered   int                `json:"answered"`
	Correct    int                `json:"correct"`
	Struggled  []vocab.Item       `json:"struggled"`
	MaxStreak  int                `json:"max_streak"`
	Review     bool               `json:"review,omitempty"`
	Duration   time.Duration      `json:"duration_ns,omitempty"`
}

// AccuracyPercent returns correct as a percentage of answered.
func AccuracyPercent(correct, answered int) float64 {
	if answered <= 0 {
		return 0
	}
	return float64(correct) * 100 / float64(answered)
}

// Saver persists the full result list.
type Saver interface {
	SaveHistory(ctx context.Context, results []Result) error
}

// History holds results newest first.
type History struct {
	mu      sync.RWMutex
	results []Result
	saver   Saver
	logger  *slog.Logger
}

// New creates a History from previously persisted results. Results are
// assumed newest first and are truncated to MaxResults.
func New(results []Result, saver Saver, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	cp := make([]Result, len(results))
	copy(cp, results)
	return &History{results: cp, saver: saver, logger: logger}
}

// Append records a finished session and persists the list.
func (h *History) Append(ctx context.Context, r Result) {
	h.mu.Lock()
	next := make([]Result, 0, min(len(h.results)+1, MaxResults))
	next = append(next, r)
	for _, old := range h.results {
		if len(next) == MaxResults {
			break
		}
		next = append(next, old)
	}
	h.results = next
	snapshot := h.copyLocked()
	h.mu.Unlock()

	h.save(ctx, snapshot)
}

// Results returns a copy of the results, newest first.
func (h *History) Results() []Result {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.copyLocked()
}

// Len returns the number of stored results.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.results)
}

// Clear drops every result and persists the empty list.
func (h *History) Clear(ctx context.Context) {
	h.mu.Lock()
	h.results = nil
	h.mu.Unlock()
	h.save(ctx, nil)
}

func (h *History) save(ctx context.Context, results []Result) {
	if h.saver == nil {
		return
	}
	if err := h.saver.SaveHistory(ctx, results); err != nil {
		h.logger.Warn("persist history", "error", err)
	}
}

func (h *History) copyLocked() []Result {
	out := make([]Result, len(h.results))
	copy(out, h.results)
	return out
}

// Encode serializes results for storage.
func Encode(results []Result) ([]byte, error) {
	if results == nil {
		results = []Result{}
	}
	return json.Marshal(results)
}

// Decode parses stored results.
func Decode(b []byte) ([]Result, error) {
	var out []Result
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return out, nil
}
