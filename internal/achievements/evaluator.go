package achievements

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// UnlockedSet maps achievement IDs to their unlock time. It only grows.
type UnlockedSet map[string]time.Time

// Has reports whether id is unlocked.
func (s UnlockedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// EncodeSet serializes the set for storage.
func EncodeSet(s UnlockedSet) ([]byte, error) {
	if s == nil {
		s = UnlockedSet{}
	}
	return json.Marshal(s)
}

// DecodeSet parses a stored set.
func DecodeSet(b []byte) (UnlockedSet, error) {
	var s UnlockedSet
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode achievements: %w", err)
	}
	if s == nil {
		s = UnlockedSet{}
	}
	return s, nil
}

// Saver persists the unlocked set.
type Saver interface {
	SaveUnlocked(ctx context.Context, set UnlockedSet) error
}

// Unlocked pairs a definition with its unlock time.
type Unlocked struct {
	Achievement
	At time.Time
}

// Evaluator runs the catalog rules and tracks unlocks.
type Evaluator struct {
	mu       sync.Mutex
	catalog  []Achievement
	unlocked UnlockedSet
	saver    Saver
	logger   *slog.Logger
}

// NewEvaluator creates an evaluator over catalog seeded with a previously
// persisted set. A nil catalog uses Catalog().
func NewEvaluator(catalog []Achievement, unlocked UnlockedSet, saver Saver, logger *slog.Logger) *Evaluator {
	if catalog == nil {
		catalog = Catalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	set := make(UnlockedSet, len(unlocked))
	for id, at := range unlocked {
		set[id] = at
	}
	return &Evaluator{catalog: catalog, unlocked: set, saver: saver, logger: logger}
}

// Evaluate unlocks every achievement whose rule now holds and returns the
// newly unlocked ones in catalog order. Unlocks are persisted
// immediately; an achievement is never revoked.
func (e *Evaluator) Evaluate(ctx context.Context, in Inputs, now time.Time) []Achievement {
	e.mu.Lock()
	var fresh []Achievement
	for _, a := range e.catalog {
		if e.unlocked.Has(a.ID) {
			continue
		}
		if a.Rule.Met(in) {
			e.unlocked[a.ID] = now
			fresh = append(fresh, a)
		}
	}
	var snapshot UnlockedSet
	if len(fresh) > 0 {
		snapshot = e.copyLocked()
	}
	e.mu.Unlock()

	if len(fresh) == 0 {
		return nil
	}
	for _, a := range fresh {
		e.logger.Info("achievement unlocked", "id", a.ID, "name", a.Name)
	}
	if e.saver != nil {
		if err := e.saver.SaveUnlocked(ctx, snapshot); err != nil {
			e.logger.Warn("persist achievements", "error", err)
		}
	}
	return fresh
}

// IsUnlocked reports whether id has been unlocked.
func (e *Evaluator) IsUnlocked(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlocked.Has(id)
}

// Unlocked returns unlocked achievements, most recent first.
func (e *Evaluator) Unlocked() []Unlocked {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Unlocked
	for _, a := range e.catalog {
		if at, ok := e.unlocked[a.ID]; ok {
			out = append(out, Unlocked{Achievement: a, At: at})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out
}

// Catalog returns the definitions the evaluator runs.
func (e *Evaluator) Catalog() []Achievement {
	out := make([]Achievement, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Reset clears the unlocked set. Only the reset command calls this.
func (e *Evaluator) Reset(ctx context.Context) {
	e.mu.Lock()
	e.unlocked = UnlockedSet{}
	e.mu.Unlock()
	if e.saver != nil {
		if err := e.saver.SaveUnlocked(ctx, UnlockedSet{}); err != nil {
			e.logger.Warn("persist achievements", "error", err)
		}
	}
}

func (e *Evaluator) copyLocked() UnlockedSet {
	out := make(UnlockedSet, len(e.unlocked))
	for id, at := range e.unlocked {
		out[id] = at
	}
	return out
}
