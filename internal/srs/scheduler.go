package srs

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/kotoba/internal/vocab"
)

// TableSaver persists the full record table.
type TableSaver interface {
	SaveSRSTable(ctx context.Context, records []Record) error
}

// Scheduler owns the SRS table. Every mutation is written through to
// the saver before RecordAnswer returns.
type Scheduler struct {
	mu      sync.RWMutex
	records map[string]*Record
	saver   TableSaver
	logger  *slog.Logger
}

// NewScheduler creates a scheduler seeded with previously persisted
// records. saver may be nil for an in-memory table.
func NewScheduler(records []Record, saver TableSaver, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		records: make(map[string]*Record, len(records)),
		saver:   saver,
		logger:  logger,
	}
	for _, r := range records {
		if r.Key() == "" {
			continue
		}
		r.Level = clampLevel(r.Level)
		r.Interval = IntervalTable[r.Level]
		s.records[r.Key()] = &r
	}
	return s
}

// RecordAnswer applies one answer to the item's record and persists the
// table. Persistence failures are logged; the in-memory table stays
// authoritative.
func (s *Scheduler) RecordAnswer(ctx context.Context, item vocab.Item, correct bool, now time.Time) Record {
	s.mu.Lock()
	key := item.Key()
	var prior Record
	if r := s.records[key]; r != nil {
		prior = *r
	}
	updated := prior.next(item, correct, now)
	s.records[key] = &updated
	table := s.sortedLocked()
	s.mu.Unlock()

	if s.saver != nil {
		if err := s.saver.SaveSRSTable(ctx, table); err != nil {
			s.logger.Warn("persist srs table", "item", key, "error", err)
		}
	}
	return updated
}

// DueItems returns records due at now, most overdue first.
func (s *Scheduler) DueItems(now time.Time) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []Record
	for _, r := range s.records {
		if r.IsDue(now) {
			due = append(due, *r)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].Overdue(now), due[j].Overdue(now)
		if oi != oj {
			return oi > oj
		}
		return due[i].Key() < due[j].Key()
	})
	return due
}

// DueCount returns the number of records due at now.
func (s *Scheduler) DueCount(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.IsDue(now) {
			n++
		}
	}
	return n
}

// Get returns the record for key.
func (s *Scheduler) Get(key string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Records returns a copy of all records ordered by key.
func (s *Scheduler) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Len returns the number of tracked items.
func (s *Scheduler) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset drops every record and persists the empty table.
func (s *Scheduler) Reset(ctx context.Context) {
	s.mu.Lock()
	s.records = make(map[string]*Record)
	s.mu.Unlock()

	if s.saver != nil {
		if err := s.saver.SaveSRSTable(ctx, nil); err != nil {
			s.logger.Warn("persist srs table", "error", err)
		}
	}
}

func (s *Scheduler) sortedLocked() []Record {
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
