// Package progress loads and saves the learner's persisted state: display
// name, session history, SRS table and unlocked achievements. Each lives in
// its own key/value slot and is rewritten wholesale on every change.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/srs"
)

// Slot keys.
const (
	SlotDisplayName  = "display_name"
	SlotHistory      = "history"
	SlotSRSTable     = "srs_table"
	SlotAchievements = "achievements"
)

// Slots lists every slot key.
var Slots = []string{SlotDisplayName, SlotHistory, SlotSRSTable, SlotAchievements}

// KV is the blob storage the repository writes through.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// State is everything loaded at startup.
type State struct {
	DisplayName string
	History     []history.Result
	Records     []srs.Record
	Unlocked    achievements.UnlockedSet
}

// Repo reads and writes the typed slots.
type Repo struct {
	kv     KV
	logger *slog.Logger
}

// New creates a Repo over kv.
func New(kv KV, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repo{kv: kv, logger: logger}
}

// Load reads all four slots concurrently. A slot that is missing or fails
// to decode is treated as empty and logged; only storage errors are
// returned.
func (r *Repo) Load(ctx context.Context) (State, error) {
	st := State{Unlocked: achievements.UnlockedSet{}}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b, ok, err := r.read(ctx, SlotDisplayName)
		if err != nil || !ok {
			return err
		}
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			r.corrupt(SlotDisplayName, err)
			return nil
		}
		st.DisplayName = strings.TrimSpace(name)
		return nil
	})

	g.Go(func() error {
		b, ok, err := r.read(ctx, SlotHistory)
		if err != nil || !ok {
			return err
		}
		results, err := history.Decode(b)
		if err != nil {
			r.corrupt(SlotHistory, err)
			return nil
		}
		st.History = results
		return nil
	})

	g.Go(func() error {
		b, ok, err := r.read(ctx, SlotSRSTable)
		if err != nil || !ok {
			return err
		}
		records, err := srs.DecodeTable(b)
		if err != nil {
			r.corrupt(SlotSRSTable, err)
			return nil
		}
		st.Records = records
		return nil
	})

	g.Go(func() error {
		b, ok, err := r.read(ctx, SlotAchievements)
		if err != nil || !ok {
			return err
		}
		set, err := achievements.DecodeSet(b)
		if err != nil {
			r.corrupt(SlotAchievements, err)
			return nil
		}
		st.Unlocked = set
		return nil
	})

	if err := g.Wait(); err != nil {
		return State{Unlocked: achievements.UnlockedSet{}}, err
	}
	return st, nil
}

func (r *Repo) read(ctx context.Context, slot string) ([]byte, bool, error) {
	b, ok, err := r.kv.Get(ctx, slot)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", slot, err)
	}
	return b, ok, nil
}

func (r *Repo) corrupt(slot string, err error) {
	r.logger.Warn("ignoring corrupt slot", "slot", slot, "error", err)
}

// SaveDisplayName persists the learner's display name.
func (r *Repo) SaveDisplayName(ctx context.Context, name string) error {
	b, err := json.Marshal(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("encode display name: %w", err)
	}
	return r.write(ctx, SlotDisplayName, b)
}

// SaveHistory implements history.Saver.
func (r *Repo) SaveHistory(ctx context.Context, results []history.Result) error {
	b, err := history.Encode(results)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return r.write(ctx, SlotHistory, b)
}

// SaveSRSTable implements srs.TableSaver.
func (r *Repo) SaveSRSTable(ctx context.Context, records []srs.Record) error {
	b, err := srs.EncodeTable(records)
	if err != nil {
		return fmt.Errorf("encode srs table: %w", err)
	}
	return r.write(ctx, SlotSRSTable, b)
}

// SaveUnlocked implements achievements.Saver.
func (r *Repo) SaveUnlocked(ctx context.Context, set achievements.UnlockedSet) error {
	b, err := achievements.EncodeSet(set)
	if err != nil {
		return fmt.Errorf("encode achievements: %w", err)
	}
	return r.write(ctx, SlotAchievements, b)
}

// Reset deletes every slot.
func (r *Repo) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, Slots...); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

func (r *Repo) write(ctx context.Context, slot string, b []byte) error {
	if err := r.kv.Put(ctx, slot, b); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}
