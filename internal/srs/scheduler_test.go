package srs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/kotoba/internal/vocab"
)

// mockSaver records every persisted table.
type mockSaver struct {
	saves [][]Record
	err   error
}

func (m *mockSaver) SaveSRSTable(_ context.Context, records []Record) error {
	cp := make([]Record, len(records))
	copy(cp, records)
	m.saves = append(m.saves, cp)
	return m.err
}

var (
	t0  = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	cat = vocab.Item{Native: "ねこ", Romaji: "neko", Meaning: "cat"}
	dog = vocab.Item{Native: "いぬ", Romaji: "inu", Meaning: "dog"}
)

func TestCorrectAnswerAdvancesEveryLevel(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		s := NewScheduler([]Record{{Item: cat, Level: level, NextReviewAt: t0}}, nil, nil)
		got := s.RecordAnswer(context.Background(), cat, true, t0)

		want := min(level+1, MaxLevel)
		if got.Level != want {
			t.Errorf("from level %d: Level = %d, want %d", level, got.Level, want)
		}
		if got.Interval != IntervalTable[want] {
			t.Errorf("from level %d: Interval = %v, want %v", level, got.Interval, IntervalTable[want])
		}
		if !got.NextReviewAt.Equal(t0.Add(IntervalTable[want])) {
			t.Errorf("from level %d: NextReviewAt = %v", level, got.NextReviewAt)
		}
	}
}

func TestIncorrectAnswerResetsEveryLevel(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		s := NewScheduler([]Record{{Item: cat, Level: level, NextReviewAt: t0}}, nil, nil)
		got := s.RecordAnswer(context.Background(), cat, false, t0)

		if got.Level != 0 {
			t.Errorf("from level %d: Level = %d, want 0", level, got.Level)
		}
		if !got.NextReviewAt.Equal(t0.Add(5 * time.Minute)) {
			t.Errorf("from level %d: NextReviewAt = %v, want now+5m", level, got.NextReviewAt)
		}
	}
}

func TestNewItemStartsFromZero(t *testing.T) {
	s := NewScheduler(nil, nil, nil)
	got := s.RecordAnswer(context.Background(), cat, true, t0)
	if got.Level != 1 {
		t.Errorf("Level = %d, want 1", got.Level)
	}
	if got.Interval != time.Hour {
		t.Errorf("Interval = %v, want 1h", got.Interval)
	}
	if got.TimesCorrect != 1 || got.TimesIncorrect != 0 {
		t.Errorf("counts = %d/%d, want 1/0", got.TimesCorrect, got.TimesIncorrect)
	}
}

func TestMissThenTwoHits(t *testing.T) {
	s := NewScheduler(nil, nil, nil)
	ctx := context.Background()

	var levels []int
	for _, correct := range []bool{false, true, true} {
		levels = append(levels, s.RecordAnswer(ctx, cat, correct, t0).Level)
	}

	want := []int{0, 1, 2}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("levels = %v, want %v", levels, want)
		}
	}
	r, _ := s.Get(cat.Key())
	if r.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, want 24h", r.Interval)
	}
}

func TestWriteThroughEveryAnswer(t *testing.T) {
	saver := &mockSaver{}
	s := NewScheduler(nil, saver, nil)
	ctx := context.Background()

	s.RecordAnswer(ctx, cat, true, t0)
	s.RecordAnswer(ctx, dog, false, t0)

	if len(saver.saves) != 2 {
		t.Fatalf("saves = %d, want 2", len(saver.saves))
	}
	if len(saver.saves[1]) != 2 {
		t.Errorf("second save has %d records, want the whole table (2)", len(saver.saves[1]))
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	saver := &mockSaver{err: errors.New("disk full")}
	s := NewScheduler(nil, saver, nil)

	s.RecordAnswer(context.Background(), cat, true, t0)

	r, ok := s.Get(cat.Key())
	if !ok {
		t.Fatal("record missing after failed save")
	}
	if r.Level != 1 {
		t.Errorf("Level = %d, want 1", r.Level)
	}
}

func TestDueItems(t *testing.T) {
	fish := vocab.Item{Native: "さかな", Romaji: "sakana"}
	bird := vocab.Item{Native: "とり", Romaji: "tori"}
	s := NewScheduler([]Record{
		{Item: cat, Level: 3, NextReviewAt: t0.Add(-48 * time.Hour)},
		{Item: dog, Level: 2, NextReviewAt: t0},
		{Item: fish, Level: 8, NextReviewAt: t0.Add(-1000 * time.Hour)},
		{Item: bird, Level: 1, NextReviewAt: t0.Add(time.Minute)},
	}, nil, nil)

	due := s.DueItems(t0)
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].Key() != cat.Key() || due[1].Key() != dog.Key() {
		t.Errorf("due order = [%s %s], want most overdue first", due[0].Key(), due[1].Key())
	}
	if n := s.DueCount(t0); n != 2 {
		t.Errorf("DueCount = %d, want 2", n)
	}
}

func TestReset(t *testing.T) {
	saver := &mockSaver{}
	s := NewScheduler([]Record{{Item: cat, Level: 2}}, saver, nil)
	s.Reset(context.Background())
	if s.Len() != 0 {
		t.Errorf("Len() = %d after reset", s.Len())
	}
	if len(saver.saves) != 1 || len(saver.saves[0]) != 0 {
		t.Errorf("reset should persist an empty table, got %v", saver.saves)
	}
}

func TestTableRoundTrip(t *testing.T) {
	in := []Record{
		{Item: cat, Level: 4, NextReviewAt: t0, LastReviewedAt: t0.Add(-time.Hour), TimesCorrect: 4},
		{Item: dog, Level: 0, NextReviewAt: t0.Add(5 * time.Minute), TimesIncorrect: 1},
	}
	b, err := EncodeTable(in)
	if err != nil {
		t.Fatalf("EncodeTable: %v", err)
	}
	out, err := DecodeTable(b)
	if err != nil {
		t.Fatalf("DecodeTable: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Interval != IntervalTable[4] {
		t.Errorf("Interval = %v, want derived from level", out[0].Interval)
	}
	if !out[1].NextReviewAt.Equal(in[1].NextReviewAt) {
		t.Errorf("NextReviewAt = %v, want %v", out[1].NextReviewAt, in[1].NextReviewAt)
	}
}

func TestDecodeTableSkipsBadDates(t *testing.T) {
	raw := `{"version":1,"records":[
		{"item":{"native":"ねこ","romaji":"neko"},"level":2,"next_review_at":"not-a-date"},
		{"item":{"native":"いぬ","romaji":"inu"},"level":12,"next_review_at":"2026-03-01T09:00:00Z"}
	]}`
	out, err := DecodeTable([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeTable: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Level != MaxLevel {
		t.Errorf("Level = %d, want clamped to %d", out[0].Level, MaxLevel)
	}
}

func TestDecodeTableMalformed(t *testing.T) {
	if _, err := DecodeTable([]byte("{oops")); err == nil {
		t.Fatal("expected error for malformed table")
	}
}
