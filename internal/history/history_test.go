package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kotoba/internal/vocab"
)

type memSaver struct {
	last  []Result
	calls int
}

func (m *memSaver) SaveHistory(_ context.Context, results []Result) error {
	m.calls++
	m.last = results
	return nil
}

func TestAppendNewestFirstAndBounded(t *testing.T) {
	saver := &memSaver{}
	h := New(nil, saver, nil)
	ctx := context.Background()

	for i := range MaxResults + 7 {
		h.Append(ctx, Result{ID: fmt.Sprintf("s%d", i), Score: i})
	}

	got := h.Results()
	require.Len(t, got, MaxResults)
	assert.Equal(t, fmt.Sprintf("s%d", MaxResults+6), got[0].ID, "newest should be first")
	assert.Equal(t, "s7", got[MaxResults-1].ID, "oldest kept should be s7")
	assert.Equal(t, MaxResults+7, saver.calls)
	assert.Len(t, saver.last, MaxResults)
}

func TestNewTruncates(t *testing.T) {
	in := make([]Result, MaxResults+3)
	h := New(in, nil, nil)
	assert.Equal(t, MaxResults, h.Len())
}

func TestResultsReturnsCopy(t *testing.T) {
	h := New([]Result{{ID: "a"}}, nil, nil)
	got := h.Results()
	got[0].ID = "mutated"
	assert.Equal(t, "a", h.Results()[0].ID)
}

func TestClear(t *testing.T) {
	saver := &memSaver{}
	h := New([]Result{{ID: "a"}}, saver, nil)
	h.Clear(context.Background())
	assert.Zero(t, h.Len())
	assert.Equal(t, 1, saver.calls)
}

func TestEncodeDecode(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	in := []Result{{
		ID:         "x",
		Timestamp:  ts,
		Category:   "hiragana",
		Difficulty: "hard",
		Score:      4200,
		Accuracy:   80,
		Answered:   5,
		Correct:    4,
		Struggled:  []vocab.Item{{Native: "ねこ", Romaji: "neko"}, {Native: "ねこ", Romaji: "neko"}},
		MaxStreak:  3,
	}}
	b, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Timestamp.Equal(ts))
	assert.Len(t, out[0].Struggled, 2, "duplicates are preserved")

	_, err = Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestAccuracyPercent(t *testing.T) {
	assert.Equal(t, 0.0, AccuracyPercent(0, 0))
	assert.Equal(t, 100.0, AccuracyPercent(5, 5))
	assert.InDelta(t, 66.67, AccuracyPercent(2, 3), 0.01)
}
