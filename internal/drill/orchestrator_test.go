package drill

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/vocab"
	"github.com/abhisek/kotoba/internal/wordgen"
)

var (
	neko   = vocab.Item{Native: "ねこ", Romaji: "neko", Meaning: "cat"}
	inu    = vocab.Item{Native: "いぬ", Romaji: "inu", Meaning: "dog"}
	yama   = vocab.Item{Native: "やま", Romaji: "yama", Meaning: "mountain"}
	sora   = vocab.Item{Native: "そら", Romaji: "sora", Meaning: "sky"}
	kawa   = vocab.Item{Native: "かわ", Romaji: "kawa", Meaning: "river"}
	hana   = vocab.Item{Native: "はな", Romaji: "hana", Meaning: "flower"}
	terebi = vocab.Item{Native: "テレビ", Romaji: "terebi", Meaning: "television"}
)

// stubGenerator returns fixed items and records requests.
type stubGenerator struct {
	mu    sync.Mutex
	items []vocab.Item
	err   error
	reqs  []wordgen.Request
}

func (g *stubGenerator) Generate(_ context.Context, req wordgen.Request) ([]vocab.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	if g.err != nil {
		return nil, g.err
	}
	return append([]vocab.Item(nil), g.items...), nil
}

// manualClock is advanced explicitly by tests.
type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	orch  *Orchestrator
	gen   *stubGenerator
	clock *manualClock
	sched *srs.Scheduler
	hist  *history.History
	eval  *achievements.Evaluator
}

func newFixture(t *testing.T, items ...vocab.Item) *fixture {
	t.Helper()
	f := &fixture{
		gen:   &stubGenerator{items: items},
		clock: &manualClock{now: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)},
		sched: srs.NewScheduler(nil, nil, nil),
		hist:  history.New(nil, nil, nil),
		eval:  achievements.NewEvaluator(nil, nil, nil, nil),
	}
	f.orch = New(Deps{
		Generator:    f.gen,
		Scheduler:    f.sched,
		History:      f.hist,
		Achievements: f.eval,
		Clock:        f.clock,
	})
	return f
}

func hiragana(t *testing.T) kana.Category {
	t.Helper()
	cat, err := kana.CategoryByID("hiragana")
	if err != nil {
		t.Fatalf("CategoryByID: %v", err)
	}
	return cat
}

func (f *fixture) start(t *testing.T, cfg Config) {
	t.Helper()
	if err := f.orch.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := f.orch.Start(context.Background(), cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

// answer submits text and advances past the feedback delay.
func (f *fixture) answer(t *testing.T, text string) Answer {
	t.Helper()
	a, ok := f.orch.SubmitAnswer(context.Background(), text)
	if !ok {
		t.Fatalf("SubmitAnswer(%q) rejected in state %s", text, f.orch.State())
	}
	f.clock.Advance(FeedbackDelay)
	if !f.orch.Advance(context.Background(), a.Token) {
		t.Fatalf("Advance rejected fresh token")
	}
	return a
}

func TestStart_EntersActive(t *testing.T) {
	f := newFixture(t, neko, inu, yama)
	f.start(t, Config{Category: hiragana(t), Difficulty: scoring.DifficultyMedium, WordCount: 3})

	snap := f.orch.Snapshot()
	if snap.State != StateActive {
		t.Fatalf("state = %s, want active", snap.State)
	}
	if snap.Position != 0 || snap.Score != 0 || snap.Streak != 0 || snap.Multiplier != 1.0 {
		t.Errorf("unexpected fresh snapshot: %+v", snap)
	}
	if snap.QueueLen != 3 || !snap.HasItem || snap.Current != neko {
		t.Errorf("unexpected queue: len=%d current=%+v", snap.QueueLen, snap.Current)
	}
	if snap.SessionID == "" {
		t.Error("expected session id")
	}

	req := f.gen.reqs[0]
	if req.Charset.Open() || !req.Charset.Contains('ね') {
		t.Error("expected hiragana charset in request")
	}
}

func TestStart_WordCountLimitsQueue(t *testing.T) {
	f := newFixture(t, neko, inu, yama, sora)
	f.start(t, Config{Category: hiragana(t), WordCount: 2})
	if got := f.orch.Snapshot().QueueLen; got != 2 {
		t.Errorf("QueueLen = %d, want 2", got)
	}
}

func TestStart_NoWords(t *testing.T) {
	for _, endless := range []bool{false, true} {
		f := newFixture(t)
		f.gen.err = wordgen.ErrEmpty
		f.orch.Configure()

		err := f.orch.Start(context.Background(), Config{Category: hiragana(t), Endless: endless, WordCount: 5})
		if !errors.Is(err, ErrNoWords) {
			t.Fatalf("endless=%v: err = %v, want ErrNoWords", endless, err)
		}
		snap := f.orch.Snapshot()
		if snap.State != StateConfiguring {
			t.Errorf("endless=%v: state = %s, want configuring", endless, snap.State)
		}
		if snap.LastError != NoWordsMessage {
			t.Errorf("endless=%v: LastError = %q", endless, snap.LastError)
		}
	}
}

func TestStart_InvalidWhileActive(t *testing.T) {
	f := newFixture(t, neko)
	f.start(t, Config{Category: hiragana(t)})
	if err := f.orch.Start(context.Background(), Config{Category: hiragana(t)}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestStart_PriorityHintsFilteredToCharset(t *testing.T) {
	f := newFixture(t, neko)
	f.hist.Append(context.Background(), history.Result{
		ID:        "old",
		Struggled: []vocab.Item{terebi, terebi, neko},
	})

	f.start(t, Config{Category: hiragana(t)})

	hints := f.gen.reqs[0].Priority
	if len(hints) != 2 || hints[0] != 'ね' || hints[1] != 'こ' {
		t.Errorf("Priority = %q, want only hiragana weak characters", string(hints))
	}
}

func TestBeginStart_StaleCompletionAfterExit(t *testing.T) {
	f := newFixture(t, neko)
	f.orch.Configure()
	_, tok, err := f.orch.BeginStart(Config{Category: hiragana(t)})
	if err != nil {
		t.Fatalf("BeginStart: %v", err)
	}
	if f.orch.State() != StateLoading {
		t.Fatalf("state = %s, want loading", f.orch.State())
	}

	f.orch.Exit()
	err = f.orch.CompleteStart(tok, []vocab.Item{neko}, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
	if f.orch.State() != StateIdle {
		t.Errorf("state = %s, want idle", f.orch.State())
	}
}

func TestSubmitAnswer_IdempotentWhileFeedbackPending(t *testing.T) {
	f := newFixture(t, neko, inu)
	f.start(t, Config{Category: hiragana(t)})

	a, ok := f.orch.SubmitAnswer(context.Background(), "  NEKO ")
	if !ok || !a.Correct() {
		t.Fatalf("expected correct answer, got %+v ok=%v", a, ok)
	}
	if _, ok := f.orch.SubmitAnswer(context.Background(), "neko"); ok {
		t.Fatal("second submit while feedback pending should be a no-op")
	}
	snap := f.orch.Snapshot()
	if snap.Answered != 1 || snap.Score != a.Points {
		t.Errorf("double scored: %+v", snap)
	}
	if snap.Feedback != FeedbackCorrect || snap.Token != a.Token {
		t.Errorf("feedback = %s token = %d", snap.Feedback, snap.Token)
	}
}

func TestSubmitAnswer_RejectedOutsideSession(t *testing.T) {
	f := newFixture(t, neko)
	if _, ok := f.orch.SubmitAnswer(context.Background(), "neko"); ok {
		t.Error("submit in idle should be rejected")
	}
}

func TestAdvance_StaleToken(t *testing.T) {
	f := newFixture(t, neko, inu, yama)
	f.start(t, Config{Category: hiragana(t)})

	a, _ := f.orch.SubmitAnswer(context.Background(), "neko")
	if !f.orch.Advance(context.Background(), a.Token) {
		t.Fatal("fresh token rejected")
	}
	if f.orch.Advance(context.Background(), a.Token) {
		t.Error("already-advanced token accepted")
	}
	if got := f.orch.Snapshot().Position; got != 1 {
		t.Errorf("Position = %d, want 1", got)
	}
	if f.orch.Advance(context.Background(), 0) {
		t.Error("zero token accepted")
	}
}

func TestScenario_MissThenTwoHits(t *testing.T) {
	f := newFixture(t, neko, neko, neko)
	f.start(t, Config{Category: hiragana(t), WordCount: 3})

	var levels []int
	for _, text := range []string{"wrong", "neko", "neko"} {
		f.answer(t, text)
		r, _ := f.sched.Get(neko.Key())
		levels = append(levels, r.Level)
	}

	want := []int{0, 1, 2}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("levels = %v, want %v", levels, want)
		}
	}
	r, _ := f.sched.Get(neko.Key())
	if r.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, want 24h", r.Interval)
	}
}

func TestScenario_HardStreakPoints(t *testing.T) {
	items := []vocab.Item{neko, inu, yama, sora, neko, inu}
	f := newFixture(t, items...)
	f.start(t, Config{Category: hiragana(t), Difficulty: scoring.DifficultyHard, WordCount: 6})

	var last Answer
	for i, it := range items {
		// Feedback delay passes between items; answers themselves are instant.
		a, ok := f.orch.SubmitAnswer(context.Background(), it.Romaji)
		if !ok {
			t.Fatalf("answer %d rejected", i)
		}
		last = a
		if i == 0 && a.Points != 1500 {
			t.Errorf("first answer = %d, want 1500", a.Points)
		}
		if i < len(items)-1 {
			f.orch.Advance(context.Background(), a.Token)
		}
	}

	// Five prior hits give a 1.5 multiplier.
	if last.Points != 2250 {
		t.Errorf("sixth answer = %d, want 2250", last.Points)
	}
}

func TestSubmitAnswer_SlowAnswerEarnsBase(t *testing.T) {
	f := newFixture(t, neko)
	f.start(t, Config{Category: hiragana(t), Difficulty: scoring.DifficultyMedium})
	f.clock.Advance(30 * time.Second)
	a, _ := f.orch.SubmitAnswer(context.Background(), "neko")
	if a.Points != scoring.BasePoints {
		t.Errorf("Points = %d, want %d", a.Points, scoring.BasePoints)
	}
}

func TestScenario_EndlessCycles(t *testing.T) {
	f := newFixture(t, neko, inu, yama)
	f.start(t, Config{Category: hiragana(t), Endless: true, WordCount: 3})

	var positions []int
	for i := 0; i < 5; i++ {
		snap := f.orch.Snapshot()
		positions = append(positions, snap.Position)
		f.answer(t, snap.Current.Romaji)
	}

	want := []int{0, 1, 2, 0, 1}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("positions = %v, want %v", positions, want)
		}
	}
	if got := f.orch.State(); got != StateActive {
		t.Errorf("state = %s, want active", got)
	}
	if f.hist.Len() != 0 {
		t.Error("endless drill should not record a result until finished")
	}
}

func TestEndless_SingleItemRepeats(t *testing.T) {
	f := newFixture(t, neko)
	f.start(t, Config{Category: hiragana(t), Endless: true})
	for i := 0; i < 4; i++ {
		f.answer(t, "neko")
		if snap := f.orch.Snapshot(); snap.Position != 0 || snap.Current != neko {
			t.Fatalf("iteration %d: position %d item %+v", i, snap.Position, snap.Current)
		}
	}
}

func TestFinishEarly(t *testing.T) {
	f := newFixture(t, neko, inu)
	f.start(t, Config{Category: hiragana(t), Endless: true})

	f.answer(t, "neko")
	f.answer(t, "nope")
	f.answer(t, "neko")

	res, ok := f.orch.FinishEarly(context.Background())
	if !ok {
		t.Fatal("FinishEarly rejected")
	}
	if res.Answered != 3 || res.Correct != 2 || len(res.Struggled) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if f.orch.State() != StateFinished || f.hist.Len() != 1 {
		t.Errorf("state = %s history = %d", f.orch.State(), f.hist.Len())
	}
}

func TestFinishEarly_NoAnswersActsLikeExit(t *testing.T) {
	f := newFixture(t, neko)
	f.start(t, Config{Category: hiragana(t), Endless: true})
	if _, ok := f.orch.FinishEarly(context.Background()); ok {
		t.Error("expected no result without answers")
	}
	if f.orch.State() != StateIdle || f.hist.Len() != 0 {
		t.Errorf("state = %s history = %d", f.orch.State(), f.hist.Len())
	}
}

func TestFixedSession_FinishesAndRecords(t *testing.T) {
	f := newFixture(t, neko, inu)
	f.start(t, Config{Category: hiragana(t), Difficulty: scoring.DifficultyEasy, WordCount: 2})

	f.answer(t, "neko")
	f.answer(t, "wrong")

	snap := f.orch.Snapshot()
	if snap.State != StateFinished {
		t.Fatalf("state = %s, want finished", snap.State)
	}
	res := snap.Result
	if res == nil {
		t.Fatal("expected result in snapshot")
	}
	if res.Category != "hiragana" || res.Difficulty != scoring.DifficultyEasy {
		t.Errorf("unexpected result metadata: %+v", res)
	}
	if res.Accuracy != 50 || res.Answered != 2 || res.MaxStreak != 1 {
		t.Errorf("unexpected result stats: %+v", res)
	}
	if len(res.Struggled) != 1 || res.Struggled[0] != inu {
		t.Errorf("Struggled = %+v", res.Struggled)
	}
	if res.Duration != 2*FeedbackDelay {
		t.Errorf("Duration = %v", res.Duration)
	}

	if f.hist.Len() != 1 {
		t.Fatalf("history len = %d, want 1", f.hist.Len())
	}
	if !f.eval.IsUnlocked("first-session") {
		t.Error("expected first-session achievement")
	}
	found := false
	for _, a := range snap.Unlocked {
		if a.ID == "first-session" {
			found = true
		}
	}
	if !found {
		t.Errorf("snapshot Unlocked = %+v", snap.Unlocked)
	}
}

func TestScenario_ReviewIsFixedLength(t *testing.T) {
	f := newFixture(t)
	due := []vocab.Item{neko, inu, yama, sora}

	if err := f.orch.StartReview(due, scoring.DifficultyMedium); err != nil {
		t.Fatalf("StartReview: %v", err)
	}
	snap := f.orch.Snapshot()
	if snap.State != StateReviewActive || !snap.Review || snap.Endless || snap.QueueLen != 4 {
		t.Fatalf("unexpected review snapshot: %+v", snap)
	}

	for i := 0; i < 4; i++ {
		f.answer(t, f.orch.Snapshot().Current.Romaji)
	}
	snap = f.orch.Snapshot()
	if snap.State != StateFinished {
		t.Fatalf("state = %s, want finished after 4", snap.State)
	}
	if !snap.Result.Review || snap.Result.Answered != 4 || snap.Result.Category != ReviewCategory {
		t.Errorf("unexpected review result: %+v", snap.Result)
	}
	if len(f.gen.reqs) != 0 {
		t.Error("review must not call the generator")
	}
}

func TestStartReview_Empty(t *testing.T) {
	f := newFixture(t)
	if err := f.orch.StartReview(nil, scoring.DifficultyMedium); !errors.Is(err, ErrNoDueItems) {
		t.Errorf("err = %v, want ErrNoDueItems", err)
	}
	if f.orch.State() != StateIdle {
		t.Errorf("state = %s", f.orch.State())
	}
}

func TestReviewItems_FromScheduler(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sched.RecordAnswer(ctx, neko, false, f.clock.Now())
	f.sched.RecordAnswer(ctx, inu, true, f.clock.Now())

	f.clock.Advance(10 * time.Minute)
	items := f.orch.ReviewItems()
	if len(items) != 1 || items[0] != neko {
		t.Errorf("ReviewItems = %+v, want [neko]", items)
	}
}

func TestExit_DiscardsSession(t *testing.T) {
	f := newFixture(t, neko, inu)
	f.start(t, Config{Category: hiragana(t), WordCount: 2})

	a, _ := f.orch.SubmitAnswer(context.Background(), "neko")
	f.orch.Exit()

	if f.orch.Advance(context.Background(), a.Token) {
		t.Error("token from exited session accepted")
	}
	if f.orch.SetCompliment(a.Token, "late") {
		t.Error("compliment for exited session accepted")
	}
	snap := f.orch.Snapshot()
	if snap.State != StateIdle || snap.HasItem || snap.Result != nil {
		t.Errorf("unexpected snapshot after exit: %+v", snap)
	}
	if f.hist.Len() != 0 {
		t.Error("abandoned session must not be recorded")
	}
	// The SRS commit happened at submission and stays.
	if _, ok := f.sched.Get(neko.Key()); !ok {
		t.Error("SRS update from submitted answer should persist")
	}
}

func TestSetCompliment(t *testing.T) {
	f := newFixture(t, neko, inu)
	f.start(t, Config{Category: hiragana(t)})

	a, _ := f.orch.SubmitAnswer(context.Background(), "neko")
	if !f.orch.SetCompliment(a.Token, "Sugoi!") {
		t.Fatal("compliment rejected")
	}
	if got := f.orch.Snapshot().Compliment; got != "Sugoi!" {
		t.Errorf("Compliment = %q", got)
	}

	f.orch.Advance(context.Background(), a.Token)
	if f.orch.SetCompliment(a.Token, "late") {
		t.Error("compliment after advance accepted")
	}
	if got := f.orch.Snapshot().Compliment; got != "" {
		t.Errorf("compliment should clear on advance, got %q", got)
	}
}

func TestConfigure_InvalidWhileActive(t *testing.T) {
	f := newFixture(t, neko)
	f.start(t, Config{Category: hiragana(t)})
	if err := f.orch.Configure(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestOrchestrator_WithoutPersistence(t *testing.T) {
	o := New(Deps{Generator: &stubGenerator{items: []vocab.Item{neko}}})
	if err := o.Start(context.Background(), Config{Category: hiragana(t), WordCount: 1}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	a, _ := o.SubmitAnswer(context.Background(), "neko")
	o.Advance(context.Background(), a.Token)
	if snap := o.Snapshot(); snap.State != StateFinished || snap.Result == nil {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestAchievements_UnlockOnSRSChange(t *testing.T) {
	f := newFixture(t, neko, inu, yama, sora, kawa, hana)
	f.start(t, Config{Category: hiragana(t), WordCount: 6})

	var fromAnswers []string
	for _, it := range []vocab.Item{neko, inu, yama, sora, kawa} {
		a := f.answer(t, it.Romaji)
		for _, u := range a.Unlocked {
			fromAnswers = append(fromAnswers, u.ID)
		}
	}
	if !f.eval.IsUnlocked("first-steps") {
		t.Fatal("first-steps should unlock once five words reach level 1")
	}
	if len(fromAnswers) != 1 || fromAnswers[0] != "first-steps" {
		t.Errorf("unlocks reported by answers = %v, want [first-steps]", fromAnswers)
	}

	f.orch.Exit()
	if !f.eval.IsUnlocked("first-steps") {
		t.Error("unlock should survive exiting the drill")
	}
	if f.hist.Len() != 0 {
		t.Errorf("history len = %d, exit must not record a result", f.hist.Len())
	}
}

func TestAchievements_EvaluatedWithoutHistory(t *testing.T) {
	eval := achievements.NewEvaluator(nil, nil, nil, nil)
	o := New(Deps{
		Generator:    &stubGenerator{items: []vocab.Item{neko, inu, yama, sora, kawa}},
		Scheduler:    srs.NewScheduler(nil, nil, nil),
		Achievements: eval,
	})
	if err := o.Start(context.Background(), Config{Category: hiragana(t), WordCount: 5}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, text := range []string{"neko", "inu", "yama", "sora", "kawa"} {
		a, ok := o.SubmitAnswer(context.Background(), text)
		if !ok {
			t.Fatalf("SubmitAnswer(%q) rejected", text)
		}
		o.Advance(context.Background(), a.Token)
	}
	if !eval.IsUnlocked("first-steps") {
		t.Error("SRS rules should be evaluated even with no history")
	}
	if snap := o.Snapshot(); len(snap.Unlocked) != 1 || snap.Unlocked[0].ID != "first-steps" {
		t.Errorf("summary unlocks = %+v, want the mid-session unlock", snap.Unlocked)
	}
}
