// Package drill runs practice sessions: it fetches words, scores
// answers, commits SRS updates and records results.
package drill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kotoba/internal/achievements"
	"github.com/abhisek/kotoba/internal/analytics"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/vocab"
	"github.com/abhisek/kotoba/internal/wordgen"
)

// DefaultPriorityLimit caps weak-character hints sent to the generator.
const DefaultPriorityLimit = 8

// Deps are the collaborators an Orchestrator drives. Only Generator is
// required; nil Scheduler, History or Achievements skip that bookkeeping.
type Deps struct {
	Generator     wordgen.Generator
	Scheduler     *srs.Scheduler
	History       *history.History
	Achievements  *achievements.Evaluator
	Clock         srs.Clock
	GroupOf       analytics.GroupFunc
	PriorityLimit int
	Logger        *slog.Logger
}

// session is the transient state of one run. It is never persisted.
type session struct {
	id        string
	cfg       Config
	queue     []vocab.Item
	pos       int
	score     int
	feedback  Feedback
	token     Token
	itemShown time.Time
	startedAt time.Time
	tracker   scoring.Tracker
	endless   bool
	review    bool
	answered  int
	correct   int
	struggled []vocab.Item
	unlocked  []achievements.Achievement

	compliment string
	lastPoints int
	lastAnswer string
}

// Orchestrator is the drill state machine. All methods are safe for
// concurrent use.
type Orchestrator struct {
	deps Deps

	mu       sync.Mutex
	state    State
	cfg      Config
	sess     *session
	seq      Token
	loading  Token
	lastErr  string
	result   *history.Result
	unlocked []achievements.Achievement
}

// New creates an Orchestrator in the Idle state.
func New(deps Deps) *Orchestrator {
	if deps.Clock == nil {
		deps.Clock = srs.SystemClock{}
	}
	if deps.GroupOf == nil {
		deps.GroupOf = kana.GroupOf
	}
	if deps.PriorityLimit == 0 {
		deps.PriorityLimit = DefaultPriorityLimit
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Orchestrator{deps: deps}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Configure moves Idle or Finished to Configuring and clears the last
// error and result.
func (o *Orchestrator) Configure() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateIdle, StateFinished, StateConfiguring:
	default:
		return fmt.Errorf("%w: configure from %s", ErrInvalidState, o.state)
	}
	o.state = StateConfiguring
	o.lastErr = ""
	o.result = nil
	o.unlocked = nil
	return nil
}

// Start generates words for cfg and begins the drill. It blocks on the
// generator; UI callers use BeginStart and CompleteStart instead.
func (o *Orchestrator) Start(ctx context.Context, cfg Config) error {
	req, tok, err := o.BeginStart(cfg)
	if err != nil {
		return err
	}
	if o.deps.Generator == nil {
		return o.CompleteStart(tok, nil, wordgen.ErrEmpty)
	}
	items, genErr := o.deps.Generator.Generate(ctx, req)
	return o.CompleteStart(tok, items, genErr)
}

// BeginStart moves to Loading and returns the generation request the
// caller must run, plus a token for CompleteStart. Priority hints come
// from the weakness ranking, restricted to the category's charset.
func (o *Orchestrator) BeginStart(cfg Config) (wordgen.Request, Token, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateIdle, StateConfiguring, StateFinished:
	default:
		return wordgen.Request{}, 0, fmt.Errorf("%w: start from %s", ErrInvalidState, o.state)
	}

	charset := kana.CharsetFor(cfg.Category)
	req := wordgen.Request{
		Category:   cfg.Category,
		Charset:    charset,
		Difficulty: cfg.Difficulty,
		Topic:      cfg.Topic,
		Priority:   o.priorityHints(charset),
		Count:      cfg.WordCount,
	}

	o.cfg = cfg
	o.state = StateLoading
	o.lastErr = ""
	o.result = nil
	o.unlocked = nil
	o.sess = nil
	o.loading = o.nextToken()
	return req, o.loading, nil
}

func (o *Orchestrator) priorityHints(charset kana.Charset) []rune {
	if o.deps.History == nil {
		return nil
	}
	report := analytics.Weaknesses(o.deps.History.Results(), o.deps.GroupOf)
	return analytics.PriorityHints(report, charset, o.deps.PriorityLimit)
}

// CompleteStart finishes a load begun by BeginStart. A stale token (the
// learner exited or restarted meanwhile) is ignored and returns
// ErrInvalidState. Zero items return ErrNoWords and go back to
// Configuring with NoWordsMessage recorded.
func (o *Orchestrator) CompleteStart(tok Token, items []vocab.Item, genErr error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateLoading || tok != o.loading {
		return fmt.Errorf("%w: stale load", ErrInvalidState)
	}
	o.loading = 0

	if genErr != nil && !errors.Is(genErr, wordgen.ErrEmpty) {
		o.deps.Logger.Warn("word generation failed", "category", o.cfg.Category.ID, "error", genErr)
	}
	if len(items) == 0 {
		o.state = StateConfiguring
		o.lastErr = NoWordsMessage
		return ErrNoWords
	}

	if !o.cfg.Endless && o.cfg.WordCount > 0 && len(items) > o.cfg.WordCount {
		items = items[:o.cfg.WordCount]
	}
	o.begin(StateActive, o.cfg, items, o.cfg.Endless, false)
	return nil
}

// StartReview begins a fixed-length review of items without generation.
// It is allowed from Idle or Finished.
func (o *Orchestrator) StartReview(items []vocab.Item, d scoring.Difficulty) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case StateIdle, StateFinished:
	default:
		return fmt.Errorf("%w: review from %s", ErrInvalidState, o.state)
	}
	if len(items) == 0 {
		o.lastErr = "Nothing is due for review."
		return ErrNoDueItems
	}

	cfg := Config{
		Category:   kana.Category{ID: ReviewCategory, Name: "Review"},
		Difficulty: d,
		WordCount:  len(items),
	}
	o.cfg = cfg
	o.lastErr = ""
	o.result = nil
	o.unlocked = nil
	o.begin(StateReviewActive, cfg, append([]vocab.Item(nil), items...), false, true)
	return nil
}

// ReviewItems returns the items currently due, most overdue first.
func (o *Orchestrator) ReviewItems() []vocab.Item {
	if o.deps.Scheduler == nil {
		return nil
	}
	due := o.deps.Scheduler.DueItems(o.deps.Clock.Now())
	items := make([]vocab.Item, len(due))
	for i, r := range due {
		items[i] = r.Item
	}
	return items
}

func (o *Orchestrator) begin(state State, cfg Config, queue []vocab.Item, endless, review bool) {
	now := o.deps.Clock.Now()
	o.sess = &session{
		id:        uuid.New().String(),
		cfg:       cfg,
		queue:     queue,
		itemShown: now,
		startedAt: now,
		tracker:   scoring.NewTracker(),
		endless:   endless,
		review:    review,
	}
	o.state = state
}

// SubmitAnswer scores text against the current item. It is a no-op
// returning false outside Active/ReviewActive or while feedback for the
// current item is pending.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, text string) (Answer, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.sess
	if !o.state.Running() || s == nil || s.feedback != FeedbackNone {
		return Answer{}, false
	}

	now := o.deps.Clock.Now()
	item := s.queue[s.pos]
	correct := item.Matches(text)

	points := scoring.ComputePoints(now.Sub(s.itemShown), correct, s.cfg.Difficulty, s.tracker.Multiplier)
	s.tracker.Record(correct)
	s.score += points
	s.answered++
	if correct {
		s.correct++
		s.feedback = FeedbackCorrect
	} else {
		s.struggled = append(s.struggled, item)
		s.feedback = FeedbackIncorrect
	}
	s.lastPoints = points
	s.lastAnswer = text
	s.compliment = ""
	s.token = o.nextToken()

	var unlocked []achievements.Achievement
	if o.deps.Scheduler != nil {
		o.deps.Scheduler.RecordAnswer(ctx, item, correct, now)
		unlocked = o.evaluate(ctx, now)
		s.unlocked = append(s.unlocked, unlocked...)
	}

	return Answer{Item: item, Given: text, Feedback: s.feedback, Points: points, Token: s.token, Unlocked: unlocked}, true
}

// SetCompliment attaches encouragement text to the pending feedback
// identified by tok. It reports whether tok was still current.
func (o *Orchestrator) SetCompliment(tok Token, text string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.sess
	if s == nil || tok == 0 || s.token != tok || s.feedback == FeedbackNone {
		return false
	}
	s.compliment = text
	return true
}

// Advance applies the transition after the feedback delay. A stale token
// is discarded and returns false. When a fixed-length queue is exhausted
// the session finishes and its result is recorded.
func (o *Orchestrator) Advance(ctx context.Context, tok Token) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.sess
	if !o.state.Running() || s == nil || tok == 0 || s.token != tok || s.feedback == FeedbackNone {
		return false
	}

	s.token = 0
	s.pos++
	if s.pos >= len(s.queue) {
		if !s.endless || s.review {
			o.finish(ctx)
			return true
		}
		s.pos = 0
	}
	s.feedback = FeedbackNone
	s.compliment = ""
	s.itemShown = o.deps.Clock.Now()
	return true
}

// FinishEarly ends an endless drill and records its result as if the
// queue had run out. With no answers given it behaves like Exit.
func (o *Orchestrator) FinishEarly(ctx context.Context) (history.Result, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.state.Running() || o.sess == nil {
		return history.Result{}, false
	}
	if o.sess.answered == 0 {
		o.exitLocked()
		return history.Result{}, false
	}
	return o.finish(ctx), true
}

// finish records the session result and evaluates achievements.
func (o *Orchestrator) finish(ctx context.Context) history.Result {
	s := o.sess
	now := o.deps.Clock.Now()

	res := history.Result{
		ID:         s.id,
		Timestamp:  now,
		Category:   s.cfg.Category.ID,
		Difficulty: s.cfg.Difficulty,
		Score:      s.score,
		Accuracy:   history.AccuracyPercent(s.correct, s.answered),
		Answered:   s.answered,
		Correct:    s.correct,
		Struggled:  s.struggled,
		MaxStreak:  s.tracker.MaxStreak,
		Review:     s.review,
		Duration:   now.Sub(s.startedAt),
	}

	if o.deps.History != nil {
		o.deps.History.Append(ctx, res)
	}
	unlocked := append(s.unlocked, o.evaluate(ctx, now)...)

	o.deps.Logger.Info("drill finished",
		"session_id", res.ID,
		"category", res.Category,
		"score", res.Score,
		"answered", res.Answered,
		"accuracy", res.Accuracy,
		"review", res.Review,
	)

	o.result = &res
	o.unlocked = unlocked
	o.sess = nil
	o.state = StateFinished
	return res
}

// evaluate runs the achievement rules over the current history and SRS
// table. It is called after every mutation of either.
func (o *Orchestrator) evaluate(ctx context.Context, now time.Time) []achievements.Achievement {
	if o.deps.Achievements == nil {
		return nil
	}
	var in achievements.Inputs
	if o.deps.History != nil {
		in.History = o.deps.History.Results()
	}
	if o.deps.Scheduler != nil {
		in.Records = o.deps.Scheduler.Records()
	}
	return o.deps.Achievements.Evaluate(ctx, in, now)
}

// Exit abandons any session or load and returns to Idle. No result is
// recorded and pending tokens become stale.
func (o *Orchestrator) Exit() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.exitLocked()
}

func (o *Orchestrator) exitLocked() {
	o.sess = nil
	o.loading = 0
	o.state = StateIdle
	o.lastErr = ""
}

// Snapshot returns a copy of the presentation-relevant state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		State:     o.state,
		Config:    o.cfg,
		LastError: o.lastErr,
		Result:    o.result,
		Unlocked:  o.unlocked,
	}

	s := o.sess
	if s == nil {
		snap.Multiplier = 1.0
		return snap
	}
	snap.SessionID = s.id
	snap.Config = s.cfg
	snap.Position = s.pos
	snap.QueueLen = len(s.queue)
	if s.pos < len(s.queue) {
		snap.Current = s.queue[s.pos]
		snap.HasItem = true
	}
	snap.Feedback = s.feedback
	snap.Token = s.token
	snap.Score = s.score
	snap.Streak = s.tracker.Streak
	snap.Multiplier = s.tracker.Multiplier
	snap.MaxStreak = s.tracker.MaxStreak
	snap.Answered = s.answered
	snap.Correct = s.correct
	snap.Compliment = s.compliment
	snap.LastPoints = s.lastPoints
	snap.LastAnswer = s.lastAnswer
	snap.Endless = s.endless
	snap.Review = s.review
	snap.ItemShown = s.itemShown
	return snap
}

func (o *Orchestrator) nextToken() Token {
	o.seq++
	return o.seq
}
