package drill

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/kotoba/internal/drill"
	"github.com/abhisek/kotoba/internal/encourage"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/screens/summary"
	"github.com/abhisek/kotoba/internal/ui/components"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/wordgen"
)

// generateTimeout bounds one word-generation call including retries.
const generateTimeout = 60 * time.Second

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// Encourager produces an encouragement line asynchronously. It reports
// false when the request could not be queued.
type Encourager interface {
	Request(ctx context.Context, req encourage.Request, cb func(string)) bool
}

// Deps are the collaborators a drill screen needs.
type Deps struct {
	Orchestrator *engine.Orchestrator
	Generator    wordgen.Generator
	Encourager   Encourager
	Learner      string
	Logger       *slog.Logger
}

// DrillScreen runs one drill or review on top of the orchestrator.
type DrillScreen struct {
	deps    Deps
	cfg     engine.Config
	review  bool
	input   components.TextInput
	frame   int

	snap        engine.Snapshot
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.EscHandler = (*DrillScreen)(nil)

// New creates a drill screen for cfg.
func New(deps Deps, cfg engine.Config) *DrillScreen {
	return newScreen(deps, cfg, false)
}

// NewReview creates a screen that reviews the items currently due.
func NewReview(deps Deps, cfg engine.Config) *DrillScreen {
	return newScreen(deps, cfg, true)
}

func newScreen(deps Deps, cfg engine.Config, review bool) *DrillScreen {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &DrillScreen{
		deps:   deps,
		cfg:    cfg,
		review: review,
		input:  newInput(),
	}
}

func newInput() components.TextInput {
	return components.NewTextInput("type the romaji...", true, 40)
}

func (s *DrillScreen) Init() tea.Cmd {
	if s.review {
		return s.startReview()
	}
	return tea.Batch(s.beginLoad(), spinnerTick())
}

func (s *DrillScreen) Title() string {
	if s.review {
		return "Review"
	}
	if s.cfg.Category.Name != "" {
		return s.cfg.Category.Name
	}
	return "Drill"
}

// HandlesEsc is always true: leaving must go through Exit so pending
// loads and timers are invalidated.
func (s *DrillScreen) HandlesEsc() bool { return true }

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm && s.snap.Endless:
		return []layout.KeyHint{
			{Key: "F", Description: "Finish & save"},
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	case !s.snap.State.Running():
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case s.snap.Feedback != engine.FeedbackNone:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// beginLoad moves the orchestrator to Loading and starts generation.
func (s *DrillScreen) beginLoad() tea.Cmd {
	orch := s.deps.Orchestrator
	orch.Exit()
	req, tok, err := orch.BeginStart(s.cfg)
	s.refresh()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	gen := s.deps.Generator
	return func() tea.Msg {
		if gen == nil {
			return wordsReadyMsg{Token: tok, Err: wordgen.ErrEmpty}
		}
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		items, err := gen.Generate(ctx, req)
		return wordsReadyMsg{Token: tok, Items: items, Err: err}
	}
}

func (s *DrillScreen) startReview() tea.Cmd {
	orch := s.deps.Orchestrator
	orch.Exit()
	err := orch.StartReview(orch.ReviewItems(), s.cfg.Difficulty)
	s.refresh()
	switch {
	case errors.Is(err, engine.ErrNoDueItems):
		s.errMsg = "Nothing is due for review. Come back later!"
		return nil
	case err != nil:
		s.errMsg = err.Error()
		return nil
	}
	return s.input.Init()
}

func (s *DrillScreen) refresh() {
	s.snap = s.deps.Orchestrator.Snapshot()
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsReadyMsg:
		return s.handleWords(msg)

	case feedbackDoneMsg:
		return s, s.advance(msg.Token)

	case complimentMsg:
		if s.deps.Orchestrator.SetCompliment(msg.Token, msg.Text) {
			s.refresh()
		}
		return s, nil

	case spinnerTickMsg:
		if s.snap.State != engine.StateLoading {
			return s, nil
		}
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DrillScreen) handleWords(msg wordsReadyMsg) (screen.Screen, tea.Cmd) {
	err := s.deps.Orchestrator.CompleteStart(msg.Token, msg.Items, msg.Err)
	s.refresh()
	switch {
	case errors.Is(err, engine.ErrNoWords):
		s.deps.Logger.Debug("drill has no words", "category", s.cfg.Category.ID, "error", msg.Err)
		// Back to setup, which shows the orchestrator's last error.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case errors.Is(err, engine.ErrInvalidState):
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}
	return s, s.input.Init()
}

func (s *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, s.leave()
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, s.leave()
		case "f", "F":
			if s.snap.Endless {
				s.quitConfirm = false
				return s, s.finishEarly()
			}
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if !s.snap.State.Running() {
		if key == "esc" {
			return s, s.leave()
		}
		return s, nil
	}

	// Feedback showing: any key skips the rest of the delay.
	if s.snap.Feedback != engine.FeedbackNone {
		return s, s.advance(s.snap.Token)
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *DrillScreen) submit() tea.Cmd {
	text := s.input.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	ans, ok := s.deps.Orchestrator.SubmitAnswer(context.Background(), text)
	if !ok {
		return nil
	}
	s.input.Submit(ans.Correct())
	s.refresh()

	tok := ans.Token
	timer := tea.Tick(engine.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Token: tok}
	})
	return tea.Batch(timer, s.compliment(tok, encourage.Request{
		Correct: ans.Correct(),
		Name:    s.deps.Learner,
		Score:   s.snap.Score,
	}))
}

// compliment asks the encourager for a line and delivers it tagged with
// tok. Lines arriving after the feedback window are dropped.
func (s *DrillScreen) compliment(tok engine.Token, req encourage.Request) tea.Cmd {
	enc := s.deps.Encourager
	return func() tea.Msg {
		if enc == nil {
			return complimentMsg{Token: tok, Text: encourage.FallbackFor(req.Correct)}
		}
		ch := make(chan string, 1)
		if !enc.Request(context.Background(), req, func(text string) { ch <- text }) {
			return complimentMsg{Token: tok, Text: encourage.FallbackFor(req.Correct)}
		}
		select {
		case text := <-ch:
			return complimentMsg{Token: tok, Text: text}
		case <-time.After(engine.FeedbackDelay):
			return nil
		}
	}
}

// advance moves past the feedback for tok. Stale tokens are ignored.
func (s *DrillScreen) advance(tok engine.Token) tea.Cmd {
	if !s.deps.Orchestrator.Advance(context.Background(), tok) {
		return nil
	}
	s.refresh()
	if s.snap.State == engine.StateFinished {
		return s.showSummary()
	}
	s.input.Reset()
	return s.input.Init()
}

func (s *DrillScreen) finishEarly() tea.Cmd {
	if _, ok := s.deps.Orchestrator.FinishEarly(context.Background()); !ok {
		s.refresh()
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.refresh()
	return s.showSummary()
}

func (s *DrillScreen) showSummary() tea.Cmd {
	if s.snap.Result == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := summary.New(*s.snap.Result, s.snap.Unlocked)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}

// leave abandons the drill without recording a result.
func (s *DrillScreen) leave() tea.Cmd {
	s.deps.Orchestrator.Exit()
	s.refresh()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *DrillScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quitConfirm:
		return renderQuitConfirm(width, s.snap.Endless)
	case s.snap.State == engine.StateLoading:
		return renderLoading(width, spinnerFrames[s.frame])
	case !s.snap.State.Running() || !s.snap.HasItem:
		return ""
	case s.snap.Feedback != engine.FeedbackNone:
		return s.renderFeedback(width)
	}
	return s.renderItem(width)
}
