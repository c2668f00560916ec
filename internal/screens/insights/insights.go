// Package insights shows mastery statistics and the weakness ranking.
package insights

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kotoba/internal/analytics"
	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/router"
	"github.com/abhisek/kotoba/internal/screen"
	"github.com/abhisek/kotoba/internal/srs"
	"github.com/abhisek/kotoba/internal/ui/components"
	"github.com/abhisek/kotoba/internal/ui/layout"
	"github.com/abhisek/kotoba/internal/ui/theme"
)

// Limits for each ranking shown.
const (
	maxItems   = 8
	maxChars   = 10
	maxGroups  = 6
	maxLeeches = 5
)

const (
	tabOverview = iota
	tabWeakSpots
	numTabs
)

// Deps are the data sources the screen reads.
type Deps struct {
	Records interface{ Records() []srs.Record }
	Results interface{ Results() []history.Result }
	Clock   srs.Clock
}

type insightsLoadedMsg struct {
	Mastery analytics.MasteryStats
	Summary analytics.Summary
	Report  analytics.Report
	Leeches []srs.Record
}

// InsightsScreen renders analytics over history and the SRS table.
type InsightsScreen struct {
	deps   Deps
	data   insightsLoadedMsg
	tab    int
	loaded bool
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates a new InsightsScreen.
func New(deps Deps) *InsightsScreen {
	if deps.Clock == nil {
		deps.Clock = srs.SystemClock{}
	}
	return &InsightsScreen{deps: deps}
}

func (s *InsightsScreen) Init() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		var records []srs.Record
		if deps.Records != nil {
			records = deps.Records.Records()
		}
		var results []history.Result
		if deps.Results != nil {
			results = deps.Results.Results()
		}
		return insightsLoadedMsg{
			Mastery: analytics.Mastery(records, deps.Clock.Now()),
			Summary: analytics.Summarize(results),
			Report:  analytics.Weaknesses(results, kana.GroupOf),
			Leeches: analytics.Leeches(records, maxLeeches),
		}
	}
}

func (s *InsightsScreen) Title() string {
	return "Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch view"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		s.data = msg
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.tab = (s.tab + 1) % numTabs
		case "shift+tab", "left", "h":
			s.tab = (s.tab - 1 + numTabs) % numTabs
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(width, theme.TextDim, "\n\n  Crunching numbers...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTabs(width, s.tab))
	b.WriteString("\n\n")

	if s.tab == tabOverview {
		b.WriteString(s.renderOverview(width))
	} else {
		b.WriteString(s.renderWeakSpots(width))
	}
	return b.String()
}

func renderTabs(width, active int) string {
	labels := []string{"Overview", "Weak spots"}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("[ " + l + " ]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + l + "  ")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   "))
}

func (s *InsightsScreen) renderOverview(width int) string {
	sum := s.data.Summary
	m := s.data.Mastery

	var b strings.Builder
	b.WriteString(layout.Section(width, "Sessions"))
	b.WriteString("\n")
	if sum.Sessions == 0 {
		b.WriteString(layout.Center(width, theme.TextDim, "No drills recorded yet."))
	} else {
		b.WriteString(layout.Center(width, theme.Text, fmt.Sprintf(
			"%d drills  ·  %d/%d correct  ·  %.0f%% avg accuracy",
			sum.Sessions, sum.Correct, sum.Answered, sum.AverageAccuracy)))
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.ArcadeYellow, fmt.Sprintf(
			"best %d pts  ·  total %d pts  ·  best streak %d",
			sum.BestScore, sum.TotalScore, sum.BestStreak)))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Section(width, "Mastery"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, theme.Text, fmt.Sprintf(
		"%d words  ·  %d learned  ·  %d strong  ·  %d mastered  ·  %d due",
		m.Total, m.Learned, m.Strong, m.Mastered, m.Due)))
	b.WriteString("\n\n")

	if m.Total == 0 {
		return b.String()
	}
	barWidth := min(max(width-24, 24), 56)
	var bars strings.Builder
	for lvl, n := range m.ByLevel {
		bar := components.ProgressBar{
			Label:      levelLabel(lvl),
			LabelWidth: 14,
			Percent:    float64(n) / float64(m.Total),
			Width:      barWidth,
		}
		fmt.Fprintf(&bars, "%s %3d\n", bar.View(), n)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars.String()))
	return b.String()
}

func levelLabel(lvl int) string {
	if lvl == srs.MaxLevel {
		return "Mastered"
	}
	if lvl == 0 {
		return "New"
	}
	return fmt.Sprintf("Level %d (%s)", lvl, shortInterval(srs.IntervalFor(lvl)))
}

func shortInterval(d time.Duration) string {
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

func (s *InsightsScreen) renderWeakSpots(width int) string {
	r := s.data.Report

	var b strings.Builder
	b.WriteString(layout.Section(width, "Most missed words"))
	b.WriteString("\n")
	if len(r.Items) == 0 {
		b.WriteString(layout.Center(width, theme.TextDim, "No misses yet. Keep it up!"))
		b.WriteString("\n")
		return b.String()
	}
	for _, ic := range r.Items[:min(len(r.Items), maxItems)] {
		b.WriteString(layout.Center(width, theme.Text, fmt.Sprintf(
			"%-8s %-12s %-16s ×%d", ic.Item.Native, ic.Item.Romaji, ic.Item.Meaning, ic.Count)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(layout.Section(width, "Tricky characters"))
	b.WriteString("\n")
	chars := make([]string, 0, maxChars)
	for _, cc := range r.Chars[:min(len(r.Chars), maxChars)] {
		chars = append(chars, fmt.Sprintf("%c×%d", cc.Char, cc.Count))
	}
	b.WriteString(layout.Center(width, theme.Accent, strings.Join(chars, "  ")))
	b.WriteString("\n\n")

	b.WriteString(layout.Section(width, "Character groups"))
	b.WriteString("\n")
	groups := make([]string, 0, maxGroups)
	for _, gc := range r.Groups[:min(len(r.Groups), maxGroups)] {
		groups = append(groups, fmt.Sprintf("%s ×%d", kana.GroupName(gc.Group), gc.Count))
	}
	b.WriteString(layout.Center(width, theme.Secondary, strings.Join(groups, "  ·  ")))
	b.WriteString("\n")

	if len(s.data.Leeches) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Section(width, "Leeches"))
		b.WriteString("\n")
		for _, rec := range s.data.Leeches {
			b.WriteString(layout.Center(width, theme.Error, fmt.Sprintf(
				"%-8s missed %d, right %d, level %d",
				rec.Item.Native, rec.TimesIncorrect, rec.TimesCorrect, rec.Level)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
