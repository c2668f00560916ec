// Package router keeps the stack of TUI screens. Screens navigate by
// returning one of the *Msg commands below; everything else goes to the
// screen on top.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kotoba/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. The root is never popped.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen, e.g. drill to summary.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg returns to the bottom screen and re-initializes it so it
// can refresh its counts.
type PopToRootMsg struct{}

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Pop() {
	if r.top() > 0 {
		r.stack = r.stack[:r.top()]
	}
}

// Replace swaps the top screen and returns the new screen's Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if r.top() < 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) PopToRoot() tea.Cmd {
	if r.top() < 0 {
		return nil
	}
	r.stack = r.stack[:1]
	return r.stack[0].Init()
}

// Active is the top screen, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if r.top() < 0 {
		return nil
	}
	return r.stack[r.top()]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and forwards the rest to the active
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	}

	if r.top() < 0 {
		return nil
	}
	next, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
