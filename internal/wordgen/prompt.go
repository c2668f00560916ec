package wordgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/scoring"
)

const systemPrompt = `You are a Japanese teacher writing vocabulary drills for beginners learning to read kana.

Rules:
- Generate real, common Japanese words. Never invent words.
- Never use Latin letters in the native form. Use kanji only when the allowed characters are "Any".
- When an allowed character list is given, every character of every word must come from that list. Drop a word rather than break this rule.
- Give the romaji in lowercase Hepburn without spaces, hyphens or macrons (write long vowels out, e.g. "okaasan").
- Give a short English meaning of one to four words.
- Do not repeat a word in the list.
- Prefer words that use the priority characters when they are given.`

// buildUserMessage constructs the user message from a Request and Config limits.
func buildUserMessage(req Request, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", req.Category.Name)
	if req.Category.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", req.Category.Description)
	}
	fmt.Fprintf(&b, "Script: %s\n", scriptLabel(req.Category.Script))
	fmt.Fprintf(&b, "Difficulty: %s\n", difficultyGuide(req.Difficulty))
	fmt.Fprintf(&b, "Number of words: %d\n", req.Count)

	if req.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	}

	b.WriteString("\nAllowed characters:\n")
	if req.Charset.Open() {
		b.WriteString("Any")
	} else {
		b.WriteString(string(kana.SortedRunes(req.Charset)))
	}

	b.WriteString("\n\nPriority characters (the learner struggles with these):\n")
	b.WriteString(buildPriority(req.Priority, cfg.MaxPriority))

	return b.String()
}

func scriptLabel(s kana.Script) string {
	if s == "" {
		return "hiragana or katakana"
	}
	return s.DisplayName()
}

func difficultyGuide(d scoring.Difficulty) string {
	switch d {
	case scoring.DifficultyEasy:
		return "easy (two or three characters, everyday nouns)"
	case scoring.DifficultyHard:
		return "hard (five or more characters, may use small kana and voiced marks)"
	default:
		return "medium (three or four characters)"
	}
}

// buildPriority formats priority characters for the prompt, respecting the
// max limit. Returns "None" if there are none.
func buildPriority(priority []rune, max int) string {
	if len(priority) == 0 {
		return "None"
	}
	if max > 0 && len(priority) > max {
		priority = priority[:max]
	}
	parts := make([]string, len(priority))
	for i, r := range priority {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
