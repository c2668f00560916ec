package kana

import "strings"

// Script identifies a Japanese syllabary.
type Script string

const (
	ScriptHiragana Script = "hiragana"
	ScriptKatakana Script = "katakana"
)

// DisplayName returns a human-readable name for a script.
func (s Script) DisplayName() string {
	switch s {
	case ScriptHiragana:
		return "Hiragana"
	case ScriptKatakana:
		return "Katakana"
	default:
		return string(s)
	}
}

// Char is a single kana character with its romanization and row.
type Char struct {
	Rune   rune
	Romaji string
	Script Script
	Row    string
}

// Row is a group of related characters, e.g. the k-row か き く け こ.
type Row struct {
	ID          string
	DisplayName string
	hiragana    string
	katakana    string
	romaji      []string
}

// Category is a learning category the learner picks a drill from.
// Closed categories restrict generated words to a fixed character set.
type Category struct {
	ID          string
	Name        string
	Description string
	Script      Script
	Closed      bool
}

// Charset is the set of characters a closed category allows. A nil
// Charset is open and allows everything.
type Charset map[rune]struct{}

// NewCharset builds a Charset from the given characters.
func NewCharset(chars []Char) Charset {
	cs := make(Charset, len(chars))
	for _, c := range chars {
		cs[c.Rune] = struct{}{}
	}
	return cs
}

// Open reports whether the charset places no restriction on text.
func (cs Charset) Open() bool { return cs == nil }

// Contains reports whether r belongs to the set. Open charsets contain
// every rune.
func (cs Charset) Contains(r rune) bool {
	if cs == nil {
		return true
	}
	_, ok := cs[r]
	return ok
}

// Allows reports whether every non-space rune of s belongs to the set.
func (cs Charset) Allows(s string) bool {
	if cs == nil {
		return true
	}
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if r == ' ' || r == '　' {
			continue
		}
		if _, ok := cs[r]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of characters in the set.
func (cs Charset) Len() int { return len(cs) }
