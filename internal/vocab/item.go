// Package vocab defines the vocabulary item shared by the drill engine.
package vocab

import "strings"

// Item is a single vocabulary word.
type Item struct {
	Native  string `json:"native"`
	Romaji  string `json:"romaji"`
	Meaning string `json:"meaning"`
}

// Key returns the identity key used for SRS records and struggle counts.
// Two items that render identically in native script share a key.
func (it Item) Key() string {
	return strings.TrimSpace(it.Native)
}

// Matches reports whether answer equals the item's romanization,
// ignoring surrounding whitespace and case.
func (it Item) Matches(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(it.Romaji))
}
