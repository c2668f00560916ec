// Package analytics derives weakness rankings and mastery statistics
// from session history and the SRS table.
package analytics

import (
	"sort"
	"unicode"

	"github.com/abhisek/kotoba/internal/history"
	"github.com/abhisek/kotoba/internal/kana"
	"github.com/abhisek/kotoba/internal/vocab"
)

// TopStruggledLimit caps the struggled-items ranking.
const TopStruggledLimit = 10

// ItemCount is a vocabulary item with its fail count.
type ItemCount struct {
	Item  vocab.Item
	Count int
}

// CharCount is a character with its fail count.
type CharCount struct {
	Char  rune
	Count int
}

// GroupCount is a character group with its fail count.
type GroupCount struct {
	Group string
	Count int
}

// Report ranks failures by item, character and group. Every ranking is
// sorted by count descending, ties in first-encounter order.
type Report struct {
	Items  []ItemCount
	Chars  []CharCount
	Groups []GroupCount
}

// GroupFunc maps a character to its group.
type GroupFunc func(rune) (string, bool)

// ranker counts keys while remembering first-encounter order.
type ranker[K comparable] struct {
	order  []K
	counts map[K]int
}

func newRanker[K comparable]() *ranker[K] {
	return &ranker[K]{counts: make(map[K]int)}
}

func (r *ranker[K]) add(k K) {
	if _, seen := r.counts[k]; !seen {
		r.order = append(r.order, k)
	}
	r.counts[k]++
}

// ranked returns keys by count descending. The sort is stable over
// encounter order.
func (r *ranker[K]) ranked() []K {
	out := make([]K, len(r.order))
	copy(out, r.order)
	sort.SliceStable(out, func(i, j int) bool {
		return r.counts[out[i]] > r.counts[out[j]]
	})
	return out
}

// Weaknesses builds the failure report from history. results are read
// in stored order (newest first). groupOf may be nil to skip grouping.
func Weaknesses(results []history.Result, groupOf GroupFunc) Report {
	items := newRanker[string]()
	chars := newRanker[rune]()
	groups := newRanker[string]()
	firstItem := make(map[string]vocab.Item)

	for _, res := range results {
		for _, it := range res.Struggled {
			key := it.Key()
			if key == "" {
				continue
			}
			if _, ok := firstItem[key]; !ok {
				firstItem[key] = it
			}
			items.add(key)

			for _, ch := range key {
				if unicode.IsSpace(ch) {
					continue
				}
				chars.add(ch)
				if groupOf == nil {
					continue
				}
				if g, ok := groupOf(ch); ok {
					groups.add(g)
				}
			}
		}
	}

	var rep Report
	for _, k := range items.ranked() {
		rep.Items = append(rep.Items, ItemCount{Item: firstItem[k], Count: items.counts[k]})
	}
	for _, ch := range chars.ranked() {
		rep.Chars = append(rep.Chars, CharCount{Char: ch, Count: chars.counts[ch]})
	}
	for _, g := range groups.ranked() {
		rep.Groups = append(rep.Groups, GroupCount{Group: g, Count: groups.counts[g]})
	}
	return rep
}

// TopStruggled returns at most TopStruggledLimit items.
func (r Report) TopStruggled() []ItemCount {
	if len(r.Items) <= TopStruggledLimit {
		return r.Items
	}
	return r.Items[:TopStruggledLimit]
}

// PriorityHints returns up to limit weak characters that belong to
// charset. A nil charset accepts every character.
func PriorityHints(r Report, charset kana.Charset, limit int) []rune {
	var out []rune
	for _, cc := range r.Chars {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !charset.Contains(cc.Char) {
			continue
		}
		out = append(out, cc.Char)
	}
	return out
}
