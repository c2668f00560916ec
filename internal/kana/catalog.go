package kana

import (
	"fmt"
	"sort"
)

// catalog holds the static character tables with precomputed indices.
type catalog struct {
	rows       []Row
	rowByID    map[string]*Row
	chars      map[Script][]Char
	byRune     map[rune]Char
	categories []Category
	byCategory map[string]*Category
	charsets   map[Script]Charset
}

// c is the package-level catalog, set by init() in seed.go.
var c *catalog

func buildCatalog(rows []Row, categories []Category) *catalog {
	ct := &catalog{
		rows:       rows,
		rowByID:    make(map[string]*Row, len(rows)),
		chars:      make(map[Script][]Char),
		byRune:     make(map[rune]Char),
		categories: categories,
		byCategory: make(map[string]*Category, len(categories)),
		charsets:   make(map[Script]Charset),
	}

	for i := range ct.rows {
		r := &ct.rows[i]
		ct.rowByID[r.ID] = r
		ct.addScript(r, ScriptHiragana, r.hiragana)
		ct.addScript(r, ScriptKatakana, r.katakana)
	}

	for i := range ct.categories {
		ct.byCategory[ct.categories[i].ID] = &ct.categories[i]
	}

	for script, chars := range ct.chars {
		ct.charsets[script] = NewCharset(chars)
	}
	return ct
}

func (ct *catalog) addScript(r *Row, script Script, text string) {
	i := 0
	for _, ch := range text {
		romaji := ""
		if i < len(r.romaji) {
			romaji = r.romaji[i]
		}
		k := Char{Rune: ch, Romaji: romaji, Script: script, Row: r.ID}
		ct.chars[script] = append(ct.chars[script], k)
		if _, dup := ct.byRune[ch]; !dup {
			ct.byRune[ch] = k
		}
		i++
	}
}

// Rows returns all character rows in table order.
func Rows() []Row {
	out := make([]Row, len(c.rows))
	copy(out, c.rows)
	return out
}

// RowByID returns the row with the given ID.
func RowByID(id string) (Row, bool) {
	r, ok := c.rowByID[id]
	if !ok {
		return Row{}, false
	}
	return *r, true
}

// Chars returns every character of a script in table order.
func Chars(s Script) []Char {
	out := make([]Char, len(c.chars[s]))
	copy(out, c.chars[s])
	return out
}

// Lookup returns the character entry for r.
func Lookup(r rune) (Char, bool) {
	k, ok := c.byRune[r]
	return k, ok
}

// GroupOf returns the row ID a character belongs to. Runes outside the
// kana tables (kanji, punctuation) have no group.
func GroupOf(r rune) (string, bool) {
	k, ok := c.byRune[r]
	if !ok {
		return "", false
	}
	return k.Row, true
}

// GroupName returns the display name for a row ID, or the ID itself
// when unknown.
func GroupName(id string) string {
	if r, ok := c.rowByID[id]; ok {
		return r.DisplayName + " (" + string(r.firstRune()) + ")"
	}
	return id
}

func (r *Row) firstRune() rune {
	for _, ch := range r.hiragana {
		return ch
	}
	for _, ch := range r.katakana {
		return ch
	}
	return '?'
}

// Categories returns all learning categories in display order.
func Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryByID returns the category with the given ID.
func CategoryByID(id string) (Category, error) {
	cat, ok := c.byCategory[id]
	if !ok {
		return Category{}, fmt.Errorf("unknown category %q", id)
	}
	return *cat, nil
}

// CharsetFor returns the allowed characters of a category. Open
// categories return a nil Charset.
func CharsetFor(cat Category) Charset {
	if !cat.Closed {
		return nil
	}
	return c.charsets[cat.Script]
}

// SortedRunes returns the members of cs in code point order.
func SortedRunes(cs Charset) []rune {
	out := make([]rune, 0, len(cs))
	for r := range cs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
