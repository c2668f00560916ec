package kana

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate checks the catalog's structural integrity.
// It returns an error describing all problems found.
func Validate() error {
	return validateCatalog(c)
}

func validateCatalog(ct *catalog) error {
	var errs []error

	seenRow := make(map[string]bool, len(ct.rows))
	for _, r := range ct.rows {
		if seenRow[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate row ID %q", r.ID))
		}
		seenRow[r.ID] = true

		for _, text := range []string{r.hiragana, r.katakana} {
			if text == "" {
				continue
			}
			if n := utf8.RuneCountInString(text); n != len(r.romaji) {
				errs = append(errs, fmt.Errorf("row %q: %d characters but %d romaji", r.ID, n, len(r.romaji)))
			}
		}
	}

	for script, chars := range ct.chars {
		seen := make(map[rune]bool, len(chars))
		for _, k := range chars {
			if seen[k.Rune] {
				errs = append(errs, fmt.Errorf("%s: duplicate character %q", script, k.Rune))
			}
			seen[k.Rune] = true
		}
	}

	seenCat := make(map[string]bool, len(ct.categories))
	for _, cat := range ct.categories {
		if seenCat[cat.ID] {
			errs = append(errs, fmt.Errorf("duplicate category ID %q", cat.ID))
		}
		seenCat[cat.ID] = true
		if cat.Closed && len(ct.chars[cat.Script]) == 0 {
			errs = append(errs, fmt.Errorf("category %q is closed over empty script %q", cat.ID, cat.Script))
		}
	}

	return errors.Join(errs...)
}
