package wordgen

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/kotoba/internal/vocab"
)

const (
	maxNativeRunes = 12
	maxMeaningLen  = 80
)

// StructuralValidator checks that every field is present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(it *vocab.Item, _ Request) *ValidationError {
	switch {
	case strings.TrimSpace(it.Native) == "":
		return v.fail(it, "native is empty")
	case strings.TrimSpace(it.Romaji) == "":
		return v.fail(it, "romaji is empty")
	case strings.TrimSpace(it.Meaning) == "":
		return v.fail(it, "meaning is empty")
	case utf8.RuneCountInString(strings.TrimSpace(it.Native)) > maxNativeRunes:
		return v.fail(it, "native exceeds 12 characters")
	case len(it.Meaning) > maxMeaningLen:
		return v.fail(it, "meaning exceeds 80 characters")
	}
	return nil
}

func (v *StructuralValidator) fail(it *vocab.Item, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Item: it.Native, Message: msg}
}

// RomajiValidator rejects romanizations the learner could not type on
// a plain keyboard.
type RomajiValidator struct{}

func (v *RomajiValidator) Name() string { return "romaji" }

func (v *RomajiValidator) Validate(it *vocab.Item, _ Request) *ValidationError {
	for _, r := range strings.TrimSpace(it.Romaji) {
		if r >= utf8.RuneSelf {
			return &ValidationError{Validator: v.Name(), Item: it.Native, Message: "romaji is not ASCII"}
		}
	}
	return nil
}

// CharsetValidator drops items whose native text uses characters outside
// a closed category's charset. Open requests pass unchanged.
type CharsetValidator struct{}

func (v *CharsetValidator) Name() string { return "charset" }

func (v *CharsetValidator) Validate(it *vocab.Item, req Request) *ValidationError {
	if req.Charset.Allows(it.Native) {
		return nil
	}
	return &ValidationError{Validator: v.Name(), Item: it.Native, Message: "uses characters outside the category"}
}
