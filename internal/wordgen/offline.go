package wordgen

import (
	"context"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/abhisek/kotoba/internal/scoring"
	"github.com/abhisek/kotoba/internal/vocab"
)

// OfflineGenerator serves words from a small built-in list. It is used
// when no LLM provider is configured.
type OfflineGenerator struct {
	words  []vocab.Item
	config Config
	rand   *rand.Rand
}

// NewOffline creates an OfflineGenerator over the built-in word list.
// A nil source uses a randomly seeded one.
func NewOffline(cfg Config, src rand.Source) *OfflineGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &OfflineGenerator{words: builtinWords, config: cfg, rand: rand.New(src)}
}

// Generate picks words the request's charset allows, preferring lengths
// that suit the difficulty.
func (g *OfflineGenerator) Generate(ctx context.Context, req Request) ([]vocab.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Count <= 0 {
		req.Count = g.config.DefaultCount
	}

	var fit, rest []vocab.Item
	for _, w := range g.words {
		it := w
		if !validItem(g.config.Validators, &it, req) {
			continue
		}
		if lengthFits(it, req.Difficulty) {
			fit = append(fit, it)
		} else {
			rest = append(rest, it)
		}
	}
	g.rand.Shuffle(len(fit), func(i, j int) { fit[i], fit[j] = fit[j], fit[i] })
	g.rand.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	items := append(fit, rest...)
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	if len(items) > req.Count {
		items = items[:req.Count]
	}
	return items, nil
}

func validItem(validators []Validator, it *vocab.Item, req Request) bool {
	for _, v := range validators {
		if v.Validate(it, req) != nil {
			return false
		}
	}
	return true
}

func lengthFits(it vocab.Item, d scoring.Difficulty) bool {
	n := utf8.RuneCountInString(it.Native)
	switch d {
	case scoring.DifficultyEasy:
		return n <= 3
	case scoring.DifficultyHard:
		return n >= 5
	default:
		return n >= 3 && n <= 4
	}
}

var builtinWords = []vocab.Item{
	{Native: "いぬ", Romaji: "inu", Meaning: "dog"},
	{Native: "ねこ", Romaji: "neko", Meaning: "cat"},
	{Native: "さかな", Romaji: "sakana", Meaning: "fish"},
	{Native: "やま", Romaji: "yama", Meaning: "mountain"},
	{Native: "かわ", Romaji: "kawa", Meaning: "river"},
	{Native: "そら", Romaji: "sora", Meaning: "sky"},
	{Native: "あめ", Romaji: "ame", Meaning: "rain"},
	{Native: "はな", Romaji: "hana", Meaning: "flower"},
	{Native: "みず", Romaji: "mizu", Meaning: "water"},
	{Native: "ほん", Romaji: "hon", Meaning: "book"},
	{Native: "くるま", Romaji: "kuruma", Meaning: "car"},
	{Native: "たまご", Romaji: "tamago", Meaning: "egg"},
	{Native: "ともだち", Romaji: "tomodachi", Meaning: "friend"},
	{Native: "がっこう", Romaji: "gakkou", Meaning: "school"},
	{Native: "でんしゃ", Romaji: "densha", Meaning: "train"},
	{Native: "きっぷ", Romaji: "kippu", Meaning: "ticket"},
	{Native: "おかあさん", Romaji: "okaasan", Meaning: "mother"},
	{Native: "おとうさん", Romaji: "otousan", Meaning: "father"},
	{Native: "ありがとう", Romaji: "arigatou", Meaning: "thank you"},
	{Native: "しんぶんし", Romaji: "shinbunshi", Meaning: "newspaper"},
	{Native: "ひこうき", Romaji: "hikouki", Meaning: "airplane"},
	{Native: "りんご", Romaji: "ringo", Meaning: "apple"},
	{Native: "て", Romaji: "te", Meaning: "hand"},
	{Native: "め", Romaji: "me", Meaning: "eye"},
	{Native: "パン", Romaji: "pan", Meaning: "bread"},
	{Native: "テレビ", Romaji: "terebi", Meaning: "television"},
	{Native: "カメラ", Romaji: "kamera", Meaning: "camera"},
	{Native: "ホテル", Romaji: "hoteru", Meaning: "hotel"},
	{Native: "バス", Romaji: "basu", Meaning: "bus"},
	{Native: "ピアノ", Romaji: "piano", Meaning: "piano"},
	{Native: "コーヒー", Romaji: "koohii", Meaning: "coffee"},
	{Native: "ケーキ", Romaji: "keeki", Meaning: "cake"},
	{Native: "タクシー", Romaji: "takushii", Meaning: "taxi"},
	{Native: "ノート", Romaji: "nooto", Meaning: "notebook"},
	{Native: "アイスクリーム", Romaji: "aisukuriimu", Meaning: "ice cream"},
	{Native: "コンピューター", Romaji: "konpyuutaa", Meaning: "computer"},
	{Native: "レストラン", Romaji: "resutoran", Meaning: "restaurant"},
	{Native: "チョコレート", Romaji: "chokoreeto", Meaning: "chocolate"},
}
