package kana

import "testing"

func TestCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidateCatchesMismatchedRomaji(t *testing.T) {
	ct := buildCatalog([]Row{
		{ID: "ka", hiragana: "かき", romaji: []string{"ka"}},
	}, nil)
	if err := validateCatalog(ct); err == nil {
		t.Fatal("expected error for romaji count mismatch")
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		r      rune
		want   string
		wantOK bool
	}{
		{'か', "ka", true},
		{'キ', "ka", true},
		{'ん', "n", true},
		{'ぱ', "pa", true},
		{'ー', "mark", true},
		{'猫', "", false},
		{'a', "", false},
	}
	for _, tt := range tests {
		got, ok := GroupOf(tt.r)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("GroupOf(%q) = (%q, %v), want (%q, %v)", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLookupRomaji(t *testing.T) {
	k, ok := Lookup('し')
	if !ok {
		t.Fatal("し not found")
	}
	if k.Romaji != "shi" {
		t.Errorf("Romaji = %q, want %q", k.Romaji, "shi")
	}
	if k.Script != ScriptHiragana {
		t.Errorf("Script = %q, want %q", k.Script, ScriptHiragana)
	}
}

func TestCharsetFor(t *testing.T) {
	hira, err := CategoryByID("hiragana")
	if err != nil {
		t.Fatal(err)
	}
	cs := CharsetFor(hira)
	if cs.Open() {
		t.Fatal("hiragana charset should be closed")
	}
	if !cs.Allows("ねこ") {
		t.Error("ねこ should be allowed in hiragana")
	}
	if cs.Allows("ネコ") {
		t.Error("ネコ should not be allowed in hiragana")
	}
	if cs.Allows("猫") {
		t.Error("猫 should not be allowed in hiragana")
	}
	if cs.Allows("") {
		t.Error("empty text should not be allowed in a closed charset")
	}

	vocab, err := CategoryByID("vocabulary")
	if err != nil {
		t.Fatal(err)
	}
	open := CharsetFor(vocab)
	if !open.Open() {
		t.Fatal("vocabulary charset should be open")
	}
	if !open.Allows("猫") {
		t.Error("open charset should allow kanji")
	}
}

func TestKatakanaIncludesLongVowelMark(t *testing.T) {
	kata, _ := CategoryByID("katakana")
	if !CharsetFor(kata).Allows("コーヒー") {
		t.Error("コーヒー should be allowed in katakana")
	}
	hira, _ := CategoryByID("hiragana")
	if CharsetFor(hira).Contains('ー') {
		t.Error("hiragana charset should not contain the long vowel mark")
	}
}

func TestCategoryByIDUnknown(t *testing.T) {
	if _, err := CategoryByID("kanji-n1"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestGroupName(t *testing.T) {
	if got := GroupName("ka"); got != "K-row (か)" {
		t.Errorf("GroupName(ka) = %q", got)
	}
	if got := GroupName("mark"); got != "Long vowel mark (ー)" {
		t.Errorf("GroupName(mark) = %q", got)
	}
	if got := GroupName("zz"); got != "zz" {
		t.Errorf("GroupName(zz) = %q", got)
	}
}
