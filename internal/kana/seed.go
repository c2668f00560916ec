package kana

func init() {
	c = buildCatalog(seedRows(), seedCategories())
}

func seedRows() []Row {
	return []Row{
		{ID: "a", DisplayName: "Vowels", hiragana: "あいうえお", katakana: "アイウエオ", romaji: []string{"a", "i", "u", "e", "o"}},
		{ID: "ka", DisplayName: "K-row", hiragana: "かきくけこ", katakana: "カキクケコ", romaji: []string{"ka", "ki", "ku", "ke", "ko"}},
		{ID: "sa", DisplayName: "S-row", hiragana: "さしすせそ", katakana: "サシスセソ", romaji: []string{"sa", "shi", "su", "se", "so"}},
		{ID: "ta", DisplayName: "T-row", hiragana: "たちつてと", katakana: "タチツテト", romaji: []string{"ta", "chi", "tsu", "te", "to"}},
		{ID: "na", DisplayName: "N-row", hiragana: "なにぬねの", katakana: "ナニヌネノ", romaji: []string{"na", "ni", "nu", "ne", "no"}},
		{ID: "ha", DisplayName: "H-row", hiragana: "はひふへほ", katakana: "ハヒフヘホ", romaji: []string{"ha", "hi", "fu", "he", "ho"}},
		{ID: "ma", DisplayName: "M-row", hiragana: "まみむめも", katakana: "マミムメモ", romaji: []string{"ma", "mi", "mu", "me", "mo"}},
		{ID: "ya", DisplayName: "Y-row", hiragana: "やゆよ", katakana: "ヤユヨ", romaji: []string{"ya", "yu", "yo"}},
		{ID: "ra", DisplayName: "R-row", hiragana: "らりるれろ", katakana: "ラリルレロ", romaji: []string{"ra", "ri", "ru", "re", "ro"}},
		{ID: "wa", DisplayName: "W-row", hiragana: "わを", katakana: "ワヲ", romaji: []string{"wa", "wo"}},
		{ID: "n", DisplayName: "N", hiragana: "ん", katakana: "ン", romaji: []string{"n"}},
		{ID: "ga", DisplayName: "G-row", hiragana: "がぎぐげご", katakana: "ガギグゲゴ", romaji: []string{"ga", "gi", "gu", "ge", "go"}},
		{ID: "za", DisplayName: "Z-row", hiragana: "ざじずぜぞ", katakana: "ザジズゼゾ", romaji: []string{"za", "ji", "zu", "ze", "zo"}},
		{ID: "da", DisplayName: "D-row", hiragana: "だぢづでど", katakana: "ダヂヅデド", romaji: []string{"da", "ji", "zu", "de", "do"}},
		{ID: "ba", DisplayName: "B-row", hiragana: "ばびぶべぼ", katakana: "バビブベボ", romaji: []string{"ba", "bi", "bu", "be", "bo"}},
		{ID: "pa", DisplayName: "P-row", hiragana: "ぱぴぷぺぽ", katakana: "パピプペポ", romaji: []string{"pa", "pi", "pu", "pe", "po"}},
		{ID: "small", DisplayName: "Small kana", hiragana: "ゃゅょっ", katakana: "ャュョッ", romaji: []string{"ya", "yu", "yo", "tsu"}},
		{ID: "mark", DisplayName: "Long vowel mark", katakana: "ー", romaji: []string{"-"}},
	}
}

func seedCategories() []Category {
	return []Category{
		{
			ID:          "hiragana",
			Name:        "Hiragana",
			Description: "Native words written only in hiragana",
			Script:      ScriptHiragana,
			Closed:      true,
		},
		{
			ID:          "katakana",
			Name:        "Katakana",
			Description: "Loanwords written only in katakana",
			Script:      ScriptKatakana,
			Closed:      true,
		},
		{
			ID:          "vocabulary",
			Name:        "Everyday vocabulary",
			Description: "Common words in any script, including kanji",
			Closed:      false,
		},
	}
}
