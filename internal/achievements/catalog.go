package achievements

// Catalog returns every achievement in display order.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first-steps",
			Name:        "First Steps",
			Description: "Learn 5 words",
			Category:    CategoryLearning,
			Rarity:      RarityCommon,
			Rule:        Rule{Kind: KindLevelCount, MinLevel: 1, Count: 5},
		},
		{
			ID:          "growing-roots",
			Name:        "Growing Roots",
			Description: "Bring 10 words to level 4",
			Category:    CategoryLearning,
			Rarity:      RarityRare,
			Rule:        Rule{Kind: KindLevelCount, MinLevel: 4, Count: 10},
		},
		{
			ID:          "word-master",
			Name:        "Word Master",
			Description: "Fully master 5 words",
			Category:    CategoryLearning,
			Rarity:      RarityLegendary,
			Rule:        Rule{Kind: KindLevelCount, MinLevel: 8, Count: 5},
		},
		{
			ID:          "perfectionist",
			Name:        "Perfectionist",
			Description: "Finish a session of at least 5 words with 100% accuracy",
			Category:    CategoryAccuracy,
			Rarity:      RarityRare,
			Rule:        Rule{Kind: KindSessionAccuracy, Threshold: 100, MinAnswered: 5},
		},
		{
			ID:          "sharp-eye",
			Name:        "Sharp Eye",
			Description: "Score 90% or better in 3 sessions",
			Category:    CategoryAccuracy,
			Rarity:      RarityEpic,
			Rule:        Rule{Kind: KindAccuracySessions, Threshold: 90, Count: 3},
		},
		{
			ID:          "on-fire",
			Name:        "On Fire",
			Description: "Answer 10 in a row correctly",
			Category:    CategoryStreak,
			Rarity:      RarityRare,
			Rule:        Rule{Kind: KindStreak, Threshold: 10},
		},
		{
			ID:          "unstoppable",
			Name:        "Unstoppable",
			Description: "Answer 25 in a row correctly",
			Category:    CategoryStreak,
			Rarity:      RarityLegendary,
			Rule:        Rule{Kind: KindStreak, Threshold: 25},
		},
		{
			ID:          "first-session",
			Name:        "Hello, Kana",
			Description: "Finish your first session",
			Category:    CategorySession,
			Rarity:      RarityCommon,
			Rule:        Rule{Kind: KindSessionsCompleted, Count: 1},
		},
		{
			ID:          "regular",
			Name:        "Regular",
			Description: "Finish 10 sessions",
			Category:    CategorySession,
			Rarity:      RarityEpic,
			Rule:        Rule{Kind: KindSessionsCompleted, Count: 10},
		},
		{
			ID:          "high-scorer",
			Name:        "High Scorer",
			Description: "Score 10,000 points in one session",
			Category:    CategorySession,
			Rarity:      RarityEpic,
			Rule:        Rule{Kind: KindScore, Threshold: 10000},
		},
	}
}
