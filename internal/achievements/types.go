package achievements

// Category groups achievements in the vault.
type Category string

const (
	CategoryLearning Category = "learning"
	CategoryAccuracy Category = "accuracy"
	CategoryStreak   Category = "streak"
	CategorySession  Category = "session"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryLearning, CategoryAccuracy, CategoryStreak, CategorySession}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryLearning:
		return "Learning"
	case CategoryAccuracy:
		return "Accuracy"
	case CategoryStreak:
		return "Streak"
	case CategorySession:
		return "Sessions"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryLearning:
		return "🌱"
	case CategoryAccuracy:
		return "🎯"
	case CategoryStreak:
		return "⚡"
	case CategorySession:
		return "🏆"
	default:
		return "✦"
	}
}

// Rarity represents how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Achievement is a static badge definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Rule        Rule
}

// Icon returns the icon of the achievement's category.
func (a Achievement) Icon() string { return a.Category.Icon() }
