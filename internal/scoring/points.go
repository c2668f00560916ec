package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// BasePoints is awarded for every correct answer before bonuses.
	BasePoints = 500

	// MaxSpeedBonus is the bonus for an instant answer. It decays by one
	// point every SpeedDecayPerPoint of response time.
	MaxSpeedBonus = 500

	// SpeedDecayPerPoint is the response time that costs one bonus point.
	SpeedDecayPerPoint = 20 * time.Millisecond
)

// Difficulty is the difficulty a session was configured with.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user-supplied string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Multiplier returns the score multiplier for the difficulty. Unknown
// values score like medium.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// SpeedBonus returns the bonus for answering within elapsed.
func SpeedBonus(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	decay := int(elapsed / SpeedDecayPerPoint)
	return max(0, MaxSpeedBonus-decay)
}

// ComputePoints returns the points earned by one answer. Incorrect
// answers earn nothing.
func ComputePoints(elapsed time.Duration, correct bool, d Difficulty, streakMultiplier float64) int {
	if !correct {
		return 0
	}
	if streakMultiplier < 0 {
		streakMultiplier = 0
	}
	raw := float64(BasePoints+SpeedBonus(elapsed)) * streakMultiplier * d.Multiplier()
	// Products like 1000*1.3*0.7 land a hair under the integer.
	return int(math.Floor(raw + 1e-9))
}
