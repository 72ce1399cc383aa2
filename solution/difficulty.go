package solution

import "github.com/samber/lo"

// Difficulty is the coarse bucket a solved position is filed under,
// also the bucket dimension of the corpus store (C12).
type Difficulty uint8

const (
	Easiest Difficulty = iota
	Easy
	Medium
	Hard
	Hardest
)

func (d Difficulty) String() string {
	switch d {
	case Easiest:
		return "Easiest"
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Hardest:
		return "Hardest"
	default:
		return "Unknown"
	}
}

// fromInternalDifficulty buckets the fine-grained internal score.
func fromInternalDifficulty(value int) Difficulty {
	switch {
	case value <= 1:
		return Easiest
	case value <= 3:
		return Easy
	case value <= 6:
		return Medium
	case value <= 9:
		return Hard
	default:
		return Hardest
	}
}

// GetDifficulty classifies a solution into its coarse bucket.
func GetDifficulty(steps Solution) Difficulty {
	return fromInternalDifficulty(internalDifficulty(steps))
}

// internalDifficulty reproduces the original engine's step-count /
// distinct-actor-count / focus-switch-count scoring table exactly.
func internalDifficulty(steps Solution) int {
	stepsCount := len(steps)
	actorIDs := make([]uint8, len(steps))
	for i, s := range steps {
		actorIDs[i] = s.Actor
	}
	actorCount := len(lo.Uniq(actorIDs))
	focusSwitchCount := dedupCount(actorIDs)

	switch {
	case stepsCount >= 1 && stepsCount <= 2:
		return 0
	case stepsCount >= 3 && stepsCount <= 4 && actorCount <= 1 && focusSwitchCount <= 1:
		return 1
	case stepsCount >= 3 && stepsCount <= 4:
		return 2
	case stepsCount >= 5 && stepsCount <= 7 && actorCount <= 2 && focusSwitchCount <= 2:
		return 3
	case stepsCount >= 5 && stepsCount <= 7:
		return 4
	case stepsCount >= 8 && stepsCount <= 9 && actorCount <= 2 && focusSwitchCount <= 2:
		return 5
	case actorCount == 1 && focusSwitchCount == 1:
		return 6
	case stepsCount >= 8 && stepsCount <= 9 && focusSwitchCount >= 3 && focusSwitchCount <= 4:
		return 6
	case stepsCount >= 8 && stepsCount <= 9:
		return 7
	case stepsCount >= 10 && stepsCount <= 12 && focusSwitchCount <= 4:
		return 7
	case stepsCount >= 10 && stepsCount <= 12 && focusSwitchCount <= 6:
		return 8
	case stepsCount >= 10 && stepsCount <= 12 && focusSwitchCount <= 8:
		return 9
	case stepsCount >= 13 && stepsCount <= 15 && focusSwitchCount <= 6:
		return 9
	case stepsCount >= 10 && stepsCount <= 12 && focusSwitchCount <= 10:
		return 10
	case stepsCount >= 13 && stepsCount <= 15 && focusSwitchCount <= 8:
		return 10
	case stepsCount >= 16 && stepsCount <= 18 && focusSwitchCount <= 6:
		return 10
	default:
		return 11
	}
}

// dedupCount counts maximal runs of equal consecutive values, the way
// Rust's Iterator::dedup does.
func dedupCount(ids []uint8) int {
	if len(ids) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1] {
			count++
		}
	}
	return count
}
