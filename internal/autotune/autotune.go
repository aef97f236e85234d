// Package autotune suggests a cipher round count from the entropy and size of a payload.
package autotune

import (
	"fmt"
	"math"
)

// Level names the strength tier of a RoundPlan.
type Level int

const (
	// LevelLow is selected for scores up to 100.
	LevelLow Level = iota
	// LevelMedium is selected for scores above 100.
	LevelMedium
	// LevelHigh is selected for scores above 150.
	LevelHigh
	// LevelUltra is selected for scores above 200.
	LevelUltra
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelUltra:
		return "ultra"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// RoundPlan is the suggested level and round count for one message.
type RoundPlan struct {
	Level  Level
	Rounds int
}

// scoreModulus bounds Score to [0, 256].
const scoreModulus = 257

// thresholds is ordered from the strongest tier down.
var thresholds = [...]struct { //nolint:gochecknoglobals
	above int
	plan  RoundPlan
}{
	{200, RoundPlan{Level: LevelUltra, Rounds: 13}},
	{150, RoundPlan{Level: LevelHigh, Rounds: 11}},
	{100, RoundPlan{Level: LevelMedium, Rounds: 9}},
}

var lowPlan = RoundPlan{Level: LevelLow, Rounds: 6} //nolint:gochecknoglobals

// Score returns (entropy*100 + size) mod 257, truncating the fractional part.
func Score(entropy float64, size int) int {
	raw := int(entropy*100 + float64(max(size, 0)))

	return ((raw % scoreModulus) + scoreModulus) % scoreModulus
}

// PlanForScore maps a score to its RoundPlan.
func PlanForScore(score int) RoundPlan {
	for _, t := range thresholds {
		if score > t.above {
			return t.plan
		}
	}

	return lowPlan
}

// PlanForRounds labels an externally chosen round count with the highest level
// whose table entry does not exceed it.
func PlanForRounds(rounds int) RoundPlan {
	for _, t := range thresholds {
		if rounds >= t.plan.Rounds {
			return RoundPlan{Level: t.plan.Level, Rounds: rounds}
		}
	}

	return RoundPlan{Level: LevelLow, Rounds: rounds}
}

// Suggest returns the RoundPlan for a payload with the given entropy (bits per byte) and size.
func Suggest(entropy float64, size int) RoundPlan {
	return PlanForScore(Score(entropy, size))
}

// SuggestFor measures data and returns its RoundPlan together with the measured entropy.
func SuggestFor(data []byte) (RoundPlan, float64) {
	e := Entropy(data)

	return Suggest(e, len(data)), e
}

// Entropy returns the Shannon entropy of data in bits per byte, in [0, 8].
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))

	var h float64

	for _, c := range counts {
		if c == 0 {
			continue
		}

		p := float64(c) / total
		h -= p * math.Log2(p)
	}

	return h
}
