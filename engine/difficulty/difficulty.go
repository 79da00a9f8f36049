// Package difficulty scores puzzles and maps streaks to difficulty bands.
// All functions are pure and deterministic.
package difficulty

import (
	"math"
	"strings"
)

// Scrabble-style letter weights used to measure rarity.
var letterRarity = map[rune]int{
	'A': 1, 'E': 1, 'I': 1, 'O': 1, 'U': 1,
	'N': 1, 'R': 1, 'S': 1, 'T': 1, 'L': 1, 'H': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// Score computes the difficulty of a phrase:
//
//	(unique letters × rarity sum × average word length) / word count
//
// Letters in free are excluded from both the unique count and the rarity
// sum — some topics give letters away (e.g. I, N, G for a topic whose
// every answer ends in -ING). The phrase is assumed uppercase A–Z plus
// spaces, with at least one word; the loader validates both.
func Score(phrase string, free map[rune]bool) float64 {
	unique := map[rune]bool{}
	for _, r := range phrase {
		if r != ' ' && !free[r] {
			unique[r] = true
		}
	}

	rarity := 0
	for r := range unique {
		rarity += letterRarity[r]
	}

	words := strings.Fields(phrase)
	totalLetters := 0
	for _, w := range words {
		totalLetters += len(w)
	}
	avgWordLength := float64(totalLetters) / float64(len(words))

	return float64(len(unique)) * float64(rarity) * avgWordLength / float64(len(words))
}

// Range returns the [min, max] difficulty band for a streak. Bands widen
// and shift upward as the streak grows; the lower bound never decreases.
func Range(streak int) (min, max float64) {
	switch {
	case streak >= 30:
		return 500, math.Inf(1)
	case streak >= 20:
		return 350, math.Inf(1)
	case streak >= 12:
		return 200, 700
	case streak >= 8:
		return 100, 500
	case streak >= 4:
		return 0, 350
	default:
		return 0, 200
	}
}

// Tier returns an index that changes exactly when the puzzle pool is due
// for a rebuild. The values themselves are meaningless; only transitions
// matter.
func Tier(streak int) int {
	switch {
	case streak >= 11:
		return 5
	case streak >= 9:
		return 4
	case streak >= 7:
		return 3
	case streak >= 5:
		return 2
	case streak >= 3:
		return 1
	default:
		return 0
	}
}
