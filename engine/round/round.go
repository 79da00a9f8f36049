// Package round manages the state of a single active puzzle: which
// letters are guessed, which slots are revealed, and the strike count.
package round

import (
	"sort"
	"strings"

	"github.com/nathoo/streakcore/types"
)

// Letter classes. Shared by auto-guess upgrades and consumable reveals.
var (
	Vowels     = letterSet("AEIOU")
	Consonants = letterSet("BCDFGHJKLMNPQRSTVWXYZ")
	Alphabet   = letterSet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

func letterSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// Round holds the active puzzle's mutable state. Created fresh each
// round and replaced at the start of the next one.
type Round struct {
	puzzle             types.Puzzle
	guessed            map[rune]bool
	strikeCount        int
	maxStrikes         int
	freeGuessActive    bool
	solvedByConsumable bool
}

// New creates a round for the given puzzle with the given strike cap.
func New(p types.Puzzle, maxStrikes int) *Round {
	return &Round{
		puzzle:     p,
		guessed:    map[rune]bool{},
		maxStrikes: maxStrikes,
	}
}

// Puzzle returns the puzzle this round is playing.
func (r *Round) Puzzle() types.Puzzle {
	return r.puzzle
}

// Guess marks a letter as guessed and reports whether it appears in the
// phrase. It carries no strike bookkeeping — the engine decides what a
// miss costs.
func (r *Round) Guess(letter rune) bool {
	r.guessed[letter] = true
	return strings.ContainsRune(r.puzzle.Text, letter)
}

// MarkGuessed marks a letter as guessed without reporting a match.
// Used by the eliminate-letters consumable.
func (r *Round) MarkGuessed(letter rune) {
	r.guessed[letter] = true
}

// HasGuessed reports whether the letter has already been guessed.
func (r *Round) HasGuessed(letter rune) bool {
	return r.guessed[letter]
}

// IsSolved reports whether every letter of the phrase is revealed.
func (r *Round) IsSolved() bool {
	for _, c := range r.puzzle.Text {
		if c != ' ' && !r.guessed[c] {
			return false
		}
	}
	return true
}

// Mask returns the phrase with unguessed letters replaced by '_'.
func (r *Round) Mask() string {
	var b strings.Builder
	for _, c := range r.puzzle.Text {
		switch {
		case c == ' ':
			b.WriteRune(' ')
		case r.guessed[c]:
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Guessed returns the guessed letters in alphabetical order.
func (r *Round) Guessed() []rune {
	letters := make([]rune, 0, len(r.guessed))
	for c := range r.guessed {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// HiddenLetters returns the letters of the given class that appear in
// the phrase and are not yet guessed, in alphabetical order.
func (r *Round) HiddenLetters(class map[rune]bool) []rune {
	seen := map[rune]bool{}
	var hidden []rune
	for _, c := range r.puzzle.Text {
		if c == ' ' || seen[c] {
			continue
		}
		seen[c] = true
		if class[c] && !r.guessed[c] {
			hidden = append(hidden, c)
		}
	}
	sort.Slice(hidden, func(i, j int) bool { return hidden[i] < hidden[j] })
	return hidden
}

// AbsentUnguessed returns the letters that do not appear in the phrase
// and are not yet guessed, in alphabetical order.
func (r *Round) AbsentUnguessed() []rune {
	var absent []rune
	for c := 'A'; c <= 'Z'; c++ {
		if !strings.ContainsRune(r.puzzle.Text, c) && !r.guessed[c] {
			absent = append(absent, c)
		}
	}
	return absent
}

// AddStrike records one used strike.
func (r *Round) AddStrike() {
	r.strikeCount++
}

// HealStrike recovers one used strike. Reports whether there was a
// strike to heal.
func (r *Round) HealStrike() bool {
	if r.strikeCount == 0 {
		return false
	}
	r.strikeCount--
	return true
}

// StrikeCount returns the strikes used this round.
func (r *Round) StrikeCount() int {
	return r.strikeCount
}

// MaxStrikes returns this round's strike cap.
func (r *Round) MaxStrikes() int {
	return r.maxStrikes
}

// IsGameOver reports whether the strike cap has been reached.
func (r *Round) IsGameOver() bool {
	return r.strikeCount >= r.maxStrikes
}

// FreeGuessActive reports whether the next guess is free.
func (r *Round) FreeGuessActive() bool {
	return r.freeGuessActive
}

// SetFreeGuess arms or clears the free-guess flag.
func (r *Round) SetFreeGuess(active bool) {
	r.freeGuessActive = active
}

// SolvedByConsumable reports whether a consumable reveal completed the
// phrase. This path bypasses normal win scoring; collaborators surface
// it as a win popup.
func (r *Round) SolvedByConsumable() bool {
	return r.solvedByConsumable
}

// MarkSolvedByConsumable flags the round as completed by a consumable.
func (r *Round) MarkSolvedByConsumable() {
	r.solvedByConsumable = true
}
