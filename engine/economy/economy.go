// Package economy tracks money, stars, and streak milestones across the
// three state scopes: per-run money, run-scoped pending milestones with
// their star buffer, and permanent stars banked via prestige.
package economy

import (
	"math"
	"sort"
)

// Economy owns all currency state. Gameplay never mutates it directly;
// the engine and the purchase resolver call the methods below.
type Economy struct {
	money      int
	stars      int
	starBuffer int

	pending       map[int]bool // milestones reached this run, pending cash-out
	permanent     map[int]bool // milestones banked forever via prestige
	prestigeCount int

	displayUnlocked bool // latched once a star has ever been buffered
}

// New creates an empty economy.
func New() *Economy {
	return &Economy{
		pending:   map[int]bool{},
		permanent: map[int]bool{},
	}
}

// Money returns the current run's money.
func (e *Economy) Money() int { return e.money }

// Stars returns the spendable star balance.
func (e *Economy) Stars() int { return e.stars }

// StarBuffer returns the stars earned this run, pending prestige.
func (e *Economy) StarBuffer() int { return e.starBuffer }

// PrestigeCount returns how many times the player has prestiged.
func (e *Economy) PrestigeCount() int { return e.prestigeCount }

// Earn awards money for a round win:
//
//	round(difficulty/10 × max(streak/10, 1) × (1 + 0.05 × strikesLeft))
//
// strikesLeft counts base strikes only, never bonus strikes. Returns
// the amount awarded.
func (e *Economy) Earn(difficulty float64, streak, strikesLeft int) int {
	amount := int(math.Round(
		difficulty / 10 *
			math.Max(float64(streak)/10, 1) *
			(1 + 0.05*float64(strikesLeft)),
	))
	e.money += amount
	return amount
}

// Spend deducts money. Returns false, with no deduction, on insufficient
// funds.
func (e *Economy) Spend(amount int) bool {
	if e.money < amount {
		return false
	}
	e.money -= amount
	return true
}

// SpendStars deducts stars. Returns false, with no deduction, on
// insufficient stars.
func (e *Economy) SpendStars(amount int) bool {
	if e.stars < amount {
		return false
	}
	e.stars -= amount
	return true
}

// RecordMilestone evaluates the milestone for a just-won streak value.
// The milestone m = (streak/10)×10 buffers one star the first time it is
// reached — pending milestones block re-awarding within the run, banked
// ones block it forever. Returns the milestone value buffered, or 0.
func (e *Economy) RecordMilestone(streak int) int {
	m := streak / 10 * 10
	if m <= 0 || e.pending[m] || e.permanent[m] {
		return 0
	}
	e.pending[m] = true
	e.starBuffer++
	e.displayUnlocked = true
	return m
}

// ResetRun wipes the run-scoped economy on a loss: money, pending
// milestones, and the star buffer. Stars, banked milestones, and the
// prestige count survive.
func (e *Economy) ResetRun() {
	e.money = 0
	e.starBuffer = 0
	e.pending = map[int]bool{}
}

// Prestige cashes the star buffer out into spendable stars, banks the
// pending milestones permanently, and resets the run-scoped economy.
// Returns the number of stars banked.
func (e *Economy) Prestige() int {
	banked := e.starBuffer
	e.stars += banked
	for m := range e.pending {
		e.permanent[m] = true
	}
	e.prestigeCount++
	e.displayUnlocked = true
	e.ResetRun()
	return banked
}

// StarsDisplayUnlocked reports whether the star display should be shown:
// once stars have ever been buffered, banked, or spent into existence.
func (e *Economy) StarsDisplayUnlocked() bool {
	return e.displayUnlocked || e.stars > 0 || e.starBuffer > 0 ||
		len(e.pending) > 0 || len(e.permanent) > 0
}

// PendingMilestones returns the run's pending milestones in order.
func (e *Economy) PendingMilestones() []int {
	return sortedKeys(e.pending)
}

// PermanentMilestones returns the banked milestones in order.
func (e *Economy) PermanentMilestones() []int {
	return sortedKeys(e.permanent)
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
