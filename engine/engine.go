// Package engine provides the progression engine that wires together
// puzzle pooling, round state, the economy, and the shop into the
// round/streak lifecycle.
package engine

import (
	"unicode"

	"github.com/rs/zerolog"

	"github.com/nathoo/streakcore/engine/difficulty"
	"github.com/nathoo/streakcore/engine/economy"
	"github.com/nathoo/streakcore/engine/pool"
	"github.com/nathoo/streakcore/engine/round"
	"github.com/nathoo/streakcore/engine/shop"
	"github.com/nathoo/streakcore/types"
)

// PrestigeUnlockStreak is the streak required before the player can
// prestige.
const PrestigeUnlockStreak = 50

const baseStrikes = 3

// Engine owns all gameplay state and exposes the only mutating API
// surface. Collaborators call one operation at a time and re-read state
// to render; every operation runs to completion with no suspension
// points, so a multi-threaded host must serialize calls itself.
type Engine struct {
	Catalog *types.Catalog
	RNG     *RNG

	log zerolog.Logger

	streak         int
	previousStreak int
	totalRounds    int
	bonusStrikes   int
	complete       bool

	econ     *economy.Economy
	ledger   *shop.Ledger
	resolver *shop.Resolver
	pool     *pool.Pool
	round    *round.Round
	seen     map[string]bool
}

// New creates an engine for the catalog and starts the first round.
// The catalog must contain at least one puzzle; the loader guarantees it.
func New(cat *types.Catalog, seed int64) *Engine {
	e := &Engine{
		Catalog: cat,
		RNG:     NewRNG(seed),
		log:     zerolog.Nop(),
		econ:    economy.New(),
		ledger:  shop.NewLedger(),
		seen:    map[string]bool{},
	}
	e.resolver = &shop.Resolver{
		Ledger:  e.ledger,
		Wallet:  e.econ,
		Game:    e,
		Effects: e,
	}
	e.pool = pool.New(cat, e.filter(), e.RNG)
	if pz, ok := e.pool.DrawNext(); ok {
		e.startRound(pz)
	}
	return e
}

// SetLogger attaches a structured logger. The default is a no-op.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

func (e *Engine) filter() pool.Filter {
	return pool.Filter{
		Seen:     e.seen,
		Unlocked: func(itemID string) bool { return e.ledger.PrestigeOwned[itemID] },
		Streak:   e.streak,
	}
}

// --- Round lifecycle ---

// Guess processes one letter guess. Order of operations: the free guess
// is consumed on any guess, right or wrong; on a miss a free guess
// blocks the hit, then a bonus strike absorbs it, and only then is a
// real strike added.
func (e *Engine) Guess(letter rune) types.GuessOutcome {
	letter = unicode.ToUpper(letter)

	freeGuessUsed := e.round.FreeGuessActive()
	e.round.SetFreeGuess(false)

	matched := e.round.Guess(letter)

	if matched {
		if e.round.IsSolved() {
			return types.GuessSolved
		}
		return types.GuessCorrect
	}

	if freeGuessUsed {
		return types.GuessBlocked
	}

	if e.bonusStrikes > 0 {
		e.bonusStrikes--
		return types.GuessBonusStrike
	}

	e.round.AddStrike()
	if e.round.IsGameOver() {
		return types.GuessGameOver
	}
	return types.GuessStrike
}

// Win scores a solved round: records the puzzle as seen, advances the
// streak, banks any milestone, awards money, and starts the next round.
// Advanced is false when the pool is exhausted and the run is complete.
func (e *Engine) Win() types.WinResult {
	pz := e.round.Puzzle()
	e.seen[pz.Text] = true
	e.streak++
	e.totalRounds++

	milestone := e.econ.RecordMilestone(e.streak)

	diff := difficulty.Score(pz.Text, e.Catalog.Topics[pz.Topic].Free)
	strikesLeft := e.round.MaxStrikes() - e.round.StrikeCount() // bonus strikes excluded
	earned := e.econ.Earn(diff, e.streak, strikesLeft)

	advanced := e.advance()

	e.log.Debug().
		Str("puzzle", pz.Text).
		Int("streak", e.streak).
		Int("earned", earned).
		Int("milestone", milestone).
		Bool("advanced", advanced).
		Msg("round won")

	return types.WinResult{Advanced: advanced, Earned: earned, Milestone: milestone}
}

// AdvanceUnscored moves past a round completed by a consumable reveal.
// The puzzle counts as seen but grants no streak, money, or milestone
// credit. Returns false when the pool is exhausted.
func (e *Engine) AdvanceUnscored() bool {
	pz := e.round.Puzzle()
	e.seen[pz.Text] = true
	advanced := e.advance()
	e.log.Debug().Str("puzzle", pz.Text).Msg("round completed by consumable")
	return advanced
}

// Lose resets all run state and starts a fresh run. Stars, banked
// milestones, prestige purchases, and the prestige count survive.
func (e *Engine) Lose() {
	e.log.Debug().Int("streak", e.streak).Msg("run lost")
	e.econ.ResetRun()
	e.resetRun()
}

// CanPrestige reports prestige eligibility: the streak is at the unlock
// threshold and at least one star waits in the buffer.
func (e *Engine) CanPrestige() bool {
	return e.streak >= PrestigeUnlockStreak && e.econ.StarBuffer() > 0
}

// Prestige cashes the star buffer out into spendable stars, banks the
// pending milestones permanently, and resets the run. No-op when
// CanPrestige is false.
func (e *Engine) Prestige() {
	if !e.CanPrestige() {
		return
	}
	banked := e.econ.Prestige()
	e.log.Debug().Int("streak", e.streak).Int("stars", banked).Msg("prestiged")
	e.resetRun()
}

// NewRun starts over after the catalog is exhausted. Treated as a loss.
func (e *Engine) NewRun() {
	e.Lose()
}

// resetRun performs the run reset shared by Lose and Prestige:
// streak, upgrade/consumable ledgers, seen puzzles, pool, and round.
func (e *Engine) resetRun() {
	e.previousStreak = e.streak
	e.streak = 0
	e.ledger.ResetRun()
	e.seen = map[string]bool{}
	e.complete = false
	e.pool = pool.New(e.Catalog, e.filter(), e.RNG)
	if pz, ok := e.pool.DrawNext(); ok {
		e.startRound(pz)
	}
}

// advance moves to the next round, rebuilding the pool first if the
// difficulty tier has shifted. Returns false when the pool is exhausted.
func (e *Engine) advance() bool {
	e.pool.MaybeRebuild(e.Catalog, e.filter(), e.RNG)
	pz, ok := e.pool.DrawNext()
	if !ok {
		e.complete = true
		return false
	}
	e.startRound(pz)
	return true
}

// startRound sets up round state for a puzzle and applies auto-guess
// upgrades. Bonus strikes carry over between rounds.
func (e *Engine) startRound(pz types.Puzzle) {
	e.round = round.New(pz, e.maxStrikes())
	for _, letter := range e.autoGuesses(pz) {
		e.round.Guess(letter)
	}
	e.log.Debug().Str("puzzle", pz.Text).Str("topic", pz.Topic).Msg("round started")
}

// maxStrikes returns the strike cap: 3 plus one per extra_strike purchase.
func (e *Engine) maxStrikes() int {
	return baseStrikes + e.ledger.UpgradeCounts["extra_strike"]
}

// autoGuesses picks the letters to reveal at round start. Each free
// consonant/vowel purchase adds one slot; a guaranteed purchase at that
// slot index restricts the draw to letters present in the phrase,
// falling back to the full class when that intersection is empty.
func (e *Engine) autoGuesses(pz types.Puzzle) []rune {
	phraseLetters := map[rune]bool{}
	for _, c := range pz.Text {
		if c != ' ' {
			phraseLetters[c] = true
		}
	}

	var guesses []rune
	chosen := map[rune]bool{}

	fill := func(class map[rune]bool, freeCount, guaranteedCount int) {
		for slot := 0; slot < freeCount; slot++ {
			var candidates []rune
			if slot < guaranteedCount {
				candidates = classCandidates(class, chosen, phraseLetters)
			} else {
				candidates = classCandidates(class, chosen, nil)
			}
			if len(candidates) == 0 {
				candidates = classCandidates(class, chosen, nil)
			}
			if len(candidates) == 0 {
				continue
			}
			letter := e.RNG.PickRune(candidates)
			guesses = append(guesses, letter)
			chosen[letter] = true
		}
	}

	fill(round.Consonants, e.ledger.UpgradeCounts["free_consonant"], e.ledger.UpgradeCounts["guaranteed_consonant"])
	fill(round.Vowels, e.ledger.UpgradeCounts["free_vowel"], e.ledger.UpgradeCounts["guaranteed_vowel"])
	return guesses
}

// classCandidates returns the letters of class not yet chosen, optionally
// restricted to a second set, in alphabetical order for determinism.
func classCandidates(class, chosen, within map[rune]bool) []rune {
	var out []rune
	for c := 'A'; c <= 'Z'; c++ {
		if !class[c] || chosen[c] {
			continue
		}
		if within != nil && !within[c] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// --- Purchases ---

// PurchaseUpgrade buys a run-scoped upgrade. Returns the success flag.
func (e *Engine) PurchaseUpgrade(id string) bool {
	ok := e.resolver.PurchaseUpgrade(id)
	if ok {
		e.log.Debug().Str("item", id).Int("owned", e.ledger.UpgradeCounts[id]).Msg("upgrade purchased")
	}
	return ok
}

// PurchaseConsumable buys a consumable and applies its effect
// immediately. Returns the success flag.
func (e *Engine) PurchaseConsumable(id string) bool {
	ok := e.resolver.PurchaseConsumable(id)
	if ok {
		e.log.Debug().Str("item", id).Msg("consumable purchased")
	}
	return ok
}

// PurchasePrestigeItem buys a permanent star-priced item. Returns the
// success flag.
func (e *Engine) PurchasePrestigeItem(id string) bool {
	ok := e.resolver.PurchasePrestigeItem(id)
	if ok {
		e.log.Debug().Str("item", id).Msg("prestige item purchased")
	}
	return ok
}

// ShopListings prepares the visible rows of one shop list for rendering.
func (e *Engine) ShopListings(kind types.ItemKind) []shop.Listing {
	return e.resolver.Listings(kind)
}

// --- Consumable effects (shop.Effects) ---

// RevealConsonant reveals a random hidden consonant from the phrase.
func (e *Engine) RevealConsonant() {
	e.revealFrom(round.Consonants)
}

// RevealVowel reveals a random hidden vowel from the phrase.
func (e *Engine) RevealVowel() {
	e.revealFrom(round.Vowels)
}

func (e *Engine) revealFrom(class map[rune]bool) {
	hidden := e.round.HiddenLetters(class)
	if len(hidden) == 0 {
		return
	}
	e.round.Guess(e.RNG.PickRune(hidden))
	if e.round.IsSolved() {
		// Completed without a scored guess — the collaborator surfaces
		// the win; no streak, money, or milestone credit.
		e.round.MarkSolvedByConsumable()
	}
}

// EliminateLetters marks up to 3 letters absent from the phrase as
// guessed, removing them from play.
func (e *Engine) EliminateLetters() {
	for _, c := range e.RNG.SampleRunes(e.round.AbsentUnguessed(), 3) {
		e.round.MarkGuessed(c)
	}
}

// GrantFreeGuess arms the free-guess flag for the next guess.
func (e *Engine) GrantFreeGuess() {
	e.round.SetFreeGuess(true)
}

// GrantBonusStrike heals the most recent used strike if any, otherwise
// adds a true bonus strike.
func (e *Engine) GrantBonusStrike() {
	if !e.round.HealStrike() {
		e.bonusStrikes++
	}
}

// --- Live-state gating (shop.GameState) ---

// FreeGuessActive reports whether a free guess is armed.
func (e *Engine) FreeGuessActive() bool { return e.round.FreeGuessActive() }

// BonusStrikes returns the unspent bonus strikes.
func (e *Engine) BonusStrikes() int { return e.bonusStrikes }

// StrikeCount returns the strikes used this round.
func (e *Engine) StrikeCount() int { return e.round.StrikeCount() }

// HiddenConsonants counts unrevealed consonants in the phrase.
func (e *Engine) HiddenConsonants() int { return len(e.round.HiddenLetters(round.Consonants)) }

// HiddenVowels counts unrevealed vowels in the phrase.
func (e *Engine) HiddenVowels() int { return len(e.round.HiddenLetters(round.Vowels)) }

// EliminableLetters counts wrong, unguessed letters.
func (e *Engine) EliminableLetters() int { return len(e.round.AbsentUnguessed()) }

// --- Read-only state for rendering ---

// Mask returns the phrase with unguessed letters hidden.
func (e *Engine) Mask() string { return e.round.Mask() }

// Topic returns the active puzzle's topic name.
func (e *Engine) Topic() string { return e.round.Puzzle().Topic }

// GuessedLetters returns the guessed letters in alphabetical order.
func (e *Engine) GuessedLetters() []rune { return e.round.Guessed() }

// HasGuessed reports whether a letter was already guessed this round.
func (e *Engine) HasGuessed(letter rune) bool {
	return e.round.HasGuessed(unicode.ToUpper(letter))
}

// MaxStrikes returns this round's strike cap.
func (e *Engine) MaxStrikes() int { return e.round.MaxStrikes() }

// SolvedByConsumable reports whether a consumable reveal completed the
// phrase.
func (e *Engine) SolvedByConsumable() bool { return e.round.SolvedByConsumable() }

// Money returns the current run's money.
func (e *Engine) Money() int { return e.econ.Money() }

// Stars returns the spendable star balance.
func (e *Engine) Stars() int { return e.econ.Stars() }

// StarBuffer returns stars earned this run, pending prestige.
func (e *Engine) StarBuffer() int { return e.econ.StarBuffer() }

// Streak returns the current streak.
func (e *Engine) Streak() int { return e.streak }

// PreviousStreak returns the streak before the last loss or prestige.
func (e *Engine) PreviousStreak() int { return e.previousStreak }

// TotalRoundsCompleted returns the all-time rounds won.
func (e *Engine) TotalRoundsCompleted() int { return e.totalRounds }

// PrestigeCount returns how many times the player has prestiged.
func (e *Engine) PrestigeCount() int { return e.econ.PrestigeCount() }

// StarsDisplayUnlocked reports whether the star display should be shown.
func (e *Engine) StarsDisplayUnlocked() bool { return e.econ.StarsDisplayUnlocked() }

// PendingMilestones returns the run's pending milestones in order.
func (e *Engine) PendingMilestones() []int { return e.econ.PendingMilestones() }

// PermanentMilestones returns the banked milestones in order.
func (e *Engine) PermanentMilestones() []int { return e.econ.PermanentMilestones() }

// Complete reports whether the catalog is exhausted. Recoverable only
// via NewRun.
func (e *Engine) Complete() bool { return e.complete }

// PoolRemaining returns how many puzzles remain in the pool.
func (e *Engine) PoolRemaining() int { return e.pool.Len() }

// OldManUnlocked reports whether the old_man prestige item is owned.
func (e *Engine) OldManUnlocked() bool { return e.ledger.PrestigeOwned["old_man"] }

// UnlockedColorTopics returns the owned color-topic items in purchase order.
func (e *Engine) UnlockedColorTopics() []string {
	var owned []string
	for _, id := range shop.ColorTopicIDs {
		if e.ledger.PrestigeOwned[id] {
			owned = append(owned, id)
		}
	}
	return owned
}

// StarStreakDiscounts returns the capped discount counter (0–5).
func (e *Engine) StarStreakDiscounts() int { return e.ledger.StarStreakDiscounts }
