// Package types defines the shared data structures for the StreakCore engine.
// This package contains only type definitions — no logic beyond String() on enums.
package types

// Puzzle is one catalog entry: an uppercase phrase and its topic name.
type Puzzle struct {
	Text  string
	Topic string
}

// TopicDef is the base definition of a puzzle topic.
type TopicDef struct {
	Name   string
	Free   map[rune]bool // letters the difficulty scorer treats as free
	Unlock string        // prestige item id gating this topic ("" = always in play)
}

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Intro   string
}

// Catalog is the immutable content loaded at startup.
type Catalog struct {
	Game    GameDef
	Topics  map[string]TopicDef
	Puzzles []Puzzle
}

// GuessOutcome is the result of processing one letter guess.
type GuessOutcome int

const (
	GuessSolved      GuessOutcome = iota // phrase fully revealed
	GuessCorrect                         // letter matched, phrase not done
	GuessBlocked                         // miss absorbed by an active free guess
	GuessBonusStrike                     // miss absorbed by a bonus strike
	GuessStrike                          // miss, real strike added
	GuessGameOver                        // miss, strike cap reached
)

func (g GuessOutcome) String() string {
	switch g {
	case GuessSolved:
		return "solved"
	case GuessCorrect:
		return "correct"
	case GuessBlocked:
		return "blocked"
	case GuessBonusStrike:
		return "bonus_strike"
	case GuessStrike:
		return "strike"
	case GuessGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ItemKind separates the three shop lists, which share one schema but
// differ in ownership semantics.
type ItemKind int

const (
	KindUpgrade    ItemKind = iota // run-scoped, capped, cost grows per purchase
	KindConsumable                 // instant effect, unlimited, never owned
	KindPrestige                   // star-priced, permanent across runs
)

func (k ItemKind) String() string {
	switch k {
	case KindUpgrade:
		return "upgrade"
	case KindConsumable:
		return "consumable"
	case KindPrestige:
		return "prestige"
	default:
		return "unknown"
	}
}

// Currency identifies what a shop item is priced in.
type Currency int

const (
	CurrencyMoney Currency = iota
	CurrencyStars
)

// ShopItem is one immutable catalog entry.
//
// MaxOwned semantics depend on Kind: for upgrades it is the purchase cap;
// for prestige items 0 means one-time (the item disappears once bought)
// and a positive value means a capped repeatable counter; consumables
// always use 0 (unlimited).
type ShopItem struct {
	ID          string
	Label       string
	Description string
	Kind        ItemKind
	Cost        int
	CostGrowth  float64 // multiplier per prior purchase; 0 = flat cost
	Currency    Currency
	MaxOwned    int
	Requires    string // item id that must be owned before this appears
}

// WinResult reports what a scored round win produced.
type WinResult struct {
	Advanced  bool // false = pool exhausted, run is complete
	Earned    int  // money awarded
	Milestone int  // milestone value banked this win (0 = none)
}
