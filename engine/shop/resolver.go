// Package shop holds the static item catalog and the purchase resolver:
// cost growth, ownership caps, prerequisite gating, and the live-state
// checks that disable consumables.
package shop

import (
	"math"

	"github.com/nathoo/streakcore/types"
)

// Wallet is the funding side of a purchase. Spend methods deduct and
// report success; a failed spend deducts nothing.
type Wallet interface {
	Money() int
	Stars() int
	Spend(amount int) bool
	SpendStars(amount int) bool
}

// Effects is the gameplay surface consumables act on. The engine
// implements it; the resolver invokes it only after a successful debit.
type Effects interface {
	RevealConsonant()
	RevealVowel()
	EliminateLetters()
	GrantFreeGuess()
	GrantBonusStrike()
}

// GameState exposes the live round state that gates consumables before
// any affordability check.
type GameState interface {
	FreeGuessActive() bool
	BonusStrikes() int
	StrikeCount() int
	HiddenConsonants() int
	HiddenVowels() int
	EliminableLetters() int
}

// BonusStrikeCap is the most unspent bonus strikes a player can hold.
// Healing a used strike is allowed past the cap.
const BonusStrikeCap = 3

// Ledger tracks ownership. Upgrade and consumable counts are run-scoped;
// prestige ownership and the discount counter are permanent.
type Ledger struct {
	UpgradeCounts       map[string]int
	ConsumableCounts    map[string]int
	PrestigeOwned       map[string]bool
	StarStreakDiscounts int // 0..5
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		UpgradeCounts:    map[string]int{},
		ConsumableCounts: map[string]int{},
		PrestigeOwned:    map[string]bool{},
	}
}

// ResetRun clears the run-scoped counts on a loss or prestige. Prestige
// ownership and the discount counter survive.
func (l *Ledger) ResetRun() {
	l.UpgradeCounts = map[string]int{}
	l.ConsumableCounts = map[string]int{}
}

// OwnedCount returns how many times an item has been purchased, under
// that item kind's counting rules.
func (l *Ledger) OwnedCount(item types.ShopItem) int {
	switch item.Kind {
	case types.KindUpgrade:
		return l.UpgradeCounts[item.ID]
	case types.KindConsumable:
		return l.ConsumableCounts[item.ID]
	case types.KindPrestige:
		if item.ID == "star_streak_discount" {
			return l.StarStreakDiscounts
		}
		if l.PrestigeOwned[item.ID] {
			return 1
		}
		return 0
	}
	return 0
}

// NextCost computes the price of the next purchase:
// cost × growth^owned, rounded; flat when the item has no growth.
func NextCost(item types.ShopItem, owned int) int {
	if item.CostGrowth == 0 {
		return item.Cost
	}
	return int(math.Round(float64(item.Cost) * math.Pow(item.CostGrowth, float64(owned))))
}

// Listing is one shop row prepared for rendering.
type Listing struct {
	Item     types.ShopItem
	Owned    int
	NextCost int
	Maxed    bool
	Disabled bool // maxed, prerequisite unmet, or live-state gated
	Afford   bool
}

// Resolver applies the purchase rules against a ledger, a wallet, and
// the live game state.
type Resolver struct {
	Ledger  *Ledger
	Wallet  Wallet
	Game    GameState
	Effects Effects
}

// visible reports whether an item appears in its list at all: its
// prerequisite must be owned, and sold-out prestige items disappear.
func (r *Resolver) visible(item types.ShopItem) bool {
	if item.Requires != "" {
		prereq, ok := ItemByID(item.Requires)
		if !ok || r.Ledger.OwnedCount(prereq) == 0 {
			return false
		}
	}
	if item.Kind == types.KindPrestige && r.maxed(item) {
		return false
	}
	return true
}

// maxed reports whether the item's ownership cap is reached. Prestige
// items with no cap are one-time purchases.
func (r *Resolver) maxed(item types.ShopItem) bool {
	owned := r.Ledger.OwnedCount(item)
	switch item.Kind {
	case types.KindUpgrade:
		return owned >= item.MaxOwned
	case types.KindConsumable:
		return false
	case types.KindPrestige:
		if item.MaxOwned > 0 {
			return owned >= item.MaxOwned
		}
		return owned > 0
	}
	return false
}

// prereqMet checks both gates: the list-level requires (owned at least
// once) and, for capped upgrade pairs, the per-purchase rule that the
// Nth purchase of the dependent needs N purchases of the prerequisite.
func (r *Resolver) prereqMet(item types.ShopItem) bool {
	if item.Requires == "" {
		return true
	}
	prereq, ok := ItemByID(item.Requires)
	if !ok {
		return false
	}
	prereqOwned := r.Ledger.OwnedCount(prereq)
	if prereqOwned == 0 {
		return false
	}
	if item.Kind == types.KindUpgrade {
		// Buying purchase #n+1 requires the prerequisite at n+1.
		return prereqOwned >= r.Ledger.OwnedCount(item)+1
	}
	return true
}

// ConsumableDisabled reports whether a consumable is blocked by live
// gameplay state, independent of affordability.
func (r *Resolver) ConsumableDisabled(id string) bool {
	switch id {
	case "free_guess":
		return r.Game.FreeGuessActive()
	case "bonus_strike":
		// Healing a used strike is always allowed; the cap only blocks
		// stockpiling true bonus strikes.
		if r.Game.StrikeCount() > 0 {
			return false
		}
		return r.Game.BonusStrikes() >= BonusStrikeCap
	case "reveal_consonant":
		return r.Game.HiddenConsonants() == 0
	case "reveal_vowel":
		return r.Game.HiddenVowels() == 0
	case "eliminate_letters":
		return r.Game.EliminableLetters() == 0
	}
	return false
}

// PurchaseUpgrade attempts to buy a run-scoped upgrade. Returns false,
// with no state change, if the item is unknown, maxed, gated, or
// unaffordable.
func (r *Resolver) PurchaseUpgrade(id string) bool {
	item, ok := ItemByID(id)
	if !ok || item.Kind != types.KindUpgrade {
		return false
	}
	if r.maxed(item) || !r.prereqMet(item) {
		return false
	}
	if !r.Wallet.Spend(NextCost(item, r.Ledger.OwnedCount(item))) {
		return false
	}
	r.Ledger.UpgradeCounts[id]++
	return true
}

// PurchaseConsumable attempts to buy a consumable and, on success,
// applies its effect immediately. The debit happens before the effect so
// a rejected purchase never mutates gameplay state.
func (r *Resolver) PurchaseConsumable(id string) bool {
	item, ok := ItemByID(id)
	if !ok || item.Kind != types.KindConsumable {
		return false
	}
	if r.ConsumableDisabled(id) {
		return false
	}
	if !r.Wallet.Spend(NextCost(item, r.Ledger.OwnedCount(item))) {
		return false
	}
	r.Ledger.ConsumableCounts[id]++

	switch id {
	case "reveal_consonant":
		r.Effects.RevealConsonant()
	case "reveal_vowel":
		r.Effects.RevealVowel()
	case "eliminate_letters":
		r.Effects.EliminateLetters()
	case "free_guess":
		r.Effects.GrantFreeGuess()
	case "bonus_strike":
		r.Effects.GrantBonusStrike()
	}
	return true
}

// PurchasePrestigeItem attempts to buy a permanent star-priced item.
func (r *Resolver) PurchasePrestigeItem(id string) bool {
	item, ok := ItemByID(id)
	if !ok || item.Kind != types.KindPrestige {
		return false
	}
	if r.maxed(item) || !r.prereqMet(item) {
		return false
	}
	if !r.Wallet.SpendStars(NextCost(item, r.Ledger.OwnedCount(item))) {
		return false
	}
	if item.ID == "star_streak_discount" {
		if r.Ledger.StarStreakDiscounts < item.MaxOwned {
			r.Ledger.StarStreakDiscounts++
		}
		return true
	}
	r.Ledger.PrestigeOwned[id] = true
	return true
}

// Listings prepares the visible rows of one shop list for rendering.
func (r *Resolver) Listings(kind types.ItemKind) []Listing {
	var source []types.ShopItem
	switch kind {
	case types.KindUpgrade:
		source = Upgrades
	case types.KindConsumable:
		source = Consumables
	case types.KindPrestige:
		source = PrestigeItems
	}

	var rows []Listing
	for _, item := range source {
		if !r.visible(item) {
			continue
		}
		owned := r.Ledger.OwnedCount(item)
		cost := NextCost(item, owned)
		maxed := r.maxed(item)
		disabled := maxed || !r.prereqMet(item)
		if item.Kind == types.KindConsumable && r.ConsumableDisabled(item.ID) {
			disabled = true
		}
		afford := r.Wallet.Money() >= cost
		if item.Currency == types.CurrencyStars {
			afford = r.Wallet.Stars() >= cost
		}
		rows = append(rows, Listing{
			Item:     item,
			Owned:    owned,
			NextCost: cost,
			Maxed:    maxed,
			Disabled: disabled,
			Afford:   afford,
		})
	}
	return rows
}
