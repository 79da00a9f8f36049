package shop

import "github.com/nathoo/streakcore/types"

// The three shop lists. Loaded once into immutable tables; nothing
// mutates them after init.

// Upgrades are run-scoped: they reset on loss and on prestige, and their
// cost grows per repeat purchase.
var Upgrades = []types.ShopItem{
	{
		ID:          "free_consonant",
		Label:       "Free Consonant",
		Description: "A random consonant is revealed each round",
		Kind:        types.KindUpgrade,
		Cost:        50,
		CostGrowth:  2.0,
		Currency:    types.CurrencyMoney,
		MaxOwned:    2,
	},
	{
		ID:          "guaranteed_consonant",
		Label:       "Guaranteed Consonant",
		Description: "Free consonant is guaranteed to be in the phrase",
		Kind:        types.KindUpgrade,
		Cost:        100,
		CostGrowth:  2.0,
		Currency:    types.CurrencyMoney,
		MaxOwned:    2,
		Requires:    "free_consonant",
	},
	{
		ID:          "free_vowel",
		Label:       "Free Vowel",
		Description: "A random vowel is revealed each round",
		Kind:        types.KindUpgrade,
		Cost:        100,
		CostGrowth:  2.0,
		Currency:    types.CurrencyMoney,
		MaxOwned:    1,
	},
	{
		ID:          "guaranteed_vowel",
		Label:       "Guaranteed Vowel",
		Description: "Free vowel is guaranteed to be in the phrase",
		Kind:        types.KindUpgrade,
		Cost:        200,
		CostGrowth:  2.0,
		Currency:    types.CurrencyMoney,
		MaxOwned:    1,
		Requires:    "free_vowel",
	},
	{
		ID:          "extra_strike",
		Label:       "Extra Strike",
		Description: "Gain an extra strike before losing",
		Kind:        types.KindUpgrade,
		Cost:        250,
		CostGrowth:  2.0,
		Currency:    types.CurrencyMoney,
		MaxOwned:    2,
	},
}

// Consumables apply instantly on purchase and are always re-purchasable.
// Only a purchase counter is kept, for cost-growth lookup.
var Consumables = []types.ShopItem{
	{
		ID:          "reveal_consonant",
		Label:       "Reveal Consonant",
		Description: "Reveals a random hidden consonant in the phrase",
		Kind:        types.KindConsumable,
		Cost:        25,
		CostGrowth:  1.2,
		Currency:    types.CurrencyMoney,
	},
	{
		ID:          "reveal_vowel",
		Label:       "Reveal Vowel",
		Description: "Reveals a random hidden vowel in the phrase",
		Kind:        types.KindConsumable,
		Cost:        50,
		CostGrowth:  1.2,
		Currency:    types.CurrencyMoney,
	},
	{
		ID:          "eliminate_letters",
		Label:       "Eliminate 3 Letters",
		Description: "Removes 3 wrong letters from the alphabet",
		Kind:        types.KindConsumable,
		Cost:        25,
		Currency:    types.CurrencyMoney,
	},
	{
		ID:          "free_guess",
		Label:       "Free Guess",
		Description: "Next guess costs nothing, right or wrong",
		Kind:        types.KindConsumable,
		Cost:        50,
		Currency:    types.CurrencyMoney,
	},
	{
		ID:          "bonus_strike",
		Label:       "Bonus Strike",
		Description: "Absorbs one wrong guess before a real strike",
		Kind:        types.KindConsumable,
		Cost:        75,
		Currency:    types.CurrencyMoney,
	},
}

// PrestigeItems are star-priced and permanent. One-time items disappear
// once bought; star_streak_discount is a capped counter.
var PrestigeItems = []types.ShopItem{
	{
		ID:          "old_man",
		Label:       "The Old Man",
		Description: "Rescue a mysterious stranger.",
		Kind:        types.KindPrestige,
		Cost:        5,
		Currency:    types.CurrencyStars,
	},
	{
		ID:          "topic_blue",
		Label:       "Blue",
		Description: "Unlocks a new Blue category of puzzles.",
		Kind:        types.KindPrestige,
		Cost:        2,
		Currency:    types.CurrencyStars,
		Requires:    "old_man",
	},
	{
		ID:          "topic_green",
		Label:       "Green",
		Description: "Unlocks a new Green category of puzzles.",
		Kind:        types.KindPrestige,
		Cost:        4,
		Currency:    types.CurrencyStars,
		Requires:    "topic_blue",
	},
	{
		ID:          "topic_yellow",
		Label:       "Yellow",
		Description: "Unlocks a new Yellow category of puzzles.",
		Kind:        types.KindPrestige,
		Cost:        6,
		Currency:    types.CurrencyStars,
		Requires:    "topic_green",
	},
	{
		ID:          "topic_red",
		Label:       "Red",
		Description: "Unlocks a new Red category of puzzles.",
		Kind:        types.KindPrestige,
		Cost:        8,
		Currency:    types.CurrencyStars,
		Requires:    "topic_yellow",
	},
	{
		ID:          "topic_purple",
		Label:       "Purple",
		Description: "Unlocks a new Purple category of puzzles.",
		Kind:        types.KindPrestige,
		Cost:        10,
		Currency:    types.CurrencyStars,
		Requires:    "topic_red",
	},
	{
		ID:          "star_streak_discount",
		Label:       "Star Discount",
		Description: "Each star is earned faster.",
		Kind:        types.KindPrestige,
		Cost:        3,
		Currency:    types.CurrencyStars,
		MaxOwned:    5,
	},
}

// ColorTopicIDs lists the topic-unlock prestige items in purchase order.
var ColorTopicIDs = []string{
	"topic_blue", "topic_green", "topic_yellow", "topic_red", "topic_purple",
}

var itemIndex = buildItemIndex()

func buildItemIndex() map[string]types.ShopItem {
	idx := map[string]types.ShopItem{}
	for _, list := range [][]types.ShopItem{Upgrades, Consumables, PrestigeItems} {
		for _, item := range list {
			idx[item.ID] = item
		}
	}
	return idx
}

// ItemByID looks an item up across all three lists.
func ItemByID(id string) (types.ShopItem, bool) {
	item, ok := itemIndex[id]
	return item, ok
}
