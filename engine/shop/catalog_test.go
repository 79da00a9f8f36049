package shop

import (
	"testing"

	"github.com/nathoo/streakcore/types"
)

func TestItemByID(t *testing.T) {
	item, ok := ItemByID("free_guess")
	if !ok {
		t.Fatal("free_guess should exist")
	}
	if item.Kind != types.KindConsumable || item.Cost != 50 {
		t.Errorf("free_guess = %+v", item)
	}

	if _, ok := ItemByID("nonsense"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestCatalog_IDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, list := range [][]types.ShopItem{Upgrades, Consumables, PrestigeItems} {
		for _, item := range list {
			if seen[item.ID] {
				t.Errorf("duplicate item id %q", item.ID)
			}
			seen[item.ID] = true
		}
	}
}

func TestCatalog_KindsMatchLists(t *testing.T) {
	for _, item := range Upgrades {
		if item.Kind != types.KindUpgrade {
			t.Errorf("%s in Upgrades has kind %v", item.ID, item.Kind)
		}
		if item.MaxOwned <= 0 {
			t.Errorf("upgrade %s needs a purchase cap", item.ID)
		}
	}
	for _, item := range Consumables {
		if item.Kind != types.KindConsumable {
			t.Errorf("%s in Consumables has kind %v", item.ID, item.Kind)
		}
	}
	for _, item := range PrestigeItems {
		if item.Kind != types.KindPrestige {
			t.Errorf("%s in PrestigeItems has kind %v", item.ID, item.Kind)
		}
		if item.Currency != types.CurrencyStars {
			t.Errorf("prestige item %s should be star-priced", item.ID)
		}
	}
}

func TestCatalog_RequiresResolve(t *testing.T) {
	for _, list := range [][]types.ShopItem{Upgrades, Consumables, PrestigeItems} {
		for _, item := range list {
			if item.Requires == "" {
				continue
			}
			if _, ok := ItemByID(item.Requires); !ok {
				t.Errorf("%s requires unknown item %q", item.ID, item.Requires)
			}
		}
	}
}

func TestColorTopicIDs_AllPrestige(t *testing.T) {
	for _, id := range ColorTopicIDs {
		item, ok := ItemByID(id)
		if !ok {
			t.Fatalf("color topic %q missing from catalog", id)
		}
		if item.Kind != types.KindPrestige {
			t.Errorf("%s kind = %v, want prestige", id, item.Kind)
		}
	}
}
