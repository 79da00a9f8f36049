package tui

import (
	"strings"
	"testing"

	"github.com/nathoo/streakcore/engine"
	"github.com/nathoo/streakcore/types"
)

func testCatalog() *types.Catalog {
	return &types.Catalog{
		Game: types.GameDef{
			Title:   "Test Game",
			Author:  "Test",
			Version: "1.0",
		},
		Topics: map[string]types.TopicDef{
			"Test": {Name: "Test"},
		},
		Puzzles: []types.Puzzle{
			{Text: "AB", Topic: "Test"},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(engine.New(testCatalog(), 42))
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Solved: BLUE MOON", kindSolved},
		{"+$12. Streak: 3.", kindReward},
		{"Milestone 10 reached! A star waits in the buffer.", kindReward},
		{"Prestiged! 2 star(s) banked. Total stars: 2.", kindReward},
		{"Z is not in the phrase. Strike 1 of 3.", kindStrike},
		{"Too many strikes. The run is over.", kindStrike},
		{"[Already guessed A.]", kindSystem},
		{"E is in the phrase.", kindInfo},
		{"", kindInfo},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestSpacedMask(t *testing.T) {
	tests := []struct {
		mask string
		want string
	}{
		{"__", "_ _"},
		{"A_", "A _"},
		{"__ __", "_ _    _ _"},
	}
	for _, tt := range tests {
		if got := spacedMask(tt.mask); got != tt.want {
			t.Errorf("spacedMask(%q) = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestDispatch_GuessFlow(t *testing.T) {
	m := newTestModel(t)

	lines, system := m.dispatch("z")
	if system {
		t.Error("a strike is gameplay output, not a system message")
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "Strike 1 of 3") {
		t.Errorf("miss output = %v", lines)
	}

	lines, _ = m.dispatch("a")
	if len(lines) != 1 || !strings.Contains(lines[0], "A is in the phrase") {
		t.Errorf("hit output = %v", lines)
	}

	lines, system = m.dispatch("a")
	if !system || !strings.Contains(lines[0], "Already guessed A") {
		t.Errorf("repeat guess output = %v system = %v", lines, system)
	}
}

func TestDispatch_SolveCompletesCatalog(t *testing.T) {
	m := newTestModel(t)

	m.dispatch("a")
	lines, _ := m.dispatch("b")

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Solved: AB") {
		t.Errorf("expected solve announcement in %q", joined)
	}
	if !strings.Contains(joined, "Every puzzle is solved") {
		t.Errorf("one-puzzle catalog should complete, got %q", joined)
	}

	lines, _ = m.dispatch("new")
	if !strings.Contains(strings.Join(lines, "\n"), "A new run begins.") {
		t.Errorf("new run output = %v", lines)
	}
}

func TestDispatch_ShopAndBuy(t *testing.T) {
	m := newTestModel(t)

	lines, _ := m.dispatch("shop")
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "free_consonant") {
		t.Errorf("expected upgrades in shop output:\n%s", joined)
	}
	if strings.Contains(joined, "old_man") {
		t.Error("prestige list should be hidden before any star exists")
	}

	lines, system := m.dispatch("buy extra_strike")
	if !system || !strings.Contains(lines[0], "Can't buy Extra Strike") {
		t.Errorf("unfunded purchase output = %v", lines)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	m := newTestModel(t)

	lines, system := m.dispatch("dance")
	if !system || !strings.Contains(lines[0], "Unknown command: dance") {
		t.Errorf("output = %v system = %v", lines, system)
	}
}

func TestHandleMeta(t *testing.T) {
	m := newTestModel(t)

	lines, quit := m.handleMeta("/help")
	if quit {
		t.Error("/help should not quit")
	}
	if !strings.Contains(strings.Join(lines, "\n"), "buy <item-id>") {
		t.Error("expected help text")
	}

	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("/quit should quit")
	}

	lines, _ = m.handleMeta("/state")
	if !strings.Contains(strings.Join(lines, "\n"), "Seed: 42") {
		t.Errorf("state output = %v", lines)
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("a")
	h.Push("shop")

	if got, ok := h.Prev(); !ok || got != "shop" {
		t.Errorf("Prev = %q ok=%v, want shop", got, ok)
	}
	if got, ok := h.Prev(); !ok || got != "a" {
		t.Errorf("Prev = %q ok=%v, want a", got, ok)
	}
	// At the oldest entry, Prev stays put.
	if got, _ := h.Prev(); got != "a" {
		t.Errorf("Prev at oldest = %q, want a", got)
	}
}

func TestHistory_NextReturnsToFreshInput(t *testing.T) {
	h := NewHistory(5)
	h.Push("a")
	h.Push("b")

	h.Prev() // b
	h.Prev() // a

	if got, ok := h.Next(); !ok || got != "b" {
		t.Errorf("Next = %q ok=%v, want b", got, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("Next past the newest entry should report fresh input")
	}
}

func TestHistory_SkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("a")
	h.Push("a")
	h.Push("b")

	h.Prev() // b
	if got, _ := h.Prev(); got != "a" {
		t.Errorf("expected single a entry, got %q", got)
	}
}

func TestHistory_CapsSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("one")
	h.Push("two")
	h.Push("three")

	if len(h.entries) != 2 {
		t.Errorf("history size = %d, want 2", len(h.entries))
	}
	if h.entries[0] != "two" {
		t.Errorf("oldest entry = %q, want two", h.entries[0])
	}
}
