package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathoo/streakcore/engine"
	"github.com/nathoo/streakcore/types"
)

// testCatalog holds one puzzle so tests know exactly what is in play.
func testCatalog() *types.Catalog {
	return &types.Catalog{
		Game: types.GameDef{
			Title:   "Test Game",
			Author:  "Test",
			Version: "1.0",
			Intro:   "Welcome to the test.",
		},
		Topics: map[string]types.TopicDef{
			"Test": {Name: "Test"},
		},
		Puzzles: []types.Puzzle{
			{Text: "AB", Topic: "Test"},
		},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	eng := engine.New(testCatalog(), 42)
	var out bytes.Buffer
	c := &CLI{
		Engine: eng,
		In:     strings.NewReader(input),
		Out:    &out,
	}
	return c, &out
}

func TestCLI_IntroAndBoard(t *testing.T) {
	c, out := newTestCLI(t, "/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Welcome to the test.") {
		t.Error("expected intro text in output")
	}
	if !strings.Contains(output, "Topic: Test") {
		t.Error("expected topic line in output")
	}
	if !strings.Contains(output, "_ _") {
		t.Error("expected hidden mask in output")
	}
}

func TestCLI_CorrectGuessRevealsLetter(t *testing.T) {
	c, out := newTestCLI(t, "a\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "A _") {
		t.Errorf("expected partially revealed mask, got:\n%s", out.String())
	}
}

func TestCLI_MissReportsStrike(t *testing.T) {
	c, out := newTestCLI(t, "z\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Strike 1 of 3") {
		t.Errorf("expected strike report, got:\n%s", out.String())
	}
}

func TestCLI_RepeatGuessRejected(t *testing.T) {
	c, out := newTestCLI(t, "a\na\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Already guessed A") {
		t.Errorf("expected repeat-guess message, got:\n%s", out.String())
	}
}

func TestCLI_SolveAndCatalogComplete(t *testing.T) {
	c, out := newTestCLI(t, "a\nb\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Solved: AB") {
		t.Error("expected solve announcement")
	}
	if !strings.Contains(output, "Streak: 1") {
		t.Error("expected streak update")
	}
	if !strings.Contains(output, "Every puzzle is solved") {
		t.Error("one-puzzle catalog should complete after the solve")
	}
}

func TestCLI_NewRunAfterComplete(t *testing.T) {
	c, out := newTestCLI(t, "a\nb\nnew\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "A new run begins.") {
		t.Error("expected new run announcement")
	}
	// Initial board, board after the correct guess, fresh board after
	// the reset.
	if strings.Count(output, "Topic: Test") < 3 {
		t.Error("expected a fresh board for the new run")
	}
}

func TestCLI_GameOverStartsFreshRun(t *testing.T) {
	c, out := newTestCLI(t, "x\ny\nz\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Too many strikes") {
		t.Error("expected game over message")
	}
	if !strings.Contains(output, "Final streak: 0") {
		t.Error("expected final streak report")
	}
	if !strings.Contains(output, "A new run begins.") {
		t.Error("loss should roll straight into a new run")
	}
}

func TestCLI_ShopListsItems(t *testing.T) {
	c, out := newTestCLI(t, "shop\n/quit\n")
	c.Run()

	output := out.String()
	for _, id := range []string{"free_consonant", "extra_strike", "reveal_vowel"} {
		if !strings.Contains(output, id) {
			t.Errorf("expected %s in shop listing", id)
		}
	}
	// No stars yet: the prestige list stays hidden.
	if strings.Contains(output, "old_man") {
		t.Error("prestige list should be hidden before any star exists")
	}
}

func TestCLI_BuyWithoutFunds(t *testing.T) {
	c, out := newTestCLI(t, "buy extra_strike\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Can't buy Extra Strike") {
		t.Errorf("expected purchase rejection, got:\n%s", out.String())
	}
}

func TestCLI_BuyUnknownItem(t *testing.T) {
	c, out := newTestCLI(t, "buy nonsense\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "No such item: nonsense") {
		t.Error("expected unknown item message")
	}
}

func TestCLI_PrestigeGate(t *testing.T) {
	c, out := newTestCLI(t, "prestige\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Prestige needs a streak of 50") {
		t.Error("expected prestige gate message")
	}
}

func TestCLI_Stats(t *testing.T) {
	c, out := newTestCLI(t, "stats\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "Streak: 0") {
		t.Error("expected streak in stats")
	}
	if !strings.Contains(output, "Money: $0") {
		t.Error("expected money in stats")
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	c, out := newTestCLI(t, "dance\n/quit\n")
	c.Run()

	if !strings.Contains(out.String(), "Unknown command: dance") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_HelpAndState(t *testing.T) {
	c, out := newTestCLI(t, "/help\n/state\n/quit\n")
	c.Run()

	output := out.String()
	if !strings.Contains(output, "buy <item-id>") {
		t.Error("expected help text")
	}
	if !strings.Contains(output, "Seed: 42") {
		t.Error("expected seed in state dump")
	}
}

func TestCLI_CommentLinesSkipped(t *testing.T) {
	c, out := newTestCLI(t, "# script comment\n/quit\n")
	c.Run()

	if strings.Contains(out.String(), "Unknown command") {
		t.Error("comment lines should be ignored")
	}
}

func TestSpaced(t *testing.T) {
	tests := []struct {
		mask string
		want string
	}{
		{"__", "_ _"},
		{"A_", "A _"},
		{"__ __", "_ _    _ _"},
	}
	for _, tt := range tests {
		if got := spaced(tt.mask); got != tt.want {
			t.Errorf("spaced(%q) = %q, want %q", tt.mask, got, tt.want)
		}
	}
}
