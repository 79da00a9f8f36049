package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MinimalGame(t *testing.T) {
	cat, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cat.Game.Title != "Minimal Test Game" {
		t.Errorf("Title = %q, want %q", cat.Game.Title, "Minimal Test Game")
	}
	if cat.Game.Author != "Tester" {
		t.Errorf("Author = %q", cat.Game.Author)
	}

	if len(cat.Topics) != 3 {
		t.Errorf("expected 3 topics, got %d", len(cat.Topics))
	}
	if len(cat.Puzzles) != 4 {
		t.Errorf("expected 4 puzzles, got %d", len(cat.Puzzles))
	}
}

func TestLoad_UppercasesPhrases(t *testing.T) {
	cat, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	found := false
	for _, p := range cat.Puzzles {
		if p.Text == "PIECE OF CAKE" {
			found = true
			if p.Topic != "Phrases" {
				t.Errorf("topic = %q, want Phrases", p.Topic)
			}
		}
		if p.Text != strings.ToUpper(p.Text) {
			t.Errorf("phrase not uppercased: %q", p.Text)
		}
	}
	if !found {
		t.Error("lowercase source phrase should load as PIECE OF CAKE")
	}
}

func TestLoad_FreeLettersUppercased(t *testing.T) {
	cat, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gerunds := cat.Topics["Gerunds"]
	for _, r := range "ING" {
		if !gerunds.Free[r] {
			t.Errorf("free letter %c missing", r)
		}
	}
	if len(gerunds.Free) != 3 {
		t.Errorf("free set size = %d, want 3", len(gerunds.Free))
	}
}

func TestLoad_TopicUnlock(t *testing.T) {
	cat, err := Load("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cat.Topics["Blue Things"].Unlock; got != "topic_blue" {
		t.Errorf("Unlock = %q, want topic_blue", got)
	}
	if got := cat.Topics["Phrases"].Unlock; got != "" {
		t.Errorf("ungated topic Unlock = %q, want empty", got)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	_, err := Load("testdata/badrefs")
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}

	wantErrors := []string{
		"undefined topic",
		"letters A-Z",
		"duplicate puzzle",
		"does not name a prestige shop item",
	}
	for _, want := range wantErrors {
		found := false
		for _, e := range ve.Errors {
			if strings.Contains(e, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing error containing %q in %v", want, ve.Errors)
		}
	}
}

func TestLoad_SandboxRejectsFileAccess(t *testing.T) {
	if _, err := Load("testdata/unsafe"); err == nil {
		t.Fatal("dofile should not be callable in the sandbox")
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for a directory with no .lua files")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	if _, err := Load("testdata/does-not-exist"); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestLoad_RequiresGameBlock(t *testing.T) {
	dir := t.TempDir()
	content := `Topic "Phrases" {}` + "\n" + `Puzzle "HELLO" { topic = "Phrases" }` + "\n"
	if err := os.WriteFile(filepath.Join(dir, "puzzles.lua"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "Game{}") {
		t.Fatalf("expected missing Game{} error, got %v", err)
	}
}

func TestSortedLuaFiles_GameFirst(t *testing.T) {
	got := sortedLuaFiles([]string{"puzzles.lua", "game.lua", "extra.lua"})
	if got[0] != "game.lua" {
		t.Errorf("game.lua should sort first, got %v", got)
	}
	if got[1] != "extra.lua" || got[2] != "puzzles.lua" {
		t.Errorf("rest should stay alphabetical: %v", got)
	}
}
