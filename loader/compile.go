// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/streakcore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawTopic holds a topic table before compilation.
type rawTopic struct {
	name  string
	table *lua.LTable
}

// rawPuzzle holds a puzzle table before compilation.
type rawPuzzle struct {
	text  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// compile converts all collected Lua data into a Catalog.
func compile(coll *collector) (*types.Catalog, error) {
	cat := &types.Catalog{
		Topics: map[string]types.TopicDef{},
	}

	// Game.
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	cat.Game = types.GameDef{
		Title:   getString(coll.game, "title"),
		Author:  getString(coll.game, "author"),
		Version: getString(coll.game, "version"),
		Intro:   getString(coll.game, "intro"),
	}

	// Topics.
	for _, raw := range coll.topics {
		if _, exists := cat.Topics[raw.name]; exists {
			return nil, fmt.Errorf("duplicate topic %q", raw.name)
		}
		cat.Topics[raw.name] = types.TopicDef{
			Name:   raw.name,
			Free:   letterSet(strings.ToUpper(getString(raw.table, "free"))),
			Unlock: getString(raw.table, "unlock"),
		}
	}

	// Puzzles. Phrases are normalized to uppercase.
	for _, raw := range coll.puzzles {
		cat.Puzzles = append(cat.Puzzles, types.Puzzle{
			Text:  strings.ToUpper(strings.TrimSpace(raw.text)),
			Topic: getString(raw.table, "topic"),
		})
	}

	return cat, nil
}

// letterSet converts a string of letters to a set. Empty string → nil.
func letterSet(s string) map[rune]bool {
	if s == "" {
		return nil
	}
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}
