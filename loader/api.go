package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua content constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Topic "name" { ... } — curried: Topic("name") returns a function
	// that takes an options table. Options: free = "ING" (letters the
	// scorer treats as free), unlock = "topic_blue" (prestige item
	// gating this topic).
	L.SetGlobal("Topic", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.topics = append(coll.topics, rawTopic{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Puzzle "PHRASE" { topic = "name" } — curried.
	L.SetGlobal("Puzzle", L.NewFunction(func(L *lua.LState) int {
		text := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.puzzles = append(coll.puzzles, rawPuzzle{text: text, table: tbl})
			return 0
		}))
		return 1
	}))
}
