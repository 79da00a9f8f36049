// Package pool manages the shuffled, unseen, tier-filtered subset of
// the puzzle catalog for the active run.
package pool

import (
	"github.com/nathoo/streakcore/engine/difficulty"
	"github.com/nathoo/streakcore/types"
)

// Shuffler is the randomness the pool needs; the engine's RNG satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Filter supplies the run context a rebuild depends on.
type Filter struct {
	Seen     map[string]bool          // puzzle texts already played this run
	Unlocked func(itemID string) bool // prestige-item ownership, for gated topics
	Streak   int
}

// Pool holds the remaining puzzles, consumed without replacement.
type Pool struct {
	remaining []types.Puzzle
	tier      int
}

// New creates a pool built for the given filter.
func New(cat *types.Catalog, f Filter, rng Shuffler) *Pool {
	p := &Pool{tier: difficulty.Tier(f.Streak)}
	p.Rebuild(cat, f, rng)
	return p
}

// Rebuild refills the pool from the catalog. Three fallback levels
// guarantee a non-empty pool whenever the catalog has any playable
// puzzle: in-band unseen puzzles, then any unseen puzzle, then the
// whole playable catalog.
func (p *Pool) Rebuild(cat *types.Catalog, f Filter, rng Shuffler) {
	minDiff, maxDiff := difficulty.Range(f.Streak)

	var pool []types.Puzzle
	for _, pz := range cat.Puzzles {
		if !p.topicInPlay(cat, pz.Topic, f) || f.Seen[pz.Text] {
			continue
		}
		score := difficulty.Score(pz.Text, cat.Topics[pz.Topic].Free)
		if score >= minDiff && score <= maxDiff {
			pool = append(pool, pz)
		}
	}
	if len(pool) == 0 {
		for _, pz := range cat.Puzzles {
			if p.topicInPlay(cat, pz.Topic, f) && !f.Seen[pz.Text] {
				pool = append(pool, pz)
			}
		}
	}
	if len(pool) == 0 {
		for _, pz := range cat.Puzzles {
			if p.topicInPlay(cat, pz.Topic, f) {
				pool = append(pool, pz)
			}
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	p.remaining = pool
}

// topicInPlay reports whether a topic's puzzles are eligible: either
// ungated or its unlock item is owned.
func (p *Pool) topicInPlay(cat *types.Catalog, topic string, f Filter) bool {
	def := cat.Topics[topic]
	if def.Unlock == "" {
		return true
	}
	return f.Unlocked != nil && f.Unlocked(def.Unlock)
}

// MaybeRebuild recomputes the tier for the streak and rebuilds when it
// has changed since the last build. Called after every win, before
// drawing the next puzzle. Reports whether a rebuild happened.
func (p *Pool) MaybeRebuild(cat *types.Catalog, f Filter, rng Shuffler) bool {
	newTier := difficulty.Tier(f.Streak)
	if newTier == p.tier {
		return false
	}
	p.tier = newTier
	p.Rebuild(cat, f, rng)
	return true
}

// DrawNext removes and returns the next puzzle. The second return is
// false when the pool is exhausted.
func (p *Pool) DrawNext() (types.Puzzle, bool) {
	if len(p.remaining) == 0 {
		return types.Puzzle{}, false
	}
	last := len(p.remaining) - 1
	pz := p.remaining[last]
	p.remaining = p.remaining[:last]
	return pz, true
}

// Len returns how many puzzles remain.
func (p *Pool) Len() int { return len(p.remaining) }

// Tier returns the tier the pool was last built for.
func (p *Pool) Tier() int { return p.tier }
