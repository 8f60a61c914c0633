// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// lz77State holds the position and lazy-matching hold for the LZ77 driver
// (spec §4.F). It is reset to the "nothing held" state at the start of every
// block.
type lz77State struct {
	pos      int
	prevLen  int
	prevDist int
}

func newLZ77State(pos int) lz77State {
	return lz77State{pos: pos, prevLen: 2, prevDist: 0}
}

func (s *lz77State) holding() bool { return s.prevLen >= minMatchLen }

// insertHash adds win's 3-byte prefix at pos to the hash chain, if at least
// 3 bytes are available there.
func insertHash(win *window, chain *hashChain, pos int) {
	if pos+minMatchLen <= win.end() {
		chain.add(pos, hash3(win.slice(pos, pos+minMatchLen)))
	}
}

// insertHashRange inserts positions [from, to) (both absolute), used when a
// committed match causes the driver to skip ahead without visiting every
// position through the main loop.
func insertHashRange(win *window, chain *hashChain, from, to int) {
	for p := from; p < to; p++ {
		insertHash(win, chain, p)
	}
}

// searchBudget derives max_hash_checks for the current held length: a good
// enough match shortens the remaining search, mirroring the teacher's
// goodLen-triggered chain shrink in compress9x.go.
func searchBudget(cfg levelParams, heldLen int) int {
	if heldLen >= cfg.goodLength {
		budget := cfg.maxHashChecks >> 2
		if budget < 1 {
			budget = 1
		}
		return budget
	}
	return cfg.maxHashChecks
}

// driveLZ77 processes positions in [state.pos, limit), or until blk fills,
// whichever comes first (spec §4.F, §4.G). It never commits a held match on
// early exit for a full block; the caller must call flushPending first if it
// wants the hold resolved before closing the block. Returns true if it
// stopped because blk filled rather than reaching limit.
func driveLZ77(win *window, chain *hashChain, cfg levelParams, blk *blockBuffer, state *lz77State, limit int) bool {
	for state.pos < limit {
		if blk.full() {
			return true
		}
		step(win, chain, cfg, blk, state)
	}
	return false
}

// step performs exactly one position's worth of the LZ77 decision tree (spec
// §4.F steps 1-3).
func step(win *window, chain *hashChain, cfg levelParams, blk *blockBuffer, state *lz77State) {
	p := state.pos
	insertHash(win, chain, p)

	budget := searchBudget(cfg, state.prevLen)
	curLen, curDist := longestMatch(win, chain, p, state.prevLen, budget)

	switch {
	case state.prevLen >= curLen && state.prevLen >= minMatchLen:
		// Commit the held match from p-1; it already beats (or ties) what a
		// byte later would offer.
		start := p - 1
		blk.addMatch(state.prevLen, state.prevDist)
		insertHashRange(win, chain, p+1, start+state.prevLen)
		state.pos = start + state.prevLen
		state.prevLen, state.prevDist = 2, 0

	case curLen >= minMatchLen && cfg.variant == Lazy && curLen <= cfg.lazyThreshold:
		// Hold cur for one more position's comparison.
		if state.holding() {
			blk.addLiteral(win.at(p - 1))
		}
		state.prevLen, state.prevDist = curLen, curDist
		state.pos = p + 1

	case curLen >= minMatchLen:
		// Either Greedy, or cur is already long enough that lazy lookahead
		// isn't worth the cost (spec §9 lazy_threshold): commit immediately.
		if state.holding() {
			blk.addLiteral(win.at(p - 1))
		}
		blk.addMatch(curLen, curDist)
		insertHashRange(win, chain, p+1, p+curLen)
		state.pos = p + curLen
		state.prevLen, state.prevDist = 2, 0

	default:
		// No usable match at p, and nothing held from before (prevLen < 3
		// always holds here, since prevLen >= minMatchLen would have taken
		// the first branch regardless of curLen).
		blk.addLiteral(win.at(p))
		state.pos = p + 1
	}
}

// flushPending commits any held match at end-of-block or end-of-input (spec
// §4.F step 4). state.pos sits one byte past the held match's start (it was
// advanced there when the hold began); committing must advance it the rest
// of the way across the match, the same as the branch1 commit path in step.
func flushPending(blk *blockBuffer, state *lz77State) {
	if state.holding() {
		blk.addMatch(state.prevLen, state.prevDist)
		state.pos += state.prevLen - 1
		state.prevLen, state.prevDist = 2, 0
	}
}
