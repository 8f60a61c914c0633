// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// matchLength returns the length of the common prefix of the bytes at
// absolute positions p and q, capped at maxLength.
func matchLength(win *window, p, q, maxLength int) int {
	a := win.slice(p, p+maxLength)
	b := win.slice(q, q+maxLength)
	n := 0
	for n < maxLength && a[n] == b[n] {
		n++
	}
	return n
}

// longestMatch finds the best prior match for the bytes starting at the
// absolute position pos (spec §4.E). It returns (2, 0) — the "no useful
// match" signal — when pos is 0, prevLen is already at the maximum match
// length, or the hash chain for this position is empty. Otherwise it returns
// the best (length, distance) strictly longer than prevLen, or (2, 0) if
// nothing beats prevLen.
//
// Ties are broken toward the smaller distance: the chain is walked from the
// most recently inserted candidate, and a new best only replaces the current
// one on a strictly longer match.
func longestMatch(win *window, chain *hashChain, pos, prevLen, maxChecks int) (length, distance int) {
	if pos == 0 || prevLen >= maxMatchLen {
		return 2, 0
	}

	limit := pos - windowSize
	if limit < 0 {
		limit = 0
	}

	maxLength := win.end() - pos
	if maxLength > maxMatchLen {
		maxLength = maxMatchLen
	}
	if maxLength < minMatchLen {
		return 2, 0
	}

	candidate := chain.getPrev(pos)
	if candidate < 0 || candidate < limit {
		return 2, 0
	}

	bestLen := prevLen
	bestDist := 0
	last := pos

	for checks := maxChecks; candidate >= limit && checks > 0; checks-- {
		if candidate >= last {
			break // chain invariant violated (spec §3): stop rather than loop forever
		}

		// Pre-filter: only run the full comparison if the bytes at the two
		// offsets that would extend the current best already match.
		if bestLen > 0 && bestLen < maxLength &&
			(win.at(candidate+bestLen-1) != win.at(pos+bestLen-1) ||
				win.at(candidate+bestLen) != win.at(pos+bestLen)) {
			last = candidate
			candidate = chain.getPrev(candidate)
			continue
		}

		n := matchLength(win, pos, candidate, maxLength)
		if n > bestLen {
			bestLen = n
			bestDist = pos - candidate
			if n >= maxLength {
				break
			}
		}

		last = candidate
		candidate = chain.getPrev(candidate)
	}

	if bestLen > prevLen {
		return bestLen, bestDist
	}
	return 2, 0
}
