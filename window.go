// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// window is the resident byte buffer the LZ77 driver scans (spec §4.D): it
// holds both the already-matched history (up to windowSize bytes back) and
// the not-yet-matched lookahead, up to 2*windowSize bytes total.
//
// Positions passed to at/slice/append live in the same coordinate space as
// the hash chain's stored positions (hashchain.go) and the Writer's own
// counters (state.pos, blockStart): data[0] is always the current low end of
// that shared space, so window tracks no base offset of its own. This
// mirrors zlib's fill_window, which rebases the window buffer, the hash
// chain, and the scan position together on every slide rather than growing
// the window's coordinate space while the chain's positions fall behind it
// (append documents the contract this depends on).
type window struct {
	data []byte
}

func newWindow() *window {
	return &window{data: make([]byte, 0, 2*windowSize)}
}

func (w *window) reset() {
	w.data = w.data[:0]
}

// end returns the position one past the last resident byte.
func (w *window) end() int { return len(w.data) }

func (w *window) at(pos int) byte { return w.data[pos] }

// slice returns data[from:to].
func (w *window) slice(from, to int) []byte {
	return w.data[from:to]
}

// append adds p to the resident buffer. While appending p would take the
// buffer past 2*windowSize, it first compacts (drops the lower windowSize
// bytes), sliding chain in lockstep each time (spec §4.C, §4.D). pos is the
// caller's current scan
// position, in the same coordinate space as the resident buffer: compaction
// never runs unless pos is already at least windowSize past the low end
// being dropped, so a position the caller still intends to address via
// at/slice is never stranded behind the drop. Callers are expected to pass p
// no larger than windowSize at a time; if pos hasn't caught up yet, the
// resident buffer is allowed to grow past 2*windowSize rather than risk
// compacting out still-needed history.
//
// Every slide performed here also calls chain.slide(), which subtracts
// windowSize from every position the hash chain has stored. For that to
// stay consistent, every other position counter addressing this window
// (Writer.state.pos, Writer.blockStart) must be reduced by the same amount
// whenever a slide happens here — append cannot do that itself, since it
// doesn't own those counters, so it reports the total shift and leaves the
// caller (Writer.Write) to apply it.
func (w *window) append(p []byte, chain *hashChain, pos int) (shift int) {
	for len(w.data)+len(p) > 2*windowSize && pos-shift >= windowSize {
		copy(w.data, w.data[windowSize:])
		w.data = w.data[:len(w.data)-windowSize]
		chain.slide()
		shift += windowSize
	}
	w.data = append(w.data, p...)
	return shift
}
