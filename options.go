// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// Level selects a compression effort preset (spec §6 configuration surface).
type Level int

const (
	// Fast favors speed: a short hash chain search and greedy matching.
	Fast Level = iota
	// Default balances speed and ratio: lazy matching with a moderate chain.
	Default
	// Best favors ratio: lazy matching with the longest chain search.
	Best
)

// MatchVariant selects the LZ77 matching heuristic (spec §4.F).
type MatchVariant int

const (
	// Greedy always emits the match found at the current position; it never
	// holds a match to see if the next position has a longer one.
	Greedy MatchVariant = iota
	// Lazy holds at most one pending match and compares it against the match
	// found one byte later, emitting whichever is better (spec §9).
	Lazy
)

// levelParams is the (matching_variant, max_hash_checks, lazy_threshold)
// triple a Level maps to. Mirrors the teacher's per-level parameter table
// (level_params.go) generalized from LZO1X-999's tryLazy/maxChain knobs to
// this format's matcher configuration.
type levelParams struct {
	variant       MatchVariant
	maxHashChecks int
	lazyThreshold int
	goodLength    int // held match length at or above which the chain search is shortened
}

var fixedLevels = [...]levelParams{
	Fast:    {variant: Greedy, maxHashChecks: 32, lazyThreshold: 0, goodLength: 32},
	Default: {variant: Lazy, maxHashChecks: 128, lazyThreshold: 128, goodLength: 32},
	Best:    {variant: Lazy, maxHashChecks: 4096, lazyThreshold: 258, goodLength: 258},
}

// CompressOptions configures a one-shot Compress call or a streaming Writer.
//
// Level is the coarse preset (spec §6). The finer-grained fields below are
// optional overrides; a zero value means "use the value Level implies". This
// mirrors the teacher's nil-means-default CompressOptions shape.
type CompressOptions struct {
	// Level: Fast, Default, or Best. Zero value is Fast.
	Level Level

	// MatchingVariant overrides the matcher the Level implies. Use
	// (Greedy|Lazy) explicitly; the zero value (Greedy) is only treated as an
	// override when OverrideMatching is true.
	MatchingVariant  MatchVariant
	OverrideMatching bool

	// MaxHashChecks overrides max_hash_checks (1..=4096). 0 means "use the
	// Level's default".
	MaxHashChecks int

	// LazyThreshold overrides lazy_threshold (0..=258) above which lazy
	// lookahead is skipped even under the Lazy variant. 0 means "use the
	// Level's default"; pass -1 to force 0 explicitly (disable lazy entirely).
	LazyThreshold int
}

// DefaultCompressOptions returns options for Default-level compression.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: Default}
}

// resolve validates opts and returns the effective levelParams, applying any
// overrides. Returns ErrInvalidLevel/ErrInvalidConfig for out-of-range values
// (spec §7.2 API misuse).
func (o *CompressOptions) resolve() (levelParams, error) {
	if o == nil {
		o = DefaultCompressOptions()
	}
	if o.Level < Fast || o.Level > Best {
		return levelParams{}, ErrInvalidLevel
	}
	p := fixedLevels[o.Level]

	if o.OverrideMatching {
		p.variant = o.MatchingVariant
	}
	if p.variant != Greedy && p.variant != Lazy {
		return levelParams{}, ErrInvalidConfig
	}

	if o.MaxHashChecks != 0 {
		p.maxHashChecks = o.MaxHashChecks
	}
	if p.maxHashChecks < 1 || p.maxHashChecks > 4096 {
		return levelParams{}, ErrInvalidConfig
	}

	switch {
	case o.LazyThreshold == -1:
		p.lazyThreshold = 0
	case o.LazyThreshold != 0:
		p.lazyThreshold = o.LazyThreshold
	}
	if p.lazyThreshold < 0 || p.lazyThreshold > 258 {
		return levelParams{}, ErrInvalidConfig
	}

	return p, nil
}

// FlushKind selects the behavior of Writer.Flush (spec §4.K).
type FlushKind int

const (
	// FlushNone performs no flush; Write alone never forces a block boundary
	// beyond the symbol-count/input-buffer caps.
	FlushNone FlushKind = iota
	// FlushSync closes the current block as non-final and aligns the bit
	// writer, without finalizing the stream.
	FlushSync
	// FlushFinish closes the current block with BFINAL=1, pads the final
	// byte, and transitions the writer to Done.
	FlushFinish
)
