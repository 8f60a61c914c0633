// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

const (
	windowSize = 1 << 15 // W: sliding window / max back-reference distance (spec §3)
	hashBits   = 15      // H = 32768 buckets (spec §3)
	hashSize   = 1 << hashBits
	hashMask   = hashSize - 1

	minMatchLen = 3
	maxMatchLen = 258
)

// noPos is the sentinel for "no match": it must compare strictly less than
// any live position, including positions already reduced by slide (spec §3
// invariants).
const noPos = -1

// hashChain indexes 3-byte prefixes of the sliding window (spec §4.C). head
// maps a hash bucket to the most recent position with that prefix; prev
// chains each position to the position that previously shared its bucket.
// Positions are absolute input offsets.
type hashChain struct {
	head [hashSize]int32
	prev [windowSize]int32
}

func newHashChain() *hashChain {
	h := &hashChain{}
	h.reset()
	return h
}

func (h *hashChain) reset() {
	for i := range h.head {
		h.head[i] = noPos
	}
	for i := range h.prev {
		h.prev[i] = noPos
	}
}

// hash3 hashes the 3-byte prefix at p[0:3] into a bucket in 0..hashSize-1.
func hash3(p []byte) uint32 {
	h := uint32(p[0])
	h = (h << 5) ^ uint32(p[1])
	h = (h << 5) ^ uint32(p[2])
	return (h * 0x9e3779b1) >> (32 - hashBits) & hashMask
}

// add records that position pos (an absolute offset) hashes to bucket h,
// chaining it in front of whatever was previously the head of that bucket.
func (h *hashChain) add(pos int, bucket uint32) {
	h.prev[pos%windowSize] = h.head[bucket]
	h.head[bucket] = int32(pos)
}

func (h *hashChain) getHead(bucket uint32) int {
	return int(h.head[bucket])
}

func (h *hashChain) getPrev(pos int) int {
	return int(h.prev[pos%windowSize])
}

// slide decreases every stored position by windowSize, clearing (to noPos)
// any entry that would become negative (spec §4.C).
func (h *hashChain) slide() {
	for i := range h.head {
		if h.head[i] >= windowSize {
			h.head[i] -= windowSize
		} else {
			h.head[i] = noPos
		}
	}
	for i := range h.prev {
		if h.prev[i] >= windowSize {
			h.prev[i] -= windowSize
		} else {
			h.prev[i] = noPos
		}
	}
}
