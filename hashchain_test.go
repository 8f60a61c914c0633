// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import "testing"

func TestHashChain_NewIsAllSentinel(t *testing.T) {
	h := newHashChain()
	for i := range h.head {
		if h.head[i] != noPos {
			t.Fatalf("head[%d] = %d, want sentinel", i, h.head[i])
		}
	}
	if h.getPrev(0) != noPos {
		t.Fatalf("getPrev(0) = %d, want sentinel", h.getPrev(0))
	}
}

func TestHashChain_AddChainsThroughPrev(t *testing.T) {
	h := newHashChain()
	const bucket = 42

	h.add(10, bucket)
	h.add(20, bucket)
	h.add(30, bucket)

	if got := h.getHead(bucket); got != 30 {
		t.Fatalf("getHead = %d, want 30 (most recent)", got)
	}
	if got := h.getPrev(30); got != 20 {
		t.Fatalf("getPrev(30) = %d, want 20", got)
	}
	if got := h.getPrev(20); got != 10 {
		t.Fatalf("getPrev(20) = %d, want 10", got)
	}
	if got := h.getPrev(10); got != noPos {
		t.Fatalf("getPrev(10) = %d, want sentinel", got)
	}
}

func TestHashChain_ChainStrictlyDecreasesPosition(t *testing.T) {
	h := newHashChain()
	const bucket = 7
	positions := []int{5, 100, 200, 30000}
	for _, p := range positions {
		h.add(p, bucket)
	}

	pos := h.getHead(bucket)
	for pos != noPos {
		prev := h.getPrev(pos)
		if prev != noPos && prev >= pos {
			t.Fatalf("chain did not strictly decrease: pos=%d prev=%d", pos, prev)
		}
		pos = prev
	}
}

func TestHashChain_SlideShiftsAndClearsNegatives(t *testing.T) {
	h := newHashChain()
	const bucket = 3

	h.add(windowSize-1, bucket)    // would become windowSize-1-windowSize = -1 -> cleared by slide
	h.add(windowSize, bucket)      // becomes 0
	h.add(windowSize+500, bucket)  // becomes 500

	h.slide()

	if got := h.getHead(bucket); got != 500 {
		t.Fatalf("getHead after slide = %d, want 500", got)
	}
	if got := h.getPrev(500); got != 0 {
		t.Fatalf("getPrev(500) after slide = %d, want 0", got)
	}
	if got := h.getPrev(0); got != noPos {
		t.Fatalf("getPrev(0) after slide = %d, want sentinel (was below window)", got)
	}
}

func TestHashChain_Hash3SameTripletSameBucket(t *testing.T) {
	a := []byte("abcXXXX")
	b := []byte("abcYYYY")
	if hash3(a) != hash3(b) {
		t.Fatal("identical 3-byte prefixes hashed to different buckets")
	}
}

func TestHashChain_Hash3InBounds(t *testing.T) {
	for _, p := range [][]byte{{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {0xAB, 0x12, 0xFF}} {
		h := hash3(p)
		if h >= hashSize {
			t.Fatalf("hash3(% x) = %d, out of bounds [0,%d)", p, h, hashSize)
		}
	}
}
