// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import (
	"container/heap"
	"sort"
)

const (
	maxCodeLen     = 15 // length limit for the length/literal and distance alphabets
	maxMetaCodeLen = 7  // length limit for the meta (code-length) alphabet
)

// huffmanCode is one symbol's canonical Huffman code: a bit length and the
// bit pattern already reversed for MSB-first transmission by an LSB-first
// bitWriter (spec §4.A, §4.H).
type huffmanCode struct {
	code   uint16
	length uint8
}

// buildHuffmanCodes builds length-limited canonical Huffman codes for the
// given frequency vector (spec §4.H). freq must not be all-zero; callers must
// use fixed or stored encoding instead in that case (spec §4.H Failure).
func buildHuffmanCodes(freq []int, maxLen int) []huffmanCode {
	lengths := huffmanLengths(freq, maxLen)
	return assignCanonicalCodes(lengths)
}

// huffmanNode is a leaf (sym >= 0) or internal node (sym == -1) in the
// frequency-ordered merge used to derive unconstrained code lengths.
type huffmanNode struct {
	weight int
	seq    int // tie-break: creation order, for determinism
	left   *huffmanNode
	right  *huffmanNode
	sym    int
}

type nodeHeap []*huffmanNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*huffmanNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// huffmanLengths returns a code length for every symbol (0 for unused
// symbols), honoring maxLen (spec §4.H).
func huffmanLengths(freq []int, maxLen int) []int {
	n := len(freq)
	lengths := make([]int, n)

	type nz struct {
		sym  int
		freq int
	}
	var present []nz
	for i, f := range freq {
		if f > 0 {
			present = append(present, nz{i, f})
		}
	}

	if len(present) < 2 {
		// Force two codes of length 1 (spec §4.H step 2): the format
		// requires at least two codes to exist.
		if len(present) == 1 {
			lengths[present[0].sym] = 1
		}
		for i := 0; i < n; i++ {
			if len(present) == 1 && i == present[0].sym {
				continue
			}
			lengths[i] = 1
			break
		}
		return lengths
	}

	// Stable sort ascending by (freq, symbol index) for deterministic ties.
	sort.SliceStable(present, func(i, j int) bool { return present[i].freq < present[j].freq })

	h := make(nodeHeap, len(present))
	for i, s := range present {
		h[i] = &huffmanNode{weight: s.freq, seq: i, sym: s.sym}
	}
	heap.Init(&h)

	seq := len(present)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*huffmanNode)
		b := heap.Pop(&h).(*huffmanNode)
		parent := &huffmanNode{weight: a.weight + b.weight, seq: seq, left: a, right: b, sym: -1}
		seq++
		heap.Push(&h, parent)
	}
	root := h[0]

	depth := make([]int, len(present))
	symIndex := make(map[int]int, len(present))
	for i, s := range present {
		symIndex[s.sym] = i
	}
	var walk func(node *huffmanNode, d int)
	walk = func(node *huffmanNode, d int) {
		if node.sym >= 0 {
			depth[symIndex[node.sym]] = d
			return
		}
		walk(node.left, d+1)
		walk(node.right, d+1)
	}
	walk(root, 0)

	limited := limitLengths(depth, maxLen)
	for i, s := range present {
		lengths[s.sym] = limited[i]
	}
	return lengths
}

// limitLengths rebalances an unconstrained depth vector (ascending-freq
// order, i.e. depth[0] belongs to the least frequent symbol) so no length
// exceeds maxLen, while preserving the Kraft equality Σ2^(maxLen-len)=2^maxLen
// (spec §4.H step 3).
//
// Any depth greater than maxLen is first clamped to maxLen; this leaves the
// running Kraft sum (computed in units of 2^-maxLen) with an integer excess.
// Repeatedly taking one code at the longest length below maxLen and
// splitting it into two codes one bit longer reduces that excess by exactly
// one each time — moving blCount[bits]-- / blCount[bits+1]+=2 / blCount[maxLen]--
// changes the sum by -2^(maxLen-bits) + 2*2^(maxLen-bits-1) - 1 = -1 — so the
// loop terminates with the sum exactly equal to 2^maxLen.
func limitLengths(depth []int, maxLen int) []int {
	n := len(depth)
	blCount := make([]int, maxLen+1) // index 1..maxLen used

	badCount := 0
	for _, d := range depth {
		if d > maxLen {
			badCount++
		} else {
			blCount[d]++
		}
	}
	blCount[maxLen] += badCount

	var total int64
	for l := 1; l <= maxLen; l++ {
		total += int64(blCount[l]) << uint(maxLen-l)
	}
	excess := int(total - (int64(1) << uint(maxLen)))

	for excess > 0 {
		bits := maxLen - 1
		for bits > 0 && blCount[bits] == 0 {
			bits--
		}
		blCount[bits]--
		blCount[bits+1] += 2
		blCount[maxLen]--
		excess--
	}

	result := make([]int, n)
	idx := 0
	for l := maxLen; l >= 1; l-- {
		for c := 0; c < blCount[l]; c++ {
			result[idx] = l
			idx++
		}
	}
	return result
}

// assignCanonicalCodes assigns canonical codes given final per-symbol
// lengths: sort by (length, symbol index), assign codes starting at 0,
// incrementing per symbol and left-shifting on each length increase, then
// bit-reverse each code within its length (spec §4.H step 4, §4.A).
func assignCanonicalCodes(lengths []int) []huffmanCode {
	n := len(lengths)
	type pair struct{ sym, length int }
	var present []pair
	for s, l := range lengths {
		if l > 0 {
			present = append(present, pair{s, l})
		}
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].length != present[j].length {
			return present[i].length < present[j].length
		}
		return present[i].sym < present[j].sym
	})

	codes := make([]huffmanCode, n)
	code := 0
	prevLen := 0
	for _, p := range present {
		if p.length > prevLen {
			code <<= uint(p.length - prevLen)
			prevLen = p.length
		}
		codes[p.sym] = huffmanCode{code: reverseBits(uint16(code), p.length), length: uint8(p.length)}
		code++
	}
	return codes
}

// reverseBits reverses the low n bits of v.
func reverseBits(v uint16, n int) uint16 {
	var r uint16
	for i := 0; i < n; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
