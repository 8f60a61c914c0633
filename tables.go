// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import "sort"

// Fixed tables from the format (spec §3): the length/literal alphabet (286
// symbols: 0..255 literals, 256 end-of-block, 257..285 length codes) and the
// distance alphabet (30 codes). Each table entry gives the base value and the
// number of extra bits that follow the Huffman code in the bitstream.

const (
	numLitLenSymbols = 286
	numDistSymbols   = 30
	numMetaSymbols   = 19

	endOfBlockSymbol = 256
	firstLengthCode  = 257
)

type codeRange struct {
	base  int
	extra uint8
}

// lengthCodes[i] describes length code 257+i.
var lengthCodes = [numLitLenSymbols - firstLengthCode]codeRange{
	{3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0}, {10, 0},
	{11, 1}, {13, 1}, {15, 1}, {17, 1},
	{19, 2}, {23, 2}, {27, 2}, {31, 2},
	{35, 3}, {43, 3}, {51, 3}, {59, 3},
	{67, 4}, {83, 4}, {99, 4}, {115, 4},
	{131, 5}, {163, 5}, {195, 5}, {227, 5},
	{258, 0},
}

// distCodes describes distance codes 0..29.
var distCodes = [numDistSymbols]codeRange{
	{1, 0}, {2, 0}, {3, 0}, {4, 0},
	{5, 1}, {7, 1},
	{9, 2}, {13, 2},
	{17, 3}, {25, 3},
	{33, 4}, {49, 4},
	{65, 5}, {97, 5},
	{129, 6}, {193, 6},
	{257, 7}, {385, 7},
	{513, 8}, {769, 8},
	{1025, 9}, {1537, 9},
	{2049, 10}, {3073, 10},
	{4097, 11}, {6145, 11},
	{8193, 12}, {12289, 12},
	{16385, 13}, {24577, 13},
}

// codeLengthOrder is the fixed permutation the dynamic block header uses to
// transmit the meta-Huffman code lengths (spec §4.J).
var codeLengthOrder = [numMetaSymbols]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthCodeFor returns the length-code index (257..285), the extra-bit
// value, and the extra-bit count for an actual match length (3..258).
func lengthCodeFor(length int) (code, extra int, extraBits uint8) {
	i := sort.SearchInts(lengthBaseTable[:], length)
	if i == len(lengthBaseTable) || lengthBaseTable[i] != length {
		i--
	}
	r := lengthCodes[i]
	return firstLengthCode + i, length - r.base, r.extra
}

// distCodeFor returns the distance-code index (0..29), the extra-bit value,
// and the extra-bit count for an actual distance (1..32768).
func distCodeFor(distance int) (code, extra int, extraBits uint8) {
	i := sort.SearchInts(distBaseTable[:], distance)
	if i == len(distBaseTable) || distBaseTable[i] != distance {
		i--
	}
	r := distCodes[i]
	return i, distance - r.base, r.extra
}

// lengthBaseTable/distBaseTable mirror the base field of lengthCodes/distCodes
// for use with sort.SearchInts (binary search by base value, then take the
// entry whose base is <= the queried value).
var lengthBaseTable = func() (t [numLitLenSymbols - firstLengthCode]int) {
	for i, r := range lengthCodes {
		t[i] = r.base
	}
	return
}()

var distBaseTable = func() (t [numDistSymbols]int) {
	for i, r := range distCodes {
		t[i] = r.base
	}
	return
}()
