// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// metaSymbol is one symbol of the length-sequence's meta-alphabet (spec
// §4.I): a literal code length (0..15), or one of the three repeat codes
// (16/17/18) together with the extra-bit value and count that follow it.
type metaSymbol struct {
	sym       int
	extra     int
	extraBits uint8
}

const (
	symRepPrev  = 16
	symRepZero3 = 17
	symRepZero7 = 18
)

// encodeLengthSequence run-length-encodes a vector of Huffman code lengths
// using the format's 19-symbol meta-alphabet (spec §4.I): a run of equal
// nonzero lengths becomes one literal followed by repeat-previous (16)
// symbols, each covering 3..6 repeats, so only runs of 4 or more use 16 and
// fewer than 3 leftover repeats stay literals; zero runs become repeat-zero
// (17 for 3..10, 18 for 11..138) symbols, split greedily preferring 18 for
// longer runs.
func encodeLengthSequence(lengths []int) []metaSymbol {
	var out []metaSymbol
	n := len(lengths)

	for i := 0; i < n; {
		v := lengths[i]
		j := i + 1
		for j < n && lengths[j] == v {
			j++
		}
		runLen := j - i

		if v == 0 {
			rem := runLen
			for rem > 0 {
				switch {
				case rem >= 11:
					chunk := min(rem, 138)
					out = append(out, metaSymbol{symRepZero7, chunk - 11, 7})
					rem -= chunk
				case rem >= 3:
					chunk := min(rem, 10)
					out = append(out, metaSymbol{symRepZero3, chunk - 3, 3})
					rem -= chunk
				default:
					for ; rem > 0; rem-- {
						out = append(out, metaSymbol{0, 0, 0})
					}
				}
			}
		} else {
			out = append(out, metaSymbol{v, 0, 0})
			rem := runLen - 1
			for rem > 0 {
				if rem < 3 {
					for ; rem > 0; rem-- {
						out = append(out, metaSymbol{v, 0, 0})
					}
					break
				}
				chunk := min(rem, 6)
				out = append(out, metaSymbol{symRepPrev, chunk - 3, 2})
				rem -= chunk
			}
		}

		i = j
	}

	return out
}

// metaHistogram tallies the symbol frequencies of an encoded length sequence
// for building the meta-Huffman code (max length 7, spec §4.I).
func metaHistogram(syms []metaSymbol) [numMetaSymbols]int {
	var h [numMetaSymbols]int
	for _, s := range syms {
		h[s.sym]++
	}
	return h
}
