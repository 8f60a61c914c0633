// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import (
	"reflect"
	"testing"
)

func TestEncodeLengthSequence_RepeatPreviousRun(t *testing.T) {
	// 1, then four more 1s (run of 5 equal nonzero lengths): the first is a
	// literal, the remaining 4 become one symbol-16 repeat (2 extra bits,
	// value = 4-3 = 1); 16 cannot itself start the run.
	lengths := []int{1, 1, 1, 1, 1}
	got := encodeLengthSequence(lengths)
	want := []metaSymbol{
		{sym: 1, extra: 0, extraBits: 0},
		{sym: symRepPrev, extra: 1, extraBits: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeLengthSequence_RepeatPreviousTooShortStaysLiteral(t *testing.T) {
	// A run of only 2 equal nonzero lengths is too short for symbol 16 (min
	// repeat count 3), so both must be emitted as literals.
	lengths := []int{5, 5}
	got := encodeLengthSequence(lengths)
	want := []metaSymbol{
		{sym: 5, extra: 0, extraBits: 0},
		{sym: 5, extra: 0, extraBits: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeLengthSequence_ShortZeroRunUsesSymbol17(t *testing.T) {
	lengths := []int{0, 0, 0, 0, 0} // 5 zeros: one symbol 17, extra = 5-3 = 2
	got := encodeLengthSequence(lengths)
	want := []metaSymbol{{sym: symRepZero3, extra: 2, extraBits: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeLengthSequence_LongZeroRunUsesSymbol18(t *testing.T) {
	zeros := make([]int, 20) // 20 zeros: one symbol 18 (covers up to 138)
	got := encodeLengthSequence(zeros)
	want := []metaSymbol{{sym: symRepZero7, extra: 20 - 11, extraBits: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeLengthSequence_VeryLongZeroRunSplitsGreedilyPreferring18(t *testing.T) {
	zeros := make([]int, 150) // > 138, must split into multiple symbol-18 runs (plus a remainder)
	got := encodeLengthSequence(zeros)

	total := 0
	for _, s := range got {
		if s.sym != symRepZero7 && s.sym != symRepZero3 {
			t.Fatalf("unexpected symbol %d in an all-zero run", s.sym)
		}
		switch s.sym {
		case symRepZero7:
			total += s.extra + 11
		case symRepZero3:
			total += s.extra + 3
		}
	}
	if total != 150 {
		t.Fatalf("covered %d zero lengths, want 150", total)
	}

	// Greedy-prefer-18 means the first chunk should be the maximal 138.
	if got[0].sym != symRepZero7 || got[0].extra != 138-11 {
		t.Fatalf("first chunk = %+v, want symbol 18 covering 138", got[0])
	}
}

func TestEncodeLengthSequence_ShortZeroRunBelowThreeIsLiteralZero(t *testing.T) {
	lengths := []int{0, 0, 5}
	got := encodeLengthSequence(lengths)
	want := []metaSymbol{
		{sym: 0, extra: 0, extraBits: 0},
		{sym: 0, extra: 0, extraBits: 0},
		{sym: 5, extra: 0, extraBits: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeLengthSequence_MixedVectorRoundTripsSymbolCount(t *testing.T) {
	lengths := []int{3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 7, 7, 7, 0}
	syms := encodeLengthSequence(lengths)

	// Reconstruct the original vector from the symbol stream and check it
	// matches, which is the defining correctness property of an RLE scheme.
	var reconstructed []int
	for _, s := range syms {
		switch s.sym {
		case symRepPrev:
			prev := reconstructed[len(reconstructed)-1]
			for i := 0; i < s.extra+3; i++ {
				reconstructed = append(reconstructed, prev)
			}
		case symRepZero3:
			for i := 0; i < s.extra+3; i++ {
				reconstructed = append(reconstructed, 0)
			}
		case symRepZero7:
			for i := 0; i < s.extra+11; i++ {
				reconstructed = append(reconstructed, 0)
			}
		default:
			reconstructed = append(reconstructed, s.sym)
		}
	}

	if !reflect.DeepEqual(reconstructed, lengths) {
		t.Fatalf("reconstructed %v, want %v", reconstructed, lengths)
	}
}

func TestMetaHistogram_TalliesSymbolFrequencies(t *testing.T) {
	syms := []metaSymbol{{sym: 0}, {sym: 0}, {sym: 16}, {sym: 18}, {sym: 0}}
	hist := metaHistogram(syms)
	if hist[0] != 3 || hist[16] != 1 || hist[18] != 1 {
		t.Fatalf("hist = %v, want [0]=3 [16]=1 [18]=1", hist)
	}
}
