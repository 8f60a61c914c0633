// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

// checksum is the running checksum over all input bytes, finalized on stream
// end (spec §4.B). The bare DEFLATE stream uses noopChecksum; the wrapped
// (RFC 1950) stream uses adler32Checksum.
type checksum interface {
	update(p []byte)
	sum32() uint32
}

// noopChecksum is used for the bare stream, which carries no checksum.
type noopChecksum struct{}

func (noopChecksum) update([]byte)  {}
func (noopChecksum) sum32() uint32 { return 0 }

const adlerMod = 65521

// adlerNMAX is the largest chunk that can be summed with deferred modulo
// before s1/s2 risk overflowing uint32: the classic zlib bound, the largest n
// such that 255*n*(n+1)/2 + (n+1)*(adlerMod-1) < 2^32.
const adlerNMAX = 5552

// adler32Checksum computes the Adler-32 checksum (spec §4.B, §6). Update may
// be called in chunks; the final value matches the byte-at-a-time result.
type adler32Checksum struct {
	s1, s2 uint32
}

func newAdler32Checksum() *adler32Checksum {
	return &adler32Checksum{s1: 1, s2: 0}
}

func (a *adler32Checksum) reset() {
	a.s1, a.s2 = 1, 0
}

func (a *adler32Checksum) update(p []byte) {
	s1, s2 := a.s1, a.s2
	for len(p) > 0 {
		n := len(p)
		if n > adlerNMAX {
			n = adlerNMAX
		}
		for _, b := range p[:n] {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= adlerMod
		s2 %= adlerMod
		p = p[n:]
	}
	a.s1, a.s2 = s1, s2
}

func (a *adler32Checksum) sum32() uint32 {
	return a.s2<<16 | a.s1
}
