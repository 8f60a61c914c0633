// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import "io"

// flushThreshold is how many whole bytes bitWriter accumulates internally
// before pushing them to the sink. One DEFLATE block's worth of output is
// bounded (spec §5: "must not buffer unbounded data internally beyond one
// block"), so this is just a batching knob, not a correctness constraint.
const flushThreshold = 8192

// bitWriter packs variable-width values LSB-first into bytes and forwards
// completed bytes to a caller-supplied sink (spec §4.A). Huffman codes must
// already be bit-reversed by the caller (see huffman.go); bitWriter itself
// never reverses bits, it only ever pushes from the bottom.
type bitWriter struct {
	w   io.Writer
	buf []byte // completed bytes pending flush to w

	bitBuf uint64 // pending bits, lowest unused bit at position bitCnt
	bitCnt uint   // number of valid pending bits in bitBuf (< 8 after every call)

	err error
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w, buf: make([]byte, 0, flushThreshold)}
}

// reset rebinds the writer to a new sink and clears all buffered state.
func (bw *bitWriter) reset(w io.Writer) {
	bw.w = w
	bw.buf = bw.buf[:0]
	bw.bitBuf = 0
	bw.bitCnt = 0
	bw.err = nil
}

// writeBits packs the low n bits of value, LSB first, n in 0..=16.
func (bw *bitWriter) writeBits(value uint32, n uint) error {
	if bw.err != nil {
		return bw.err
	}
	if n == 0 {
		return nil
	}

	bw.bitBuf |= uint64(value&((1<<n)-1)) << bw.bitCnt
	bw.bitCnt += n

	for bw.bitCnt >= 8 {
		bw.buf = append(bw.buf, byte(bw.bitBuf))
		bw.bitBuf >>= 8
		bw.bitCnt -= 8
	}

	if len(bw.buf) >= flushThreshold {
		return bw.drain()
	}
	return nil
}

// writeCode writes a pre-bit-reversed canonical Huffman code.
func (bw *bitWriter) writeCode(c huffmanCode) error {
	return bw.writeBits(uint32(c.code), uint(c.length))
}

// flushByte pads the current byte with zero bits, if any are pending, so the
// stream is byte-aligned.
func (bw *bitWriter) flushByte() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.bitCnt > 0 {
		bw.buf = append(bw.buf, byte(bw.bitBuf))
		bw.bitBuf = 0
		bw.bitCnt = 0
	}
	return nil
}

// writeByteAligned aligns to a byte boundary (padding with zero bits if
// needed) then appends raw bytes, used for stored blocks.
func (bw *bitWriter) writeByteAligned(p []byte) error {
	if err := bw.flushByte(); err != nil {
		return err
	}
	bw.buf = append(bw.buf, p...)
	if len(bw.buf) >= flushThreshold {
		return bw.drain()
	}
	return nil
}

// drain pushes any complete buffered bytes to the sink.
func (bw *bitWriter) drain() error {
	if bw.err != nil {
		return bw.err
	}
	if len(bw.buf) == 0 {
		return nil
	}
	if _, err := bw.w.Write(bw.buf); err != nil {
		bw.err = wrapSinkErr(err)
		return bw.err
	}
	bw.buf = bw.buf[:0]
	return nil
}

// finish pads any partial byte with zero bits and flushes everything to the
// sink. Called once, on Writer.Close.
func (bw *bitWriter) finish() error {
	if err := bw.flushByte(); err != nil {
		return err
	}
	return bw.drain()
}
