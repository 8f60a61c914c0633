// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import "io"

// Writer is a streaming DEFLATE (RFC 1951) compressor. It owns the sliding
// window, the hash chain, the in-progress block buffer, and the bit writer
// exclusively (spec §3 Ownership); none of those types are safe to share
// between Writers.
//
// The zero Writer is not usable; construct one with NewWriter or
// NewWriterLevel.
type Writer struct {
	bw    *bitWriter
	win   *window
	chain *hashChain
	blk   *blockBuffer
	cfg   levelParams
	state lz77State

	blockStart int
	closed     bool
}

// NewWriter returns a Writer using DefaultCompressOptions.
func NewWriter(dst io.Writer) *Writer {
	w, err := NewWriterOptions(dst, DefaultCompressOptions())
	if err != nil {
		// DefaultCompressOptions always resolves; a failure here would be an
		// internal invariant violation, not a user-reachable error.
		panic(err)
	}
	return w
}

// NewWriterLevel returns a Writer at the given compression level, using that
// level's fixed matching parameters.
func NewWriterLevel(dst io.Writer, level Level) (*Writer, error) {
	opts := DefaultCompressOptions()
	opts.Level = level
	return NewWriterOptions(dst, opts)
}

// NewWriterOptions returns a Writer configured by opts. It returns
// ErrInvalidLevel or ErrInvalidConfig if opts does not resolve. A nil opts
// is equivalent to DefaultCompressOptions().
func NewWriterOptions(dst io.Writer, opts *CompressOptions) (*Writer, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	w := &Writer{
		bw:    newBitWriter(dst),
		win:   newWindow(),
		chain: newHashChain(),
		blk:   newBlockBuffer(),
		cfg:   cfg,
		state: newLZ77State(0),
	}
	return w, nil
}

// Reset discards any buffered state and rebinds the Writer to dst, as if it
// were newly constructed with the same options (spec §4, supplemented
// feature: see SPEC_FULL.md's WriterPool reuse path).
func (w *Writer) Reset(dst io.Writer) {
	w.bw.reset(dst)
	w.win.reset()
	w.chain.reset()
	w.blk.reset()
	w.state = newLZ77State(0)
	w.blockStart = 0
	w.closed = false
}

// Write feeds uncompressed bytes into the compressor. It may buffer data
// internally and only emit whole blocks once enough lookahead is available
// (spec §4.F); call Flush or Close to force emission.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	total := len(p)
	for len(p) > 0 {
		chunk := p
		if len(chunk) > windowSize {
			chunk = chunk[:windowSize]
		}
		shift := w.win.append(chunk, w.chain, w.state.pos)
		w.state.pos -= shift
		w.blockStart -= shift
		p = p[len(chunk):]

		// Stop one byte short of a full maximum-length match from the end, so
		// every position a committed match skips over still has the three
		// bytes insertHash needs, however the input is chunked.
		limit := w.win.end() - maxMatchLen - 1
		if limit < w.state.pos {
			limit = w.state.pos
		}
		if err := w.advanceTo(limit, false); err != nil {
			return total - len(p), err
		}
	}
	return total, nil
}

// advanceTo drives the LZ77 matcher up to limit, closing any blocks that
// fill along the way. final marks the last call for the stream (Close only;
// Flush passes false): it is forwarded to closeBlock so the very last block
// written carries BFINAL=1.
func (w *Writer) advanceTo(limit int, final bool) error {
	for {
		full := driveLZ77(w.win, w.chain, w.cfg, w.blk, &w.state, limit)
		if !full {
			if final {
				flushPending(w.blk, &w.state)
				return w.closeBlock(true)
			}
			return nil
		}
		flushPending(w.blk, &w.state)
		if err := w.closeBlock(false); err != nil {
			return err
		}
	}
}

// closeBlock plans and writes the current block buffer, then resets it for
// the next block (spec §4.G, §4.J).
func (w *Writer) closeBlock(final bool) error {
	rawLen := w.state.pos - w.blockStart
	plan := planBlock(w.blk, rawLen)
	if err := writeBlock(w.bw, w.win, w.blk, plan, w.blockStart, w.state.pos, final); err != nil {
		return err
	}
	w.blk.reset()
	w.blockStart = w.state.pos
	return nil
}

// Flush forces buffered data toward dst according to kind. FlushSync closes
// the in-progress block (even if not full) and appends an empty stored
// block so the bitstream lands on a byte boundary a decoder can resynchronize
// on, without ending the stream. FlushFinish is equivalent to Close.
func (w *Writer) Flush(kind FlushKind) error {
	if w.closed {
		return ErrClosed
	}
	switch kind {
	case FlushNone:
		return nil
	case FlushSync:
		if err := w.advanceTo(w.win.end(), false); err != nil {
			return err
		}
		flushPending(w.blk, &w.state)
		if err := w.closeBlock(false); err != nil {
			return err
		}
		empty := blockPlan{btype: btypeStored}
		if err := writeBlock(w.bw, w.win, w.blk, empty, w.state.pos, w.state.pos, false); err != nil {
			return err
		}
		return w.bw.drain()
	case FlushFinish:
		return w.Close()
	default:
		return internalErrorf("unknown flush kind")
	}
}

// Close flushes all remaining buffered data as the final block and writes
// any trailing padding. After Close, Write returns ErrClosed, and a second
// Close call also returns ErrClosed (spec §8: "idempotent finalize" requires
// finishing twice to surface an error on the second call, not silently
// succeed) and writes nothing further, leaving the output unchanged.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	if err := w.advanceTo(w.win.end(), true); err != nil {
		return err
	}
	w.closed = true
	return w.bw.finish()
}
