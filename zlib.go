// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import "io"

// zlibMethodByte selects the second header byte for each compression level
// so that (byte0*256+byte1) mod 31 == 0, per RFC 1950 §2.2. The top two bits
// of this byte (FLEVEL) are an implementation hint only; bit 5 (FDICT) is
// always 0 since this package never uses a preset dictionary.
var zlibMethodByte = map[Level]byte{
	Fast:    0x01,
	Default: 0x9C,
	Best:    0xDA,
}

const zlibCM8CINFO7 = 0x78 // CM=8 (deflate), CINFO=7 (32K window)

// WrappedWriter frames a Writer's DEFLATE stream with an RFC 1950 zlib
// header and trailing Adler-32 checksum of the uncompressed input (spec
// §7). It is the only type in this package that computes a checksum; the
// core Writer never does.
type WrappedWriter struct {
	dst    io.Writer
	inner  *Writer
	sum    *adler32Checksum
	level  Level
	header bool
	closed bool
}

// NewWriterWrapped returns a WrappedWriter using DefaultCompressOptions.
func NewWriterWrapped(dst io.Writer) (*WrappedWriter, error) {
	return NewWriterWrappedOptions(dst, DefaultCompressOptions())
}

// NewWriterWrappedOptions returns a WrappedWriter configured by opts. A nil
// opts is equivalent to DefaultCompressOptions().
func NewWriterWrappedOptions(dst io.Writer, opts *CompressOptions) (*WrappedWriter, error) {
	if _, err := opts.resolve(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	ww := &WrappedWriter{dst: dst, sum: newAdler32Checksum(), level: opts.Level}
	inner, err := NewWriterOptions(rawSinkFunc(func(p []byte) (int, error) {
		return ww.dst.Write(p)
	}), opts)
	if err != nil {
		return nil, err
	}
	ww.inner = inner
	return ww, nil
}

// rawSinkFunc adapts a function to io.Writer, used so the inner Writer's
// output bytes flow straight to dst without an intermediate buffer copy.
type rawSinkFunc func(p []byte) (int, error)

func (f rawSinkFunc) Write(p []byte) (int, error) { return f(p) }

func (ww *WrappedWriter) writeHeader() error {
	if ww.header {
		return nil
	}
	ww.header = true
	method := zlibMethodByte[ww.level]
	_, err := ww.dst.Write([]byte{zlibCM8CINFO7, method})
	return err
}

// Write feeds uncompressed bytes in, updating the running checksum and
// forwarding to the inner Writer.
func (ww *WrappedWriter) Write(p []byte) (int, error) {
	if ww.closed {
		return 0, ErrClosed
	}
	if err := ww.writeHeader(); err != nil {
		return 0, wrapSinkErr(err)
	}
	ww.sum.update(p)
	return ww.inner.Write(p)
}

// Close finalizes the DEFLATE stream and appends the big-endian Adler-32
// trailer (spec §7).
func (ww *WrappedWriter) Close() error {
	if ww.closed {
		return ErrClosed
	}
	if err := ww.writeHeader(); err != nil {
		return wrapSinkErr(err)
	}
	if err := ww.inner.Close(); err != nil {
		return err
	}
	ww.closed = true
	s := ww.sum.sum32()
	trailer := []byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
	_, err := ww.dst.Write(trailer)
	return wrapSinkErr(err)
}
