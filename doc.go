// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

/*
Package deflate implements a pure, in-process DEFLATE (RFC 1951) compressor,
with an optional zlib-style (RFC 1950) wrapper that adds a 2-byte header and a
trailing Adler-32 checksum.

# Compress

Options may be nil (defaults to Default level):

	out, err := deflate.Compress(data, nil)
	out, err := deflate.Compress(data, &deflate.CompressOptions{Level: deflate.Best})

# Streaming

Writer implements the incremental state machine described by the format: it
buffers input into DEFLATE blocks and emits them to an io.Writer sink as they
fill.

	w := deflate.NewWriter(dst)
	_, err := w.Write(data)
	err = w.Close() // BFINAL block, flush, finalize

Use NewWriterLevel or NewWriterOptions for non-default settings, and
NewWriterWrapped/NewWriterWrappedOptions for the RFC 1950 zlib framing
(2-byte header plus trailing big-endian Adler-32 of the uncompressed input).

This package only encodes. Verifying round-trips requires any conformant
DEFLATE/zlib decoder (e.g. compress/flate, compress/zlib).
*/
package deflate
