// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import (
	"bytes"
	"compress/flate"
	"io"
	"testing"
)

func TestWriter_ResetProducesIndependentStream(t *testing.T) {
	var buf1 bytes.Buffer
	w := NewWriter(&buf1)
	data1 := bytes.Repeat([]byte("first-stream"), 50)
	if _, err := w.Write(data1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var buf2 bytes.Buffer
	w.Reset(&buf2)
	data2 := bytes.Repeat([]byte("second-stream"), 50)
	if _, err := w.Write(data2); err != nil {
		t.Fatalf("Write after Reset: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close after Reset: %v", err)
	}

	out2, err := io.ReadAll(flate.NewReader(bytes.NewReader(buf2.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out2, data2) {
		t.Fatalf("reset stream round-trip mismatch")
	}

	// The two output streams must be wholly independent: the second must
	// not carry any leftover state (window/hash chain/block buffer) from
	// before the Reset.
	out1, err := io.ReadAll(flate.NewReader(bytes.NewReader(buf1.Bytes())))
	if err != nil {
		t.Fatalf("decode first stream: %v", err)
	}
	if !bytes.Equal(out1, data1) {
		t.Fatalf("first stream round-trip mismatch")
	}
}

func TestWriter_FlushSyncThenContinueWriting(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	part1 := bytes.Repeat([]byte("before-sync"), 20)
	part2 := bytes.Repeat([]byte("after-sync"), 20)

	if _, err := w.Write(part1); err != nil {
		t.Fatalf("Write part1: %v", err)
	}
	if err := w.Flush(FlushSync); err != nil {
		t.Fatalf("Flush(FlushSync): %v", err)
	}

	afterSyncLen := buf.Len()
	if afterSyncLen == 0 {
		t.Fatal("FlushSync produced no output")
	}

	if _, err := w.Write(part2); err != nil {
		t.Fatalf("Write part2: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out, err := io.ReadAll(flate.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := append(append([]byte{}, part1...), part2...)
	if !bytes.Equal(out, want) {
		t.Fatalf("round-trip mismatch across a sync flush")
	}
}

func TestWriter_FlushNoneIsANoOp(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(FlushNone); err != nil {
		t.Fatalf("Flush(FlushNone): %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out, err := io.ReadAll(flate.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out, []byte("hello")) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestWriter_FlushFinishIsEquivalentToClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write([]byte("finish me")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(FlushFinish); err != nil {
		t.Fatalf("Flush(FlushFinish): %v", err)
	}

	if _, err := w.Write([]byte("too late")); err == nil {
		t.Fatal("expected write after FlushFinish to fail")
	}

	out, err := io.ReadAll(flate.NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out, []byte("finish me")) {
		t.Fatalf("round-trip mismatch")
	}
}
