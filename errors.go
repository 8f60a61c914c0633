// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package deflate

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for API misuse and sink failures. Callers can use errors.Is.
var (
	// ErrClosed is returned when write or flush is called after Close/Finish.
	ErrClosed = errors.New("deflate: writer already closed")
	// ErrInvalidLevel is returned when a CompressOptions.Level is out of range.
	ErrInvalidLevel = errors.New("deflate: invalid compression level")
	// ErrInvalidConfig is returned when a configuration field is out of its
	// documented range (max_hash_checks, lazy_threshold, matching variant).
	ErrInvalidConfig = errors.New("deflate: invalid configuration")
)

// errInternal reports an internal invariant violation: a programmer bug that
// must be unreachable from well-formed inputs (spec §7.3). It is deliberately
// distinct from the sentinel errors above so callers can tell "you misused
// the API" from "the compressor itself is broken".
type errInternal struct {
	msg string
}

func (e *errInternal) Error() string { return "deflate: internal invariant violation: " + e.msg }

func internalErrorf(msg string) error {
	return pkgerrors.WithStack(&errInternal{msg: msg})
}

// wrapSinkErr attaches context to a failure from the caller-supplied sink
// (spec §7.1). The sink error itself is preserved for errors.Is/As.
func wrapSinkErr(err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, "deflate: sink write failed")
}
