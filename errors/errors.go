// Package errors provides error handling for the glyph catalogue generator.
//
// This package re-exports github.com/cockroachdb/errors, so generator errors
// carry stack traces, hints and details, and adds the sentinel errors the
// pipeline reports.
//
// Usage:
//
//	// Wrap a sentinel with the offending input
//	return errors.Wrapf(errors.ErrMalformedCodepoint, "%q", s)
//
//	// Add hints for users
//	return errors.WithHint(err, "run glyphgen to regenerate the catalogue")
//
//	// Check errors
//	if errors.Is(err, errors.ErrDrift) {
//	    // exit 1, not 2
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors reported by the generator.
// Wrap these with Wrapf to add the offending glyph or path; errors.Is still matches.
var (
	// ErrMalformedInput indicates the metadata file is not valid UTF-8 JSON
	// of the expected shape, or a glyph lacks a required field
	ErrMalformedInput = New("malformed glyph metadata")

	// ErrMalformedCodepoint indicates a code point string is not "U+" followed
	// by hex digits naming a Unicode scalar value
	ErrMalformedCodepoint = New("malformed codepoint")

	// ErrIdentifierCollision indicates two glyph names synthesize to the same identifier
	ErrIdentifierCollision = New("identifier collision")

	// ErrMarkersNotFound indicates the target file lacks exactly one pair of
	// generated-region markers
	ErrMarkersNotFound = New("generated region markers not found")

	// ErrDrift indicates the committed catalogue differs from the generated one
	ErrDrift = New("generated catalogue is out of date")
)

// IsDrift reports whether err is or wraps ErrDrift.
func IsDrift(err error) bool {
	return err != nil && Is(err, ErrDrift)
}

// IsMalformed reports whether err stems from bad metadata rather than a generator defect.
func IsMalformed(err error) bool {
	return err != nil && IsAny(err, ErrMalformedInput, ErrMalformedCodepoint)
}
