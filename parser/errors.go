/*
NAME
  errors.go

DESCRIPTION
  errors.go defines ParseError, the parser's fatal-to-current-frame
  failure taxonomy (spec.md §4.F/§7).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package parser

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ErrEndOfStream is returned when no preamble is found on a frame
	// after the first; it is benign and simply means the stream is
	// exhausted.
	ErrEndOfStream ErrorKind = iota

	// ErrMissingPreamble is returned when no preamble is found before
	// the first frame.
	ErrMissingPreamble

	// ErrInvalidVersion, ErrInvalidSampleRate, ErrInvalidFrameRate and
	// ErrInvalidBitDepth name a Frame header field outside its recognized
	// code range. The decoder stores Frame header codes as read and never
	// returns these kinds; unsupported sample rate, bit depth and frame
	// rate codes are reported by package validate instead.
	ErrInvalidVersion
	ErrInvalidSampleRate
	ErrInvalidFrameRate
	ErrInvalidBitDepth

	// ErrSubFrameHeaderInconsistent reports a malformed sub-frame header
	// (e.g. a declared frame length the stream cannot supply).
	ErrSubFrameHeaderInconsistent

	// ErrElementLengthMismatch reports that an element's decoded body
	// did not consume exactly its declared BodyLength.
	ErrElementLengthMismatch

	// ErrReadPastEnd reports a read that ran off the end of the buffer
	// mid-frame.
	ErrReadPastEnd

	// ErrCorruption is the generic catch-all for a malformed bitstream
	// that does not fit a more specific category.
	ErrCorruption
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEndOfStream:
		return "end of stream"
	case ErrMissingPreamble:
		return "missing preamble"
	case ErrInvalidVersion:
		return "invalid version"
	case ErrInvalidSampleRate:
		return "invalid sample rate"
	case ErrInvalidFrameRate:
		return "invalid frame rate"
	case ErrInvalidBitDepth:
		return "invalid bit depth"
	case ErrSubFrameHeaderInconsistent:
		return "sub-frame header inconsistent"
	case ErrElementLengthMismatch:
		return "element length mismatch"
	case ErrReadPastEnd:
		return "read past end"
	case ErrCorruption:
		return "possible data corruption"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a fatal-to-current-frame parse failure. Every ParseError
// except ErrEndOfStream aborts the frame currently being decoded; the
// caller must discard any partially built Frame.
type ParseError struct {
	Kind ErrorKind
	Err  error // wrapped cause, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parser: %s: %v", e.Kind, e.Err)
	}
	return "parser: " + e.Kind.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(k ErrorKind, cause error) *ParseError {
	return &ParseError{Kind: k, Err: cause}
}
