/*
NAME
  issue.go

DESCRIPTION
  issue.go defines Issue, the non-fatal conformance finding a Profile
  reports against one element, and Severity, its error/warning
  classification.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package issue defines the conformance issue type reported by validate,
// and the numeric codes reused from SMPTE's own IAB validator so reports
// stay comparable across implementations.
package issue

import (
	"fmt"

	"github.com/ausocean/iab/constraint"
)

// Severity classifies an Issue as blocking conformance (Error) or merely
// notable (Warning).
type Severity int

const (
	Error Severity = iota
	Warning
)

// String names a Severity the way reports render it.
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Issue is one conformance finding against a specific element within a
// specific frame, for a specific constraint set.
type Issue struct {
	Code     Code
	Severity Severity

	// ConstraintSet is the profile this issue was raised under. Handle
	// dispatches the issue onto this set's own list and flags only; the
	// hierarchical union across a dependency chain is assembled by
	// Handler.Issues.
	ConstraintSet constraint.Set

	// FrameIndex is the zero-based index of the frame the issue was
	// raised against, within the stream being validated.
	FrameIndex int

	// ElementKind/ElementID identify the element the issue concerns.
	// ElementID is the element's MetaID/AudioDataID where it has one, or
	// its Kind's synthetic identity (see model.Element.Identity)
	// otherwise.
	ElementKind string
	ElementID   uint32

	// Message is a human-readable description of the finding, already
	// carrying any element-specific detail (e.g. the out-of-range value
	// encountered).
	Message string
}

// String renders an Issue the way a conformance report lists it.
func (i Issue) String() string {
	return fmt.Sprintf("frame %d: %s (%s %d): [%d] %s",
		i.FrameIndex, i.ElementKind, i.Severity, i.ElementID, i.Code, i.Message)
}

// New returns an Issue with Severity taken from code's own classification.
func New(set constraint.Set, frameIndex int, elementKind string, elementID uint32, code Code, format string, args ...interface{}) Issue {
	return Issue{
		Code:          code,
		Severity:      code.Severity(),
		ConstraintSet: set,
		FrameIndex:    frameIndex,
		ElementKind:   elementKind,
		ElementID:     elementID,
		Message:       fmt.Sprintf(format, args...),
	}
}
