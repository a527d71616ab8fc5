/*
NAME
  validator.go

DESCRIPTION
  validator.go is the public entry point (spec.md §6): Validator runs the
  per-element validator (4.G) and the cross-element/cross-frame validator
  (4.H) against every recognized constraint set for each frame handed to
  ValidateFrame, and exposes the results through the issue.Handler it
  owns.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package validate implements the conformance checks run against a
// parsed Frame: per-element field legality, cross-element structural
// rules, the DbyIMF continuous-audio-sequence rule, DbyCinema's
// dependent limits, and cross-frame persistence.
package validate

import (
	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/issue"
	"github.com/ausocean/iab/model"
)

// ErrStopRequested is returned by ValidateFrame when the issue handler
// has asked validation to terminate early (spec.md §4.I). No issue in
// this implementation currently requests it; the hook is preserved for
// a future "fatal during validation" event.
var ErrStopRequested = errors.New("validate: handler requested termination")

// Validator accumulates conformance issues across a stream of frames, one
// issue.Handler per run, tagging every finding with its originating
// constraint set and frame index.
type Validator struct {
	handler *issue.Handler
	log     logging.Logger

	// globals holds each constraint set's cross-frame persistence
	// baseline, recorded from that set's first validated frame and
	// overwritten (not intersected) after every subsequent frame - see
	// applyPersistence.
	globals map[constraint.Set]*frameGlobals
}

// New returns a ready-to-use Validator.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		handler: issue.NewHandler(),
		globals: make(map[constraint.Set]*frameGlobals),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, errors.Wrap(err, "validate: applying option")
		}
	}
	return v, nil
}

// ValidateFrame runs every check against f for every recognized
// constraint set, tagging findings with frameIndex. It returns
// ErrStopRequested if the handler asked validation to terminate.
func (v *Validator) ValidateFrame(f *model.Frame, frameIndex int) error {
	if v.log != nil {
		v.log.Debug("validating frame", "frame", frameIndex, "sets", len(constraint.All()))
	}
	for _, set := range constraint.All() {
		v.validateSet(set, f, frameIndex)
		if v.handler.StopRequested() {
			if v.log != nil {
				v.log.Warning("handler requested termination", "frame", frameIndex, "set", set)
			}
			return ErrStopRequested
		}
	}
	if v.log != nil {
		v.log.Debug("finished validating frame", "frame", frameIndex)
	}
	return nil
}

func (v *Validator) validateSet(set constraint.Set, f *model.Frame, frameIndex int) {
	if v.log != nil {
		v.log.Debug("starting pass", "frame", frameIndex, "set", set)
	}
	p := constraint.For(set)
	validateFrame(v.handler, set, p, f, frameIndex)

	d := collectFrameData(f)
	applyStructuralRules(v.handler, set, p, d, frameIndex)
	if p.ContinuousAudioSequenceRequired {
		applyContinuousAudioSequenceRule(v.handler, set, d, frameIndex)
	}
	applyProfileDependentRules(v.handler, set, p, d, frameIndex)
	applyPersistence(v.handler, set, f, d, frameIndex, v.globals[set])

	v.globals[set] = snapshotGlobals(f, d)

	if v.log != nil {
		v.log.Debug("finished pass", "frame", frameIndex, "set", set, "result", v.handler.Result(set))
	}
}

// Result returns set's hierarchical conformance verdict.
func (v *Validator) Result(set constraint.Set) issue.Result {
	return v.handler.Result(set)
}

// Issues returns the hierarchical union of issues along set's dependency
// chain, ordered [base, ..., set].
func (v *Validator) Issues(set constraint.Set) []issue.Issue {
	return v.handler.Issues(set)
}

// IssuesSingleSet returns only set's own issue list.
func (v *Validator) IssuesSingleSet(set constraint.Set) []issue.Issue {
	return v.handler.IssuesSingleSet(set)
}
