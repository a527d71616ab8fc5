/*
NAME
  handler.go

DESCRIPTION
  handler.go defines Handler, the per-constraint-set issue aggregator: it
  collects Issues under the set they were raised against, derives a
  Valid/ValidWithWarning/Invalid Result per set, and rolls both the issue
  list and the Result up each set's dependency chain.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package issue

import "github.com/ausocean/iab/constraint"

// Result is the conformance verdict for one constraint set.
type Result int

const (
	Valid Result = iota
	ValidWithWarning
	Invalid
)

// String names a Result the way conformance reports render it.
func (r Result) String() string {
	switch r {
	case Valid:
		return "Valid"
	case ValidWithWarning:
		return "ValidWithWarning"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// worse returns whichever of a, b is the less conformant Result.
func worse(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}

// setState is one constraint set's running accumulator.
type setState struct {
	hasError   bool
	hasWarning bool
	issues     []Issue
}

// Handler accumulates Issues per constraint.Set and answers hierarchical
// result/issue-list queries. The zero value is ready to use.
type Handler struct {
	sets map[constraint.Set]*setState

	// stopRequested latches true the first time Handle's caller-supplied
	// policy (see WithTerminationPolicy-style future hook, spec.md §4.I)
	// asks for termination. No issue in this implementation currently
	// requests it; the field exists so Validator can propagate a stop
	// signal once one does.
	stopRequested bool
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{sets: make(map[constraint.Set]*setState)}
}

func (h *Handler) state(set constraint.Set) *setState {
	s, ok := h.sets[set]
	if !ok {
		s = &setState{}
		h.sets[set] = s
	}
	return s
}

// Handle dispatches issue onto its ConstraintSet's list and flags. It
// returns false if the handler wants validation to stop; every Issue in
// this implementation returns true (see StopRequested).
func (h *Handler) Handle(iss Issue) bool {
	s := h.state(iss.ConstraintSet)
	s.issues = append(s.issues, iss)
	switch iss.Severity {
	case Warning:
		s.hasWarning = true
	default:
		s.hasError = true
	}
	return !h.stopRequested
}

// StopRequested reports whether a prior call to Handle asked for
// validation to terminate early.
func (h *Handler) StopRequested() bool {
	return h.stopRequested
}

// ownResult computes set's result from its own flags only, with no
// hierarchical downgrade.
func (h *Handler) ownResult(set constraint.Set) Result {
	s, ok := h.sets[set]
	if !ok {
		return Valid
	}
	switch {
	case s.hasError:
		return Invalid
	case s.hasWarning:
		return ValidWithWarning
	default:
		return Valid
	}
}

// Result returns set's conformance verdict, downgraded to the worst
// Result anywhere in its dependency chain (spec.md §4.I: "dependent set
// result = its own computed result downgraded to the minimum of its base
// set's result").
func (h *Handler) Result(set constraint.Set) Result {
	r := h.ownResult(set)
	for cur := set; ; {
		p, ok := constraint.Parent(cur)
		if !ok {
			break
		}
		r = worse(r, h.ownResult(p))
		cur = p
	}
	return r
}

// IssuesSingleSet returns set's own issue list, in arrival order. The
// returned slice must not be mutated by the caller.
func (h *Handler) IssuesSingleSet(set constraint.Set) []Issue {
	s, ok := h.sets[set]
	if !ok {
		return nil
	}
	return s.issues
}

// Issues returns the union of issue lists along set's dependency chain,
// ordered [base, ..., set] (spec.md §4.I / P3).
func (h *Handler) Issues(set constraint.Set) []Issue {
	var out []Issue
	for _, s := range constraint.Chain(set) {
		out = append(out, h.IssuesSingleSet(s)...)
	}
	return out
}
