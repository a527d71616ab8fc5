/*
NAME
  validator_test.go

DESCRIPTION
  validator_test.go exercises Validator against the concrete scenarios
  and testable properties in spec.md §8.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package validate

import (
	"testing"

	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/issue"
	"github.com/ausocean/iab/model"
)

func minimalCinemaFrame() *model.Frame {
	f := model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)

	bed := model.NewBedDefinition(1)
	bed.UseCase = model.UseCaseCinema
	bed.Channels = []model.BedChannel{
		{ChannelID: model.ChannelLeft, AudioDataID: 1, Gain: model.Gain{Prefix: model.GainPrefixUnitGain}},
		{ChannelID: model.ChannelRight, AudioDataID: 2, Gain: model.Gain{Prefix: model.GainPrefixUnitGain}},
	}
	bed.NumChannels = 2
	if err := f.AddSubElement(bed); err != nil {
		panic(err)
	}

	for id := model.AudioDataID(1); id <= 2; id++ {
		d := model.NewAudioDataDLC(id)
		d.DLCSampleRate = model.SampleRate48kHz
		if err := f.AddSubElement(d); err != nil {
			panic(err)
		}
	}

	f.MaxRendered = 2
	return f
}

// Scenario 1: a minimal, well-formed Cinema frame validates clean under
// the base Cinema set.
func TestMinimalValidFrameProducesNoIssues(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := minimalCinemaFrame()
	if err := v.ValidateFrame(f, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}
	if got := v.Result(constraint.CinemaST2098_2_2018); got != issue.Valid {
		t.Fatalf("Result = %v, want Valid", got)
	}
	if issues := v.IssuesSingleSet(constraint.CinemaST2098_2_2018); len(issues) != 0 {
		t.Fatalf("IssuesSingleSet = %v, want none", issues)
	}
}

// Scenario 2: a bed channel referencing an AudioDataID with no matching
// essence element produces exactly one MissingAudioDataEssenceElement
// issue.
func TestMissingEssenceReferenceReportsExactlyOneIssue(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := minimalCinemaFrame()
	f.Beds()[0].Channels[0].AudioDataID = 99

	if err := v.ValidateFrame(f, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}

	var matches []issue.Issue
	for _, iss := range v.IssuesSingleSet(constraint.CinemaST2098_2_2018) {
		if iss.Code == issue.CodeMissingAudioDataEssenceElement {
			matches = append(matches, iss)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("got %d MissingAudioDataEssenceElement issues, want 1: %v", len(matches), matches)
	}
	if matches[0].ElementID != 99 {
		t.Errorf("ElementID = %d, want 99", matches[0].ElementID)
	}
	if got := v.Result(constraint.CinemaST2098_2_2018); got != issue.Invalid {
		t.Fatalf("Result = %v, want Invalid", got)
	}
}

// Scenario 3: the same MetaID reused across two separate frames is fine;
// reused within a single frame is a duplicate error.
func TestDuplicateMetaIDOnlyFlaggedWithinOneFrame(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	f1 := minimalCinemaFrame()
	if err := v.ValidateFrame(f1, 0); err != nil {
		t.Fatalf("ValidateFrame frame 0: %v", err)
	}
	f2 := minimalCinemaFrame() // MetaID 1 again, different frame: fine
	if err := v.ValidateFrame(f2, 1); err != nil {
		t.Fatalf("ValidateFrame frame 1: %v", err)
	}
	for _, iss := range v.IssuesSingleSet(constraint.CinemaST2098_2_2018) {
		if iss.Code == issue.CodeBedDefinitionDuplicateMetaID {
			t.Fatalf("unexpected duplicate-MetaID issue across frames: %v", iss)
		}
	}

	f3 := minimalCinemaFrame()
	dup := model.NewBedDefinition(1) // same MetaID as the existing bed, same frame
	dup.UseCase = model.UseCaseCinema
	if err := f3.AddSubElement(dup); err != nil {
		t.Fatalf("AddSubElement: %v", err)
	}
	if err := v.ValidateFrame(f3, 2); err != nil {
		t.Fatalf("ValidateFrame frame 2: %v", err)
	}
	found := false
	for _, iss := range v.IssuesSingleSet(constraint.CinemaST2098_2_2018) {
		if iss.Code == issue.CodeBedDefinitionDuplicateMetaID && iss.FrameIndex == 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a duplicate-MetaID issue for frame 2")
	}
}

// Scenario 4: a frame rate change between frames is a persistence
// violation reported against the later frame.
func TestFrameRateChangeAcrossFramesIsNotPersistent(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f0 := minimalCinemaFrame()
	if err := v.ValidateFrame(f0, 0); err != nil {
		t.Fatalf("ValidateFrame frame 0: %v", err)
	}

	f1 := minimalCinemaFrame()
	f1.FrameRate = model.FrameRate25
	if err := v.ValidateFrame(f1, 1); err != nil {
		t.Fatalf("ValidateFrame frame 1: %v", err)
	}

	found := false
	for _, iss := range v.IssuesSingleSet(constraint.CinemaST2098_2_2018) {
		if iss.Code == issue.CodeFrameFrameRateNotPersistent && iss.FrameIndex == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CodeFrameFrameRateNotPersistent on frame 1")
	}
}

// Scenario 5: DbyIMF's continuous-audio-sequence rule requires PCM
// essence to immediately precede the bed/object that references it.
func TestDbyIMFContinuousAudioSequence(t *testing.T) {
	buildFrame := func(pcmFirst bool) *model.Frame {
		f := model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)
		bed := model.NewBedDefinition(1)
		bed.UseCase = model.UseCaseCinema
		bed.Channels = []model.BedChannel{
			{ChannelID: model.ChannelLeft, AudioDataID: 1, Gain: model.Gain{Prefix: model.GainPrefixUnitGain}},
		}
		bed.NumChannels = 1
		pcm := model.NewAudioDataPCM(1)
		pcm.SampleRate = model.SampleRate48kHz
		pcm.BitDepth = model.BitDepth24
		pcm.FrameRate = model.FrameRate24

		if pcmFirst {
			_ = f.AddSubElement(pcm)
			_ = f.AddSubElement(bed)
		} else {
			_ = f.AddSubElement(bed)
			_ = f.AddSubElement(pcm)
		}
		f.MaxRendered = 1
		return f
	}

	t.Run("pcm before bed is conformant", func(t *testing.T) {
		v, err := New()
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := v.ValidateFrame(buildFrame(true), 0); err != nil {
			t.Fatalf("ValidateFrame: %v", err)
		}
		for _, iss := range v.IssuesSingleSet(constraint.DbyIMF) {
			if iss.Code == issue.CodeDolIMFNotMeetingContinuousAudioSequence {
				t.Fatalf("unexpected sequence violation: %v", iss)
			}
		}
	})

	t.Run("bed before pcm is non-conformant", func(t *testing.T) {
		v, err := New()
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := v.ValidateFrame(buildFrame(false), 0); err != nil {
			t.Fatalf("ValidateFrame: %v", err)
		}
		found := false
		for _, iss := range v.IssuesSingleSet(constraint.DbyIMF) {
			if iss.Code == issue.CodeDolIMFNotMeetingContinuousAudioSequence {
				found = true
			}
		}
		if !found {
			t.Fatal("expected CodeDolIMFNotMeetingContinuousAudioSequence")
		}
		if got := v.Result(constraint.DbyIMF); got != issue.Invalid {
			t.Fatalf("Result(DbyIMF) = %v, want Invalid", got)
		}
	})
}

// Scenario 6: DbyCinema requires gapless 1..n ObjectDefinition MetaIDs;
// the base Cinema sets have no such requirement.
func TestDbyCinemaRequiresSequentialObjectMetaIDs(t *testing.T) {
	buildFrame := func(ids []model.MetaID) *model.Frame {
		f := model.NewFrame(1, model.SampleRate48kHz, model.BitDepth24, model.FrameRate24)
		for _, id := range ids {
			o := model.NewObjectDefinition(id)
			o.UseCase = model.UseCaseNoUseCase
			if err := f.AddSubElement(o); err != nil {
				panic(err)
			}
		}
		f.MaxRendered = uint32(len(ids))
		return f
	}

	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	good := buildFrame([]model.MetaID{1, 2, 3})
	if err := v.ValidateFrame(good, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}
	if got := v.Result(constraint.DbyCinema); got != issue.Valid {
		t.Fatalf("Result(DbyCinema) for {1,2,3} = %v, want Valid", got)
	}
	if got := v.Result(constraint.CinemaST2098_2_2018); got != issue.Valid {
		t.Fatalf("Result(CinemaST2098_2_2018) for {1,2,3} = %v, want Valid", got)
	}

	v2, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bad := buildFrame([]model.MetaID{1, 2, 4})
	if err := v2.ValidateFrame(bad, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}
	found := false
	for _, iss := range v2.IssuesSingleSet(constraint.DbyCinema) {
		if iss.Code == issue.CodeDolCinObjectDefinitionNonSequentialMetaID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CodeDolCinObjectDefinitionNonSequentialMetaID for {1,2,4}")
	}
	if got := v2.Result(constraint.DbyCinema); got != issue.Invalid {
		t.Fatalf("Result(DbyCinema) for {1,2,4} = %v, want Invalid", got)
	}
	if got := v2.Result(constraint.CinemaST2098_2_2018); got != issue.Valid {
		t.Fatalf("Result(CinemaST2098_2_2018) for {1,2,4} = %v, want Valid (unaffected by a DbyCinema-only rule)", got)
	}
}

// P2: a dependent set's result is never more permissive than its base
// set's own result.
func TestHierarchicalResultNeverBetterThanBase(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := minimalCinemaFrame()
	f.SampleRate = model.SampleRate(99) // unsupported under every set
	if err := v.ValidateFrame(f, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}
	base := v.Result(constraint.CinemaST2098_2_2018)
	dependent := v.Result(constraint.DbyCinema)
	if dependent < base {
		t.Fatalf("Result(DbyCinema) = %v is more permissive than Result(base) = %v", dependent, base)
	}
}

// P3: Issues(set) is the ordered union of every set in set's dependency
// chain.
func TestIssuesIsHierarchicalUnion(t *testing.T) {
	v, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := minimalCinemaFrame()
	f.Beds()[0].Channels[0].AudioDataID = 99 // base-set error
	if err := v.ValidateFrame(f, 0); err != nil {
		t.Fatalf("ValidateFrame: %v", err)
	}

	union := v.Issues(constraint.DbyCinema)
	own := v.IssuesSingleSet(constraint.CinemaST2098_2_2018)
	if len(union) < len(own) {
		t.Fatalf("Issues(DbyCinema) has %d entries, base set alone has %d", len(union), len(own))
	}
	baseFound := false
	for _, iss := range union {
		if iss.ConstraintSet == constraint.CinemaST2098_2_2018 && iss.Code == issue.CodeMissingAudioDataEssenceElement {
			baseFound = true
		}
	}
	if !baseFound {
		t.Fatal("expected the base set's MissingAudioDataEssenceElement issue in DbyCinema's union")
	}
}
