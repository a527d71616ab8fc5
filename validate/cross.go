/*
NAME
  cross.go

DESCRIPTION
  cross.go is the cross-element, cross-frame validator (spec.md §4.H):
  structural relationships between a frame's sub-elements (duplicate
  identifiers, parent/child legality, hierarchy depth, essence
  referential integrity), the DbyIMF continuous-audio-sequence ordering
  rule, DbyCinema's count-dependent limits, and the baseline comparison
  that detects header/bed/object state changing across frames.

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
	"fmt"
	"sort"

	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/issue"
	"github.com/ausocean/iab/model"
)

// bedSnapshot is the subset of a BedDefinition's state compared across
// frames for persistence (spec.md §4.H).
type bedSnapshot struct {
	conditional bool
	useCase     model.UseCase
	channelIDs  map[model.ChannelID]bool
}

// objectSnapshot is the subset of an ObjectDefinition's state compared
// across frames for persistence.
type objectSnapshot struct {
	conditional bool
	useCase     model.UseCase
}

// seqKind tags a seqKey as a bed, object, or PCM essence entry in the
// continuous-audio-sequence ordering vector.
type seqKind int

const (
	seqBed seqKind = iota
	seqObject
	seqPCM
)

// seqKey is one comparable entry in the ordered bed/object/PCM sequence
// DbyIMF's continuous-audio-sequence rule persists across frames.
type seqKey struct {
	kind seqKind
	id   uint32
}

// frameData is the result of one walk over a Frame's sub-elements,
// shared by every rule in this file so the tree is only walked once per
// constraint set per frame.
type frameData struct {
	beds      []*model.BedDefinition
	objects   []*model.ObjectDefinition
	dlc       []*model.AudioDataDLC
	pcm       []*model.AudioDataPCM
	toolInfos []*model.AuthoringToolInfo
	userData  []*model.UserData

	bedMetaIDCount    map[model.MetaID]int
	objectMetaIDCount map[model.MetaID]int
	remapMetaIDCount  map[model.MetaID]int
	dlcIDCount        map[model.AudioDataID]int
	pcmIDCount        map[model.AudioDataID]int

	essenceIDs       map[model.AudioDataID]bool
	referredAudioIDs map[model.AudioDataID]bool

	bedsPersistence    map[model.MetaID]bedSnapshot
	objectsPersistence map[model.MetaID]objectSnapshot

	// ordered holds only the Bed/Object/PCM direct sub-elements of the
	// frame in their original order, for checkContinuousAudioSequence.
	ordered []model.Element
	seq     []seqKey
}

// collectFrameData walks f's direct sub-elements once, building every
// index the structural, profile-dependent and persistence passes need.
func collectFrameData(f *model.Frame) *frameData {
	d := &frameData{
		bedMetaIDCount:     make(map[model.MetaID]int),
		objectMetaIDCount:  make(map[model.MetaID]int),
		remapMetaIDCount:   make(map[model.MetaID]int),
		dlcIDCount:         make(map[model.AudioDataID]int),
		pcmIDCount:         make(map[model.AudioDataID]int),
		essenceIDs:         make(map[model.AudioDataID]bool),
		referredAudioIDs:   make(map[model.AudioDataID]bool),
		bedsPersistence:    make(map[model.MetaID]bedSnapshot),
		objectsPersistence: make(map[model.MetaID]objectSnapshot),
	}

	for _, e := range f.SubElements() {
		switch el := e.(type) {
		case *model.BedDefinition:
			d.beds = append(d.beds, el)
			d.bedMetaIDCount[el.MetaID]++
			d.bedsPersistence[el.MetaID] = bedSnapshot{
				conditional: el.Conditional,
				useCase:     el.UseCase,
				channelIDs:  el.ChannelIDSet(),
			}
			for _, ch := range el.Channels {
				if ch.AudioDataID != model.SilentAudioDataID {
					d.referredAudioIDs[ch.AudioDataID] = true
				}
			}
			for _, r := range el.Remaps() {
				d.remapMetaIDCount[r.MetaID]++
			}
			d.ordered = append(d.ordered, el)
			d.seq = append(d.seq, seqKey{seqBed, uint32(el.MetaID)})

		case *model.ObjectDefinition:
			d.objects = append(d.objects, el)
			d.objectMetaIDCount[el.MetaID]++
			d.objectsPersistence[el.MetaID] = objectSnapshot{
				conditional: el.Conditional,
				useCase:     el.UseCase,
			}
			if el.AudioDataID != model.SilentAudioDataID {
				d.referredAudioIDs[el.AudioDataID] = true
			}
			d.ordered = append(d.ordered, el)
			d.seq = append(d.seq, seqKey{seqObject, uint32(el.MetaID)})

		case *model.AudioDataDLC:
			d.dlc = append(d.dlc, el)
			d.dlcIDCount[el.AudioDataID]++
			d.essenceIDs[el.AudioDataID] = true

		case *model.AudioDataPCM:
			d.pcm = append(d.pcm, el)
			d.pcmIDCount[el.AudioDataID]++
			d.essenceIDs[el.AudioDataID] = true
			d.ordered = append(d.ordered, el)
			d.seq = append(d.seq, seqKey{seqPCM, uint32(el.AudioDataID)})

		case *model.AuthoringToolInfo:
			d.toolInfos = append(d.toolInfos, el)

		case *model.UserData:
			d.userData = append(d.userData, el)
		}
	}
	return d
}

func emitMetaIDDuplicates(h *issue.Handler, set constraint.Set, frameIndex int, kind string, counts map[model.MetaID]int, code issue.Code) {
	for id, n := range counts {
		if n > 1 {
			h.Handle(issue.New(set, frameIndex, kind, uint32(id), code, "MetaID %d appears %d times within the frame", id, n))
		}
	}
}

func emitAudioDataIDDuplicates(h *issue.Handler, set constraint.Set, frameIndex int, kind string, counts map[model.AudioDataID]int, code issue.Code) {
	for id, n := range counts {
		if n > 1 {
			h.Handle(issue.New(set, frameIndex, kind, uint32(id), code, "AudioDataID %d appears %d times within the frame", id, n))
		}
	}
}

// applyStructuralRules checks relationships between a frame's direct and
// nested sub-elements that no single element's own fields can reveal.
func applyStructuralRules(h *issue.Handler, set constraint.Set, p constraint.Profile, d *frameData, frameIndex int) {
	emitMetaIDDuplicates(h, set, frameIndex, model.KindBedDefinition.String(), d.bedMetaIDCount, issue.CodeBedDefinitionDuplicateMetaID)
	emitMetaIDDuplicates(h, set, frameIndex, model.KindObjectDefinition.String(), d.objectMetaIDCount, issue.CodeObjectDefinitionDuplicateMetaID)
	emitMetaIDDuplicates(h, set, frameIndex, model.KindBedRemap.String(), d.remapMetaIDCount, issue.CodeBedRemapDuplicateMetaID)
	emitAudioDataIDDuplicates(h, set, frameIndex, model.KindAudioDataDLC.String(), d.dlcIDCount, issue.CodeAudioDataDLCDuplicateAudioDataID)
	emitAudioDataIDDuplicates(h, set, frameIndex, model.KindAudioDataPCM.String(), d.pcmIDCount, issue.CodeAudioDataPCMDuplicateAudioDataID)

	for _, b := range d.beds {
		checkBedChildren(h, set, frameIndex, b)
		if !p.SubElementsAllowedInBed {
			checkBedSubElementsAllowed(h, set, frameIndex, b)
		}
	}
	for _, o := range d.objects {
		checkObjectChildren(h, set, frameIndex, o)
		if !p.SubElementsAllowedInObject {
			checkObjectSubElementsAllowed(h, set, frameIndex, o)
		}
		if !p.ObjectZoneDefinition19Allowed {
			for range o.Zones() {
				h.Handle(issue.New(set, frameIndex, model.KindObjectZoneDefinition19.String(), uint32(o.MetaID), issue.CodeDolCinObjectZoneDefinition19NotAnAllowedSubElement,
					"ObjectZoneDefinition19 is not an allowed sub-element under this profile"))
			}
		}
	}

	if !p.AuthoringToolInfoAllowed {
		for range d.toolInfos {
			h.Handle(issue.New(set, frameIndex, model.KindAuthoringToolInfo.String(), 0, issue.CodeDolCinAuthoringToolInfoNotAnAllowedSubElement,
				"AuthoringToolInfo is not an allowed sub-element under this profile"))
		}
	}
	if len(d.toolInfos) > 1 {
		h.Handle(issue.New(set, frameIndex, model.KindAuthoringToolInfo.String(), 0, issue.CodeWarningAuthoringToolInfoMultipleElements,
			"frame carries %d AuthoringToolInfo elements, only one is expected", len(d.toolInfos)))
	}

	for id := range d.referredAudioIDs {
		if !d.essenceIDs[id] {
			h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), uint32(id), issue.CodeMissingAudioDataEssenceElement,
				"AudioDataID %d is referenced but no matching essence element is present in the frame", id))
		}
	}
	for id := range d.dlcIDCount {
		if !d.referredAudioIDs[id] {
			h.Handle(issue.New(set, frameIndex, model.KindAudioDataDLC.String(), uint32(id), issue.CodeWarningUnreferencedAudioDataDLCElement,
				"AudioDataDLC %d is present but not referenced by any bed channel or object", id))
		}
	}
	for id := range d.pcmIDCount {
		if !d.referredAudioIDs[id] {
			h.Handle(issue.New(set, frameIndex, model.KindAudioDataPCM.String(), uint32(id), issue.CodeWarningUnreferencedAudioDataPCMElement,
				"AudioDataPCM %d is present but not referenced by any bed channel or object", id))
		}
	}
}

func checkBedChildren(h *issue.Handler, set constraint.Set, frameIndex int, b *model.BedDefinition) {
	activeByUseCase := make(map[model.UseCase]int)
	for _, nb := range b.NestedBeds() {
		if !nb.Conditional {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(nb.MetaID), issue.CodeWarningBedDefinitionAlwaysActiveSubElement,
				"nested bed %d is not conditional; it is always active alongside its siblings", nb.MetaID))
		} else {
			activeByUseCase[nb.UseCase]++
		}
		if len(nb.NestedBeds()) > 0 {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(nb.MetaID), issue.CodeBedDefinitionHierarchyLevelExceeded,
				"bed nesting exceeds the one permitted conditional level"))
		}
	}
	for uc, n := range activeByUseCase {
		if n > 1 {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionMultiActiveSubElements,
				"%d conditional nested beds share UseCase %v and could be simultaneously active", n, uc))
		}
	}
}

func checkObjectChildren(h *issue.Handler, set constraint.Set, frameIndex int, o *model.ObjectDefinition) {
	activeByUseCase := make(map[model.UseCase]int)
	for _, no := range o.NestedObjects() {
		if !no.Conditional {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(no.MetaID), issue.CodeWarningObjectDefinitionAlwaysActiveSubElement,
				"nested object %d is not conditional; it is always active alongside its siblings", no.MetaID))
		} else {
			activeByUseCase[no.UseCase]++
		}
		if len(no.NestedObjects()) > 0 {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(no.MetaID), issue.CodeObjectDefinitionHierarchyLevelExceeded,
				"object nesting exceeds the one permitted conditional level"))
		}
	}
	for uc, n := range activeByUseCase {
		if n > 1 {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionMultiActiveSubElements,
				"%d conditional nested objects share UseCase %v and could be simultaneously active", n, uc))
		}
	}
	if len(o.Zones()) > 1 {
		h.Handle(issue.New(set, frameIndex, model.KindObjectZoneDefinition19.String(), uint32(o.MetaID), issue.CodeWarningObjectDefinitionMultipleZone19SubElements,
			"object %d carries %d ObjectZoneDefinition19 elements, only one is expected", o.MetaID, len(o.Zones())))
	}
}

func checkBedSubElementsAllowed(h *issue.Handler, set constraint.Set, frameIndex int, b *model.BedDefinition) {
	for _, e := range b.SubElements() {
		if e.Kind() == model.KindBedRemap {
			h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), 0, issue.CodeDolCinBedRemapNotAnAllowedSubElement,
				"BedRemap is not an allowed sub-element of a bed under this profile"))
			continue
		}
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeDolCinBedDefinitionSubElementsNotAllowed,
			"bed %d carries sub-elements, which are not allowed under this profile", b.MetaID))
	}
}

func checkObjectSubElementsAllowed(h *issue.Handler, set constraint.Set, frameIndex int, o *model.ObjectDefinition) {
	for range o.SubElements() {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeDolCinObjectDefinitionSubElementsNotAllowed,
			"object %d carries sub-elements, which are not allowed under this profile", o.MetaID))
	}
}

// applyContinuousAudioSequenceRule enforces DbyIMF's requirement that
// every bed/object be immediately preceded by the PCM essence it draws
// on, in frame order (spec.md §4.H, §9 Open Question: only the first
// violation in a frame is reported).
func applyContinuousAudioSequenceRule(h *issue.Handler, set constraint.Set, d *frameData, frameIndex int) {
	if msg, ok := checkContinuousAudioSequence(d.ordered); !ok {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeDolIMFNotMeetingContinuousAudioSequence, msg))
	}
}

// checkContinuousAudioSequence walks ordered (the frame's Bed/Object/PCM
// direct sub-elements in original order) and returns the first ordering
// violation found, or ("", true) if the sequence is conformant.
func checkContinuousAudioSequence(ordered []model.Element) (string, bool) {
	sawObject := false
	for i, e := range ordered {
		switch el := e.(type) {
		case *model.BedDefinition:
			if sawObject {
				return fmt.Sprintf("bed %d follows an object; beds must not appear after any object in the frame", el.MetaID), false
			}
			n := len(el.Channels)
			if n == 0 {
				continue
			}
			if i < n {
				return fmt.Sprintf("bed %d is not preceded by its %d PCM essence element(s)", el.MetaID, n), false
			}
			need := make(map[model.AudioDataID]bool, n)
			for _, ch := range el.Channels {
				if ch.AudioDataID != model.SilentAudioDataID {
					need[ch.AudioDataID] = true
				}
			}
			for j := i - n; j < i; j++ {
				pcm, ok := ordered[j].(*model.AudioDataPCM)
				if !ok {
					return fmt.Sprintf("bed %d is not immediately preceded by %d AudioDataPCM elements", el.MetaID, n), false
				}
				delete(need, pcm.AudioDataID)
			}
			if len(need) > 0 {
				return fmt.Sprintf("bed %d's preceding PCM elements do not cover all of its referenced channels", el.MetaID), false
			}

		case *model.ObjectDefinition:
			sawObject = true
			if el.AudioDataID == model.SilentAudioDataID {
				continue
			}
			if i < 1 {
				return fmt.Sprintf("object %d is not preceded by its AudioDataPCM essence", el.MetaID), false
			}
			pcm, ok := ordered[i-1].(*model.AudioDataPCM)
			if !ok || pcm.AudioDataID != el.AudioDataID {
				return fmt.Sprintf("object %d is not immediately preceded by its AudioDataPCM essence %d", el.MetaID, el.AudioDataID), false
			}
		}
	}
	return "", true
}

// applyProfileDependentRules checks the count-dependent limits a profile
// declares (spec.md §4.H): maximum bed/channel/object counts, and
// DbyCinema's requirement that object MetaIDs be a gapless 1..n sequence.
func applyProfileDependentRules(h *issue.Handler, set constraint.Set, p constraint.Profile, d *frameData, frameIndex int) {
	if p.MaxBedCount > 0 && len(d.beds) > p.MaxBedCount {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), 0, issue.CodeDolCinBedDefinitionMultipleBedsNotAllowed,
			"frame carries %d beds, exceeding the %d allowed under this profile", len(d.beds), p.MaxBedCount))
	}
	if p.MaxBedChannelCount > 0 {
		for _, b := range d.beds {
			if len(b.Channels) > p.MaxBedChannelCount {
				h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeDolCinBedDefinitionMaxChannelCountExceeded,
					"bed %d carries %d channels, exceeding the %d allowed under this profile", b.MetaID, len(b.Channels), p.MaxBedChannelCount))
			}
		}
	}
	if p.MaxObjectCount > 0 && len(d.objects) > p.MaxObjectCount {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), 0, issue.CodeDolCinObjectDefinitionMaxObjectCountExceeded,
			"frame carries %d objects, exceeding the %d allowed under this profile", len(d.objects), p.MaxObjectCount))
	}
	if p.ObjectMetaIDsMustBeSequential {
		checkObjectMetaIDsSequential(h, set, frameIndex, d.objects)
	}
}

func checkObjectMetaIDsSequential(h *issue.Handler, set constraint.Set, frameIndex int, objects []*model.ObjectDefinition) {
	ids := make([]model.MetaID, len(objects))
	for i, o := range objects {
		ids[i] = o.MetaID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		if uint32(id) != uint32(i+1) {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(id), issue.CodeDolCinObjectDefinitionNonSequentialMetaID,
				"object MetaIDs are not a gapless 1..n sequence: expected %d, found %d", i+1, id))
			return
		}
	}
}

// frameGlobals is the cross-frame persistence baseline for one
// constraint set, established from that set's first validated frame and
// overwritten (not intersected) after every subsequent frame.
type frameGlobals struct {
	version    uint8
	sampleRate model.SampleRate
	bitDepth   model.BitDepth
	frameRate  model.FrameRate

	bedsPersistence    map[model.MetaID]bedSnapshot
	objectsPersistence map[model.MetaID]objectSnapshot
	seq                []seqKey
}

func snapshotGlobals(f *model.Frame, d *frameData) *frameGlobals {
	return &frameGlobals{
		version:            f.Version,
		sampleRate:         f.SampleRate,
		bitDepth:           f.BitDepth,
		frameRate:          f.FrameRate,
		bedsPersistence:    d.bedsPersistence,
		objectsPersistence: d.objectsPersistence,
		seq:                d.seq,
	}
}

// applyPersistence compares f/d against prev, the baseline recorded from
// the previous frame validated under set. prev is nil on the first frame
// for that set, in which case no comparison is made - that frame simply
// establishes the baseline.
func applyPersistence(h *issue.Handler, set constraint.Set, f *model.Frame, d *frameData, frameIndex int, prev *frameGlobals) {
	if prev == nil {
		return
	}

	if f.Version != prev.version {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameBitstreamVersionNotPersistent,
			"bitstream version changed from %d to %d across frames", prev.version, f.Version))
	}
	if f.SampleRate != prev.sampleRate {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameSampleRateNotPersistent,
			"sample rate changed from %v to %v across frames", prev.sampleRate, f.SampleRate))
	}
	if f.BitDepth != prev.bitDepth {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameBitDepthNotPersistent,
			"bit depth changed from %v to %v across frames", prev.bitDepth, f.BitDepth))
	}
	if f.FrameRate != prev.frameRate {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameFrameRateNotPersistent,
			"frame rate changed from %v to %v across frames", prev.frameRate, f.FrameRate))
	}

	if len(d.bedsPersistence) != len(prev.bedsPersistence) {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), 0, issue.CodeBedDefinitionCountNotPersistent,
			"bed count changed from %d to %d across frames", len(prev.bedsPersistence), len(d.bedsPersistence)))
	}
	for id, cur := range d.bedsPersistence {
		old, ok := prev.bedsPersistence[id]
		if !ok {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(id), issue.CodeBedDefinitionMetaIDNotPersistent,
				"bed MetaID %d was not present in the previous frame", id))
			continue
		}
		if len(cur.channelIDs) != len(old.channelIDs) {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(id), issue.CodeBedDefinitionChannelCountNotPersistent,
				"bed %d's channel count changed from %d to %d across frames", id, len(old.channelIDs), len(cur.channelIDs)))
		} else if !sameChannelSet(cur.channelIDs, old.channelIDs) {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(id), issue.CodeBedDefinitionChannelIDsNotPersistent,
				"bed %d's channel ID set changed across frames", id))
		}
		if cur.conditional != old.conditional {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(id), issue.CodeBedDefinitionConditionalStateNotPersistent,
				"bed %d's conditional state changed across frames", id))
		}
	}

	for id, cur := range d.objectsPersistence {
		old, ok := prev.objectsPersistence[id]
		if !ok {
			continue
		}
		if cur.conditional != old.conditional {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(id), issue.CodeObjectDefinitionConditionalStateNotPersistent,
				"object %d's conditional state changed across frames", id))
		}
	}

	if set == constraint.DbyIMF && !sameSeq(d.seq, prev.seq) {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeDolIMFContinuousAudioSequenceNotPersistent,
			"the continuous audio sequence ordering changed across frames"))
	}
}

func sameChannelSet(a, b map[model.ChannelID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func sameSeq(a, b []seqKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
