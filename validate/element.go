/*
NAME
  element.go

DESCRIPTION
  element.go is the per-element validator (spec.md §4.G): each function
  checks one element's own field values against ST2098-2's mandatory
  rules and the active constraint set's allowed-value tables, and
  recurses into sub-elements. It knows nothing about siblings, ordering,
  or persistence across frames - that is entirely the cross-element and
  cross-frame validator's job (cross.go).

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
	"github.com/ausocean/iab/constraint"
	"github.com/ausocean/iab/issue"
	"github.com/ausocean/iab/model"
)

func validateFrame(h *issue.Handler, set constraint.Set, p constraint.Profile, f *model.Frame, frameIndex int) {
	if !p.AllowedSampleRate(f.SampleRate) {
		code := issue.CodeFrameUnsupportedSampleRate
		if set == constraint.DbyCinema {
			code = issue.CodeDolCinFrameUnsupportedSampleRate
		}
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, code, "unsupported sample rate %v", f.SampleRate))
	}
	if !p.AllowedBitDepth(f.BitDepth) {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameUnsupportedBitDepth,
			"unsupported bit depth %v", f.BitDepth))
	}
	if !p.AllowedFrameRate(f.FrameRate) {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameUnsupportedFrameRate,
			"unsupported frame rate %v", f.FrameRate))
	}

	renderable := 0
	for _, b := range f.Beds() {
		renderable += len(b.Channels)
	}
	renderable += len(f.Objects())
	if uint32(renderable) != f.MaxRendered {
		h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeWarningFrameMaxRenderedNotMatchObjectNumbers,
			"MaxRendered declares %d but the frame carries %d renderable bed channels/objects", f.MaxRendered, renderable))
	}

	if f.NumUndefinedSubElements > 0 {
		if p.AllowsReservedEnum {
			h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeWarningFrameContainUndefinedSubElement,
				"frame contains %d undefined/unrecognized sub-element(s)", f.NumUndefinedSubElements))
		} else {
			h.Handle(issue.New(set, frameIndex, model.KindFrame.String(), 0, issue.CodeFrameUndefinedElementType,
				"frame contains %d undefined/unrecognized sub-element(s)", f.NumUndefinedSubElements))
		}
	}

	for _, b := range f.Beds() {
		validateBedDefinition(h, set, p, b, frameIndex)
	}
	for _, o := range f.Objects() {
		validateObjectDefinition(h, set, p, o, frameIndex)
	}
	for _, d := range f.DLCEssence() {
		validateAudioDataDLC(h, set, p, d, f.SampleRate, frameIndex)
	}
	for _, pcm := range f.PCMEssence() {
		validateAudioDataPCM(h, set, pcm, frameIndex)
	}
}

func validateBedDefinition(h *issue.Handler, set constraint.Set, p constraint.Profile, b *model.BedDefinition, frameIndex int) {
	if len(b.AudioDescription) > model.AudioDescriptionTextMaxLen {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionAudioDescriptionTextExceeded,
			"AudioDescription text is %d bytes, exceeds the %d byte limit", len(b.AudioDescription), model.AudioDescriptionTextMaxLen))
	}
	if b.NumChannels != uint32(len(b.Channels)) {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionChannelCountConflict,
			"declared channel count %d does not match %d decoded channels", b.NumChannels, len(b.Channels)))
	}
	if b.NumSubElements != uint32(len(b.SubElements())) {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionSubElementCountConflict,
			"declared sub-element count %d does not match %d decoded sub-elements", b.NumSubElements, len(b.SubElements())))
	}
	if b.Conditional && !p.AllowedBedUseCase(b.UseCase) {
		reportBedUseCaseIssue(h, set, p, b, frameIndex)
	}

	seenChannels := map[model.ChannelID]bool{}
	for _, ch := range b.Channels {
		if seenChannels[ch.ChannelID] {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionDuplicateChannelID,
				"duplicate ChannelID %v on bed", ch.ChannelID))
		}
		seenChannels[ch.ChannelID] = true

		if !p.AllowedChannelID(ch.ChannelID) {
			reportBedChannelIDIssue(h, set, p, b, ch, frameIndex)
		}
		if !p.AllowedGainPrefix(ch.Gain.Prefix) {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), bedGainPrefixErrorCode(set),
				"channel %v has unsupported gain prefix %v", ch.ChannelID, ch.Gain.Prefix))
		}
		if !p.AllowedDecorPrefix(ch.Decor.Prefix) {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeBedDefinitionUnsupportedDecorPrefix,
				"channel %v has unsupported decor prefix %v", ch.ChannelID, ch.Decor.Prefix))
		}
		if (set == constraint.DbyCinema || set == constraint.DbyIMF) && ch.Decor.Prefix != model.DecorCoefPrefixNotExists {
			h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), bedDecorNotZeroCode(set),
				"channel %v decor coefficient must not be present under this profile", ch.ChannelID))
		}
	}

	for _, nb := range b.NestedBeds() {
		validateBedDefinition(h, set, p, nb, frameIndex)
	}
	for _, r := range b.Remaps() {
		validateBedRemap(h, set, p, r, b, frameIndex)
	}
}

func reportBedUseCaseIssue(h *issue.Handler, set constraint.Set, p constraint.Profile, b *model.BedDefinition, frameIndex int) {
	if p.AllowsReservedEnum {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeWarningBedDefinitionUndefinedUseCase,
			"bed has reserved/undefined UseCase %v", b.UseCase))
		return
	}
	code := issue.CodeBedDefinitionInvalidUseCase
	if set == constraint.DbyCinema {
		code = issue.CodeDolCinBedDefinitionInvalidUseCase
	}
	h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), code, "bed has invalid UseCase %v", b.UseCase))
}

func reportBedChannelIDIssue(h *issue.Handler, set constraint.Set, p constraint.Profile, b *model.BedDefinition, ch model.BedChannel, frameIndex int) {
	if p.AllowsReservedEnum {
		h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), issue.CodeWarningBedDefinitionUndefinedChannelID,
			"bed channel has reserved/undefined ChannelID %v", ch.ChannelID))
		return
	}
	h.Handle(issue.New(set, frameIndex, model.KindBedDefinition.String(), uint32(b.MetaID), channelIDErrorCode(set),
		"bed channel has invalid ChannelID %v", ch.ChannelID))
}

func channelIDErrorCode(set constraint.Set) issue.Code {
	switch set {
	case constraint.DbyCinema:
		return issue.CodeDolCinBedDefinitionInvalidChannelID
	case constraint.DbyIMF:
		return issue.CodeDolIMFBedDefinitionInvalidChannelID
	default:
		return issue.CodeBedDefinitionInvalidChannelID
	}
}

func bedGainPrefixErrorCode(set constraint.Set) issue.Code {
	switch set {
	case constraint.DbyCinema:
		return issue.CodeDolCinBedDefinitionInvalidGainPrefix
	case constraint.DbyIMF:
		return issue.CodeDolIMFBedDefinitionInvalidGainPrefix
	default:
		return issue.CodeBedDefinitionUnsupportedGainPrefix
	}
}

func bedDecorNotZeroCode(set constraint.Set) issue.Code {
	if set == constraint.DbyIMF {
		return issue.CodeDolIMFBedDefinitionChannelDecorInfoExistNotZero
	}
	return issue.CodeDolCinBedDefinitionChannelDecorInfoExistNotZero
}

func validateBedRemap(h *issue.Handler, set constraint.Set, p constraint.Profile, r *model.BedRemap, parentBed *model.BedDefinition, frameIndex int) {
	if r.SourceChannels != uint32(len(parentBed.Channels)) {
		h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapSourceChannelCountNotEqualToBed,
			"remap source channel count %d does not match parent bed's %d channels", r.SourceChannels, len(parentBed.Channels)))
	}
	if r.NumSubblocks != uint32(len(r.Subblocks)) {
		h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapSubblockCountConflict,
			"declared sub-block count %d does not match %d decoded sub-blocks", r.NumSubblocks, len(r.Subblocks)))
	}
	if r.DestChannels != uint32(len(r.Subblocks)) {
		h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapDestinationChannelCountConflict,
			"declared destination channel count %d does not match %d decoded sub-blocks", r.DestChannels, len(r.Subblocks)))
	}
	for _, sb := range r.Subblocks {
		if !p.AllowedChannelID(sb.DestChannelID) {
			if p.AllowsReservedEnum {
				h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeWarningBedRemapUndefinedChannelID,
					"remap destination channel has reserved/undefined ChannelID %v", sb.DestChannelID))
			} else {
				h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapInvalidDestChannelID,
					"remap destination channel has invalid ChannelID %v", sb.DestChannelID))
			}
		}
		if uint32(len(sb.Coefficients)) != r.SourceChannels {
			h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapSourceChannelCountConflict,
				"remap sub-block has %d coefficients, expected %d (source channel count)", len(sb.Coefficients), r.SourceChannels))
		}
	}
	if !p.AllowedBedUseCase(r.UseCase) {
		if p.AllowsReservedEnum {
			h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeWarningBedRemapUndefinedUseCase,
				"remap has reserved/undefined UseCase %v", r.UseCase))
		} else {
			h.Handle(issue.New(set, frameIndex, model.KindBedRemap.String(), uint32(r.MetaID), issue.CodeBedRemapInvalidUseCase,
				"remap has invalid UseCase %v", r.UseCase))
		}
	}
}

func validateObjectDefinition(h *issue.Handler, set constraint.Set, p constraint.Profile, o *model.ObjectDefinition, frameIndex int) {
	if len(o.AudioDescription) > model.AudioDescriptionTextMaxLen {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionAudioDescriptionTextExceeded,
			"AudioDescription text is %d bytes, exceeds the %d byte limit", len(o.AudioDescription), model.AudioDescriptionTextMaxLen))
	}
	if o.NumSubblocks != uint32(len(o.Subblocks)) {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionPanSubblockCountConflict,
			"declared pan sub-block count %d does not match %d decoded sub-blocks", o.NumSubblocks, len(o.Subblocks)))
	}
	if o.NumSubElements != uint32(len(o.SubElements())) {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionSubElementCountConflict,
			"declared sub-element count %d does not match %d decoded sub-elements", o.NumSubElements, len(o.SubElements())))
	}
	if o.Conditional && !p.AllowedObjectUseCase(o.UseCase) {
		reportObjectUseCaseIssue(h, set, p, o, frameIndex)
	}

	for _, sb := range o.Subblocks {
		if !sb.PanInfoExists {
			continue
		}
		if !p.AllowedGainPrefix(sb.Gain.Prefix) {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), objectGainPrefixErrorCode(set),
				"pan sub-block has unsupported gain prefix %v", sb.Gain.Prefix))
		}
		if p.SnapTolExistsMustBeZero && sb.SnapTolExists {
			code := issue.CodeDolCinObjectDefinitionSnapTolExistsNotZero
			if set == constraint.DbyIMF {
				code = issue.CodeDolIMFObjectDefinitionSnapTolExistsNotZero
			}
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), code,
				"SnapTolExists must be false under this profile"))
		}
		if !p.AllowedSpreadMode(sb.Spread) {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), spreadModeErrorCode(set),
				"pan sub-block has unsupported spread mode %v", sb.Spread))
		}
		if !p.AllowedDecorPrefix(sb.Decor.Prefix) {
			h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionUnsupportedDecorPrefix,
				"pan sub-block has unsupported decor prefix %v", sb.Decor.Prefix))
		}
		for _, zg := range sb.ZoneGains9 {
			validateZoneGain(h, set, p, model.KindObjectDefinition.String(), uint32(o.MetaID), zg, frameIndex)
		}
	}

	for _, no := range o.NestedObjects() {
		validateObjectDefinition(h, set, p, no, frameIndex)
	}
	for _, z := range o.Zones() {
		validateZone19(h, set, p, z, o, frameIndex)
	}
}

func reportObjectUseCaseIssue(h *issue.Handler, set constraint.Set, p constraint.Profile, o *model.ObjectDefinition, frameIndex int) {
	if p.AllowsReservedEnum {
		h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeWarningObjectDefinitionUndefinedUseCase,
			"object has reserved/undefined UseCase %v", o.UseCase))
		return
	}
	h.Handle(issue.New(set, frameIndex, model.KindObjectDefinition.String(), uint32(o.MetaID), issue.CodeObjectDefinitionInvalidUseCase,
		"object has invalid UseCase %v", o.UseCase))
}

func objectGainPrefixErrorCode(set constraint.Set) issue.Code {
	switch set {
	case constraint.DbyCinema:
		return issue.CodeDolCinObjectDefinitionInvalidGainPrefix
	case constraint.DbyIMF:
		return issue.CodeDolIMFObjectDefinitionInvalidGainPrefix
	default:
		return issue.CodeObjectDefinitionUnsupportedGainPrefix
	}
}

func spreadModeErrorCode(set constraint.Set) issue.Code {
	switch set {
	case constraint.DbyCinema:
		return issue.CodeDolCinObjectDefinitionInvalidSpreadMode
	case constraint.DbyIMF:
		return issue.CodeDolIMFObjectDefinitionInvalidSpreadMode
	default:
		return issue.CodeObjectDefinitionUnsupportedSpreadMode
	}
}

func zoneGainPrefixErrorCode(set constraint.Set) issue.Code {
	switch set {
	case constraint.DbyCinema:
		return issue.CodeDolCinObjectDefinitionInvalidZoneGainPrefix
	case constraint.DbyIMF:
		return issue.CodeDolIMFObjectDefinitionInvalidZoneGainPrefix
	default:
		return issue.CodeObjectDefinitionUnsupportedZoneGainPrefix
	}
}

func validateZoneGain(h *issue.Handler, set constraint.Set, p constraint.Profile, elemKind string, elemID uint32, zg model.ZoneGain, frameIndex int) {
	if !p.AllowedZoneGainPrefix(zg.Prefix) {
		h.Handle(issue.New(set, frameIndex, elemKind, elemID, zoneGainPrefixErrorCode(set), "unsupported zone-gain prefix %v", zg.Prefix))
	}
	if p.ZoneGainsMustBePreset && zg.Prefix == model.ZoneGainPrefixInStream && !isPresetZoneGainCode(zg.Code) {
		if p.ZoneGainPresetIsWarningOnly {
			h.Handle(issue.New(set, frameIndex, elemKind, elemID, issue.CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset,
				"zone gain code %d is not one of the fixed presets", zg.Code))
		} else {
			h.Handle(issue.New(set, frameIndex, elemKind, elemID, issue.CodeDolCinObjectDefinitionZoneGainsNotAPreset,
				"zone gain code %d is not one of the fixed presets", zg.Code))
		}
	}
}

// isPresetZoneGainCode reports whether code is one of the fixed
// zone-gain presets DbyCinema/DbyIMF require when a ZoneGain is
// in-stream. The numeric preset table was not present in the retrieved
// grounding pack; 0 (the unity/center preset produced by this
// implementation's own encoder) is the only value currently recognized.
func isPresetZoneGainCode(code uint8) bool {
	return code == 0
}

func validateZone19(h *issue.Handler, set constraint.Set, p constraint.Profile, z *model.Zone19, parent *model.ObjectDefinition, frameIndex int) {
	if z.NumSubblocks != uint32(len(z.Subblocks)) {
		h.Handle(issue.New(set, frameIndex, model.KindObjectZoneDefinition19.String(), uint32(parent.MetaID), issue.CodeObjectZoneDefinition19SubblockCountConflict,
			"declared sub-block count %d does not match %d decoded sub-blocks", z.NumSubblocks, len(z.Subblocks)))
	}
	for _, sb := range z.Subblocks {
		for _, zg := range sb.Gains {
			if !p.AllowedZoneGainPrefix(zg.Prefix) {
				h.Handle(issue.New(set, frameIndex, model.KindObjectZoneDefinition19.String(), uint32(parent.MetaID), issue.CodeObjectZoneDefinition19UnsupportedZoneGainPrefix,
					"unsupported zone-gain prefix %v", zg.Prefix))
			}
		}
	}
}

func validateAudioDataDLC(h *issue.Handler, set constraint.Set, p constraint.Profile, d *model.AudioDataDLC, frameSampleRate model.SampleRate, frameIndex int) {
	if d.AudioDataID == model.SilentAudioDataID {
		h.Handle(issue.New(set, frameIndex, model.KindAudioDataDLC.String(), 0, issue.CodeAudioDataDLCAudioDataIDZero,
			"AudioDataDLC may not use the reserved silent AudioDataID 0"))
	}
	if !p.AllowedSampleRate(d.DLCSampleRate) {
		h.Handle(issue.New(set, frameIndex, model.KindAudioDataDLC.String(), uint32(d.AudioDataID), issue.CodeAudioDataDLCUnsupportedSampleRate,
			"unsupported DLC sample rate %v", d.DLCSampleRate))
	}
	if d.DLCSampleRate != frameSampleRate {
		h.Handle(issue.New(set, frameIndex, model.KindAudioDataDLC.String(), uint32(d.AudioDataID), issue.CodeAudioDataDLCSampleRateConflict,
			"DLC sample rate %v does not match frame sample rate %v", d.DLCSampleRate, frameSampleRate))
	}
}

func validateAudioDataPCM(h *issue.Handler, set constraint.Set, pcm *model.AudioDataPCM, frameIndex int) {
	if pcm.AudioDataID == model.SilentAudioDataID {
		h.Handle(issue.New(set, frameIndex, model.KindAudioDataPCM.String(), 0, issue.CodeAudioDataPCMAudioDataIDZero,
			"AudioDataPCM may not use the reserved silent AudioDataID 0"))
	}
}
