/*
NAME
  registry.go

DESCRIPTION
  registry.go is the constraint-set registry (spec.md §4.J): a static
  table per Set of allowed values, limits, and boolean "must-be-zero"
  flags, consulted by both the per-element and cross-element validators.
  Adding a new profile only requires a new Profile entry here.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package constraint

import "github.com/ausocean/iab/model"

// Profile is one constraint set's static rule table.
type Profile struct {
	SampleRates []model.SampleRate
	FrameRates  []model.FrameRate
	BitDepths   []model.BitDepth

	BedUseCases    []model.UseCase
	ObjectUseCases []model.UseCase
	ChannelIDs     []model.ChannelID

	GainPrefixes     []model.GainPrefix
	ZoneGainPrefixes []model.ZoneGainPrefix
	DecorPrefixes    []model.DecorCoefPrefix
	SpreadModes      []model.SpreadMode

	// MaxObjectCount is the maximum number of ObjectDefinitions allowed
	// in one frame. 0 means unbounded.
	MaxObjectCount int

	// MaxBedChannelCount is the maximum number of channels one bed may
	// carry. 0 means unbounded.
	MaxBedChannelCount int

	// MaxBedCount is the maximum number of BedDefinitions allowed
	// directly under Frame. 0 means unbounded.
	MaxBedCount int

	// SubElementsAllowedInBed/Object reports whether BedDefinition and
	// ObjectDefinition may carry any sub-elements at all under this
	// profile (DbyCinema forbids nested conditional beds/objects and
	// remaps/zones entirely; DbyIMF keeps the base sets' nesting).
	SubElementsAllowedInBed    bool
	SubElementsAllowedInObject bool

	// SnapTolExistsMustBeZero requires every ObjectSubBlock's
	// SnapTolExists to be false.
	SnapTolExistsMustBeZero bool

	// ObjectMetaIDsMustBeSequential requires a frame's ObjectDefinition
	// MetaIDs to be exactly {1, 2, ..., n} with no gaps.
	ObjectMetaIDsMustBeSequential bool

	// AuthoringToolInfoAllowed reports whether an AuthoringToolInfo
	// sub-element is a legal Frame child under this profile.
	AuthoringToolInfoAllowed bool

	// ObjectZoneDefinition19Allowed reports whether ObjectDefinition may
	// carry a Zone19 sub-element under this profile.
	ObjectZoneDefinition19Allowed bool

	// ZoneGainsMustBePreset requires every in-stream zone-gains-9 ZoneGain
	// on an ObjectDefinition's pan sub-blocks to be one of the fixed
	// zone-gain presets recognized by validate's isPresetZoneGainCode
	// (DbyCinema: error; DbyIMF: warning, see
	// CodeWarningDolIMFObjectDefinitionZoneGainsNotAPreset).
	ZoneGainsMustBePreset bool

	// ZoneGainPresetIsWarningOnly softens ZoneGainsMustBePreset from an
	// error to a warning (DbyIMF only).
	ZoneGainPresetIsWarningOnly bool

	// ContinuousAudioSequenceRequired enables the DbyIMF-only ordering
	// rule in spec.md §4.H.
	ContinuousAudioSequenceRequired bool

	// AllowsReservedEnum reports whether an enum code outside the
	// recognized value set is merely a warning (true) rather than an
	// error (false) for this profile. It governs bed, object and remap
	// UseCase codes, bed and remap ChannelIDs, and undefined Frame
	// sub-element types; unsupported Frame header codes, prefixes and
	// spread modes are errors under every profile. ST2098-2's base sets reserve
	// unassigned codes for forward compatibility; the Dolby-branded
	// derived profiles close that door.
	AllowsReservedEnum bool
}

var allChannelIDs = []model.ChannelID{
	model.ChannelLeft, model.ChannelRight, model.ChannelCenter, model.ChannelLFE,
	model.ChannelLeftSurround, model.ChannelRightSurround,
	model.ChannelLeftRearSurround, model.ChannelRightRearSurround,
	model.ChannelTopSurround,
	model.ChannelLeftSideSurround, model.ChannelRightSideSurround,
	model.ChannelLeftTopSurround, model.ChannelRightTopSurround,
	model.ChannelLeftTopRearSurround, model.ChannelRightTopRearSurround,
}

var allUseCases = []model.UseCase{
	model.UseCaseNoUseCase, model.UseCaseCinema, model.UseCaseHome,
	model.UseCaseGame, model.UseCaseHearingImpaired, model.UseCaseVisuallyImpaired,
	model.UseCaseCommentary, model.UseCaseEmergencyCast,
}

var allGainPrefixes = []model.GainPrefix{
	model.GainPrefixInStream, model.GainPrefixUnitGain, model.GainPrefixSilence,
}

var allZoneGainPrefixes = []model.ZoneGainPrefix{
	model.ZoneGainPrefixSilence, model.ZoneGainPrefixUnitGain, model.ZoneGainPrefixInStream,
}

var allDecorPrefixes = []model.DecorCoefPrefix{
	model.DecorCoefPrefixNotExists, model.DecorCoefPrefixInStream,
}

var allSpreadModes = []model.SpreadMode{
	model.SpreadModeNone, model.SpreadModeLowRes, model.SpreadModeHighRes,
}

// registry holds one Profile per Set, built by init.
var registry map[Set]Profile

func init() {
	base := Profile{
		SampleRates:                []model.SampleRate{model.SampleRate48kHz, model.SampleRate96kHz},
		FrameRates: []model.FrameRate{
			model.FrameRate23_976, model.FrameRate24, model.FrameRate25, model.FrameRate30,
			model.FrameRate48, model.FrameRate50, model.FrameRate60,
			model.FrameRate96, model.FrameRate100, model.FrameRate120,
		},
		BitDepths:                     []model.BitDepth{model.BitDepth16, model.BitDepth24},
		BedUseCases:                   allUseCases,
		ObjectUseCases:                allUseCases,
		ChannelIDs:                    allChannelIDs,
		GainPrefixes:                  allGainPrefixes,
		ZoneGainPrefixes:              allZoneGainPrefixes,
		DecorPrefixes:                 allDecorPrefixes,
		SpreadModes:                   allSpreadModes,
		SubElementsAllowedInBed:       true,
		SubElementsAllowedInObject:    true,
		AuthoringToolInfoAllowed:      true,
		ObjectZoneDefinition19Allowed: true,
		AllowsReservedEnum:            true,
	}

	registry = map[Set]Profile{
		CinemaST2098_2_2018: base,
		CinemaST429_18_2019: base,

		IMFST2098_2_2019:  base,
		IMFST2067_201_2019: base,
	}

	dolCin := base
	// DbyCinema fixes the transport format: 48kHz only, one bed of up to
	// 10 channels, no nested conditional structure.
	dolCin.SampleRates = []model.SampleRate{model.SampleRate48kHz}
	dolCin.MaxBedCount = 1
	dolCin.MaxBedChannelCount = 10
	dolCin.MaxObjectCount = 118 // 10 bed channels + 118 objects = 128 assets/frame
	dolCin.SubElementsAllowedInBed = false
	dolCin.SubElementsAllowedInObject = false
	dolCin.SnapTolExistsMustBeZero = true
	dolCin.ObjectMetaIDsMustBeSequential = true
	dolCin.AuthoringToolInfoAllowed = false
	dolCin.ObjectZoneDefinition19Allowed = false
	dolCin.ZoneGainsMustBePreset = true
	dolCin.AllowsReservedEnum = false
	registry[DbyCinema] = dolCin

	dolIMF := base
	// DbyIMF keeps both sample rates and IMF's looser bed/object nesting
	// but adds the continuous-audio-sequence ordering rule and relaxes
	// the zone-gain-preset rule to a warning.
	dolIMF.SnapTolExistsMustBeZero = true
	dolIMF.ZoneGainsMustBePreset = true
	dolIMF.ZoneGainPresetIsWarningOnly = true
	dolIMF.ContinuousAudioSequenceRequired = true
	dolIMF.AllowsReservedEnum = false
	registry[DbyIMF] = dolIMF
}

// For returns set's Profile.
func For(set Set) Profile {
	return registry[set]
}

// AllowedChannelID reports whether id is a legal ChannelID under p.
func (p Profile) AllowedChannelID(id model.ChannelID) bool {
	for _, c := range p.ChannelIDs {
		if c == id {
			return true
		}
	}
	return false
}

// AllowedBedUseCase reports whether uc is legal for a BedDefinition
// under p.
func (p Profile) AllowedBedUseCase(uc model.UseCase) bool {
	for _, c := range p.BedUseCases {
		if c == uc {
			return true
		}
	}
	return false
}

// AllowedObjectUseCase reports whether uc is legal for an
// ObjectDefinition under p.
func (p Profile) AllowedObjectUseCase(uc model.UseCase) bool {
	for _, c := range p.ObjectUseCases {
		if c == uc {
			return true
		}
	}
	return false
}

// AllowedSampleRate reports whether sr is legal under p.
func (p Profile) AllowedSampleRate(sr model.SampleRate) bool {
	for _, s := range p.SampleRates {
		if s == sr {
			return true
		}
	}
	return false
}

// AllowedFrameRate reports whether fr is legal under p.
func (p Profile) AllowedFrameRate(fr model.FrameRate) bool {
	for _, f := range p.FrameRates {
		if f == fr {
			return true
		}
	}
	return false
}

// AllowedBitDepth reports whether bd is legal under p.
func (p Profile) AllowedBitDepth(bd model.BitDepth) bool {
	for _, b := range p.BitDepths {
		if b == bd {
			return true
		}
	}
	return false
}

// AllowedGainPrefix reports whether g is legal under p.
func (p Profile) AllowedGainPrefix(g model.GainPrefix) bool {
	for _, v := range p.GainPrefixes {
		if v == g {
			return true
		}
	}
	return false
}

// AllowedZoneGainPrefix reports whether z is legal under p.
func (p Profile) AllowedZoneGainPrefix(z model.ZoneGainPrefix) bool {
	for _, v := range p.ZoneGainPrefixes {
		if v == z {
			return true
		}
	}
	return false
}

// AllowedDecorPrefix reports whether d is legal under p.
func (p Profile) AllowedDecorPrefix(d model.DecorCoefPrefix) bool {
	for _, v := range p.DecorPrefixes {
		if v == d {
			return true
		}
	}
	return false
}

// AllowedSpreadMode reports whether s is legal under p.
func (p Profile) AllowedSpreadMode(s model.SpreadMode) bool {
	for _, v := range p.SpreadModes {
		if v == s {
			return true
		}
	}
	return false
}
