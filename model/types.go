/*
NAME
  types.go

DESCRIPTION
  types.go defines the primitive semantic types shared by every IAB
  element: identifiers, enumerated codes, and quantized scalars.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package model defines the in-memory object tree an IAB frame decodes
// into: Frame, BedDefinition, ObjectDefinition, and their sub-elements.
package model

// MetaID uniquely identifies a BedDefinition, ObjectDefinition or BedRemap
// within one frame.
type MetaID uint32

// AudioDataID uniquely identifies an essence element (DLC or PCM) within
// one frame. SilentAudioDataID (0) never resolves to an essence element
// and denotes "silence/no asset".
type AudioDataID uint32

// SilentAudioDataID is the reserved "no essence, silence" sentinel.
const SilentAudioDataID AudioDataID = 0

// ChannelID enumerates a bed channel slot.
type ChannelID uint8

// Recognized ChannelID codes (ST2098-2 Table, reproduced as the single
// source of truth in the constraint registry for per-profile legality;
// these are the raw wire values).
const (
	ChannelLeft ChannelID = iota
	ChannelRight
	ChannelCenter
	ChannelLFE
	ChannelLeftSurround
	ChannelRightSurround
	ChannelLeftRearSurround
	ChannelRightRearSurround
	ChannelTopSurround
	ChannelLeftSideSurround
	ChannelRightSideSurround
	ChannelLeftTopSurround
	ChannelRightTopSurround
	ChannelLeftTopRearSurround
	ChannelRightTopRearSurround
	channelIDCount
)

// SampleRate enumerates the wire sample-rate code.
type SampleRate uint8

const (
	SampleRate48kHz SampleRate = iota
	SampleRate96kHz
)

// Hz returns the numeric sample rate in Hz, or 0 if unrecognized.
func (s SampleRate) Hz() int {
	switch s {
	case SampleRate48kHz:
		return 48000
	case SampleRate96kHz:
		return 96000
	default:
		return 0
	}
}

// BitDepth enumerates the wire bit-depth code.
type BitDepth uint8

const (
	BitDepth16 BitDepth = iota
	BitDepth24
)

// Bits returns the numeric bit depth, or 0 if unrecognized.
func (b BitDepth) Bits() int {
	switch b {
	case BitDepth16:
		return 16
	case BitDepth24:
		return 24
	default:
		return 0
	}
}

// FrameRate enumerates the wire frame-rate code, per spec.md §6's table.
type FrameRate uint8

const (
	FrameRate23_976 FrameRate = iota
	FrameRate24
	FrameRate25
	FrameRate30
	FrameRate48
	FrameRate50
	FrameRate60
	FrameRate96
	FrameRate100
	FrameRate120
)

// FPS1000 returns the frame rate as frames-per-second*1000 (so the fractional
// 23.976 rate is representable exactly), or 0 if unrecognized.
func (f FrameRate) FPS1000() int {
	switch f {
	case FrameRate23_976:
		return 23976
	case FrameRate24:
		return 24000
	case FrameRate25:
		return 25000
	case FrameRate30:
		return 30000
	case FrameRate48:
		return 48000
	case FrameRate50:
		return 50000
	case FrameRate60:
		return 60000
	case FrameRate96:
		return 96000
	case FrameRate100:
		return 100000
	case FrameRate120:
		return 120000
	default:
		return 0
	}
}

// UseCase enumerates the intent code conditioning which conditional
// sub-elements are active.
type UseCase uint8

const (
	UseCaseNoUseCase UseCase = iota
	UseCaseCinema
	UseCaseHome
	UseCaseGame
	UseCaseHearingImpaired
	UseCaseVisuallyImpaired
	UseCaseCommentary
	UseCaseEmergencyCast
	useCaseCount
)

// GainPrefix selects how a Gain field's code is interpreted: a direct
// quantized step, or one of the documented defaults/special values.
type GainPrefix uint8

const (
	GainPrefixInStream GainPrefix = iota // gain value follows, quantized
	GainPrefixUnitGain                   // implicit 0dB, no value follows
	GainPrefixSilence                     // implicit -inf dB, no value follows
)

// Gain is a quantized gain value together with the prefix selecting how
// to interpret it.
type Gain struct {
	Prefix GainPrefix
	Code   uint16 // valid only when Prefix == GainPrefixInStream
}

// DecorCoefPrefix selects how a DecorCoef field is interpreted.
type DecorCoefPrefix uint8

const (
	DecorCoefPrefixNotExists DecorCoefPrefix = iota
	DecorCoefPrefixInStream
)

// DecorCoef is a decorrelation coefficient with its presence/selector
// prefix.
type DecorCoef struct {
	Prefix DecorCoefPrefix
	Code   uint8
}

// ZoneGainPrefix selects how a ZoneGain field is interpreted.
type ZoneGainPrefix uint8

const (
	ZoneGainPrefixSilence ZoneGainPrefix = iota
	ZoneGainPrefixUnitGain
	ZoneGainPrefixInStream
	zoneGainPrefixCount
)

// ZoneGain is a quantized per-zone gain with its selector prefix.
type ZoneGain struct {
	Prefix ZoneGainPrefix
	Code   uint8
}

// SpreadMode enumerates an object's spread/size behavior.
type SpreadMode uint8

const (
	SpreadModeNone SpreadMode = iota
	SpreadModeLowRes
	SpreadModeHighRes
	spreadModeCount
)

// AudioDescription enumerates the small fixed vocabulary of bed/object
// audio-description codes (distinct from the free-text AudioDescription
// string also carried by beds/objects).
type AudioDescription uint8

const (
	AudioDescriptionNotIndicated AudioDescription = iota
	AudioDescriptionDialog
	AudioDescriptionMusic
	AudioDescriptionEffects
	AudioDescriptionMixed
	AudioDescriptionHearingImpaired
	AudioDescriptionVisuallyImpairedNarration
	audioDescriptionCount
)

// PositionUnitCube is a quantized (x,y,z) position inside the unit cube,
// each axis independently in [0,1] represented as a 32-bit IEEE-754 float
// per ST2098-2.
type PositionUnitCube struct {
	X, Y, Z float32
}

// AudioDescriptionTextMaxLen is the maximum length, in bytes, of the
// free-text audio description field carried by beds and objects.
const AudioDescriptionTextMaxLen = 255

// Zone19PresetCount is the number of gain sub-blocks in an
// ObjectZoneDefinition19 element - a protocol constant, not an incidental
// list length (original_source/include/IABElementsAPI.h names this
// kIABObjectZone19_PresetCount).
const Zone19PresetCount = 19

// Zone9GainCount is the number of coarse zone gains ("zone-gains-9")
// carried directly on an ObjectSubBlock.
const Zone9GainCount = 9
