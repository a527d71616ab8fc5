/*
NAME
  essence.go

DESCRIPTION
  essence.go defines AudioDataDLC and AudioDataPCM, the compressed and raw
  audio essence element kinds referenced by BedChannel/ObjectDefinition
  AudioDataIDs.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// AudioDataDLC is DLC-compressed audio essence for one bed channel or
// object. The DLC payload itself is opaque to the core (codec/dlc); only
// AudioDataID, DLCSampleRate and the raw byte length are inspected during
// parsing/validation.
type AudioDataDLC struct {
	base

	AudioDataID   AudioDataID
	DLCSampleRate SampleRate
	Payload       []byte
}

// NewAudioDataDLC returns an AudioDataDLC with no payload.
func NewAudioDataDLC(id AudioDataID) *AudioDataDLC {
	return &AudioDataDLC{base: newBase(KindAudioDataDLC, uint32(id)), AudioDataID: id}
}

// AudioDataPCM is raw, packed audio essence for one bed channel or
// object.
type AudioDataPCM struct {
	base

	AudioDataID AudioDataID
	FrameRate   FrameRate
	SampleRate  SampleRate
	BitDepth    BitDepth
	Payload     []byte // packed per codec/pcm's bit-depth convention
}

// NewAudioDataPCM returns an AudioDataPCM with no payload.
func NewAudioDataPCM(id AudioDataID) *AudioDataPCM {
	return &AudioDataPCM{base: newBase(KindAudioDataPCM, uint32(id)), AudioDataID: id}
}
