/*
NAME
  frame.go

DESCRIPTION
  frame.go defines Frame, the root element of one presentation unit: the
  frame header fields plus its ordered list of sub-elements (beds,
  objects, essence, authoring tool info, user data).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// Frame is one presentation unit: one audio frame duration's worth of
// beds, objects, essence, and optional metadata sub-elements.
type Frame struct {
	base

	Version      uint8
	SampleRate   SampleRate
	BitDepth     BitDepth
	FrameRate    FrameRate
	MaxRendered  uint32 // Plex-encoded on the wire

	// NumUndefinedSubElements/NumUnallowedSubElements are incremented by
	// the element framework (parser) while decoding this Frame's
	// sub-elements: unknown IDs bump the former and are skipped; known
	// IDs not allowed as a Frame child (BedRemap, ObjectZoneDefinition19)
	// bump the latter and are dropped (spec.md §4.C). The counters are
	// tracked uniformly for every element type so
	// BedDefinition/ObjectDefinition share the same accounting path.
	NumUndefinedSubElements int
	NumUnallowedSubElements int
}

// NewFrame returns an empty Frame with the given header fields.
func NewFrame(version uint8, sr SampleRate, bd BitDepth, fr FrameRate) *Frame {
	return &Frame{
		base:       newBase(KindFrame, 0),
		Version:    version,
		SampleRate: sr,
		BitDepth:   bd,
		FrameRate:  fr,
	}
}

// Beds returns the Frame's direct BedDefinition sub-elements, in order.
func (f *Frame) Beds() []*BedDefinition {
	var out []*BedDefinition
	for _, e := range f.sub {
		if b, ok := e.(*BedDefinition); ok {
			out = append(out, b)
		}
	}
	return out
}

// Objects returns the Frame's direct ObjectDefinition sub-elements, in
// order.
func (f *Frame) Objects() []*ObjectDefinition {
	var out []*ObjectDefinition
	for _, e := range f.sub {
		if o, ok := e.(*ObjectDefinition); ok {
			out = append(out, o)
		}
	}
	return out
}

// DLCEssence returns the Frame's direct AudioDataDLC sub-elements.
func (f *Frame) DLCEssence() []*AudioDataDLC {
	var out []*AudioDataDLC
	for _, e := range f.sub {
		if d, ok := e.(*AudioDataDLC); ok {
			out = append(out, d)
		}
	}
	return out
}

// PCMEssence returns the Frame's direct AudioDataPCM sub-elements.
func (f *Frame) PCMEssence() []*AudioDataPCM {
	var out []*AudioDataPCM
	for _, e := range f.sub {
		if p, ok := e.(*AudioDataPCM); ok {
			out = append(out, p)
		}
	}
	return out
}

// AuthoringToolInfos returns the Frame's direct AuthoringToolInfo
// sub-elements (legally at most one; more is a warning, see validate).
func (f *Frame) AuthoringToolInfos() []*AuthoringToolInfo {
	var out []*AuthoringToolInfo
	for _, e := range f.sub {
		if a, ok := e.(*AuthoringToolInfo); ok {
			out = append(out, a)
		}
	}
	return out
}

// UserDatas returns the Frame's direct UserData sub-elements.
func (f *Frame) UserDatas() []*UserData {
	var out []*UserData
	for _, e := range f.sub {
		if u, ok := e.(*UserData); ok {
			out = append(out, u)
		}
	}
	return out
}
