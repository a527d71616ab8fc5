/*
NAME
  object.go

DESCRIPTION
  object.go defines ObjectDefinition and its per-time-slice ObjectSubBlock
  panning samples: a dynamic, point-source audio component with a
  position/gain trajectory across the frame.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// ObjectSubBlock is one time-sliced panning sample within an object's
// frame-spanning trajectory.
type ObjectSubBlock struct {
	PanInfoExists bool // if false, the remaining fields repeat the prior sample
	Gain          Gain
	Position      PositionUnitCube
	SnapPresent   bool
	SnapTolExists bool // DbyCinema/DbyIMF require this false
	Spread        SpreadMode
	ZoneGains9    [Zone9GainCount]ZoneGain
	Decor         DecorCoef
}

// ObjectDefinition is a dynamic, point-source audio object.
type ObjectDefinition struct {
	base

	MetaID           MetaID
	AudioDataID      AudioDataID
	Conditional      bool
	UseCase          UseCase
	Subblocks        []ObjectSubBlock
	NumSubblocks     uint32 // stored count, must equal len(Subblocks) (I8)
	AudioDescription string

	NumSubElements          uint32
	NumUndefinedSubElements int
	NumUnallowedSubElements int
}

// NewObjectDefinition returns an empty ObjectDefinition.
func NewObjectDefinition(id MetaID) *ObjectDefinition {
	return &ObjectDefinition{base: newBase(KindObjectDefinition, uint32(id)), MetaID: id}
}

// NestedObjects returns this object's direct ObjectDefinition
// sub-elements (its one permitted level of conditional nesting, I5).
func (o *ObjectDefinition) NestedObjects() []*ObjectDefinition {
	var out []*ObjectDefinition
	for _, e := range o.sub {
		if no, ok := e.(*ObjectDefinition); ok {
			out = append(out, no)
		}
	}
	return out
}

// Zones returns this object's direct ObjectZoneDefinition19 sub-elements.
func (o *ObjectDefinition) Zones() []*Zone19 {
	var out []*Zone19
	for _, e := range o.sub {
		if z, ok := e.(*Zone19); ok {
			out = append(out, z)
		}
	}
	return out
}
