/*
NAME
  bed.go

DESCRIPTION
  bed.go defines BedDefinition and its BedChannel leaves: a named,
  channel-based audio component that may itself be conditional on a
  UseCase and carry one nested level of conditional beds or BedRemaps.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// BedChannel is one channel slot within a BedDefinition: a ChannelID, the
// essence it draws from (by AudioDataID, 0 for silence), and its gain and
// decorrelation metadata. BedChannel never owns sub-elements.
type BedChannel struct {
	ChannelID   ChannelID
	AudioDataID AudioDataID
	Gain        Gain
	Decor       DecorCoef
}

// BedDefinition is a named bed (channel set).
type BedDefinition struct {
	base

	MetaID           MetaID
	Conditional      bool // isConditional_ in the source
	UseCase          UseCase // meaningful only when Conditional
	Channels         []BedChannel
	AudioDescription string // free text, <= AudioDescriptionTextMaxLen bytes

	// NumChannels/NumSubElements are the stored "count" fields that must
	// equal len(Channels)/len(sub) after parse (I8).
	NumChannels   uint32
	NumSubElements uint32

	NumUndefinedSubElements int
	NumUnallowedSubElements int
}

// NewBedDefinition returns an empty BedDefinition.
func NewBedDefinition(id MetaID) *BedDefinition {
	return &BedDefinition{base: newBase(KindBedDefinition, uint32(id)), MetaID: id}
}

// ChannelIDSet returns the set of ChannelIDs present on this bed, used by
// the cross-element validator for I4 (channel distinctness) and by the
// cross-frame persistence pass to detect a bed's channel set changing
// across frames (spec.md §4.H).
func (b *BedDefinition) ChannelIDSet() map[ChannelID]bool {
	set := make(map[ChannelID]bool, len(b.Channels))
	for _, c := range b.Channels {
		set[c.ChannelID] = true
	}
	return set
}

// NestedBeds returns this bed's direct BedDefinition sub-elements (its one
// permitted level of conditional nesting, spec.md I5).
func (b *BedDefinition) NestedBeds() []*BedDefinition {
	var out []*BedDefinition
	for _, e := range b.sub {
		if nb, ok := e.(*BedDefinition); ok {
			out = append(out, nb)
		}
	}
	return out
}

// Remaps returns this bed's direct BedRemap sub-elements.
func (b *BedDefinition) Remaps() []*BedRemap {
	var out []*BedRemap
	for _, e := range b.sub {
		if r, ok := e.(*BedRemap); ok {
			out = append(out, r)
		}
	}
	return out
}
