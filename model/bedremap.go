/*
NAME
  bedremap.go

DESCRIPTION
  bedremap.go defines BedRemap: a remap matrix carrying the gain
  coefficients from a source bed's channels to a set of destination
  channels, as an ordered list of RemapSubBlock rows.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// RemapCoefficient pairs a source-channel index with the gain applied to
// it for one destination channel.
type RemapCoefficient struct {
	SourceIndex int
	Gain        Gain
}

// RemapSubBlock is one destination channel's row of the remap matrix.
type RemapSubBlock struct {
	DestChannelID ChannelID
	Coefficients  []RemapCoefficient
}

// BedRemap is a remap matrix from a source bed's channels to a set of
// destination channels.
type BedRemap struct {
	base

	MetaID            MetaID
	UseCase           UseCase
	SourceChannels    uint32 // must equal the parent bed's channel count
	DestChannels      uint32
	Subblocks         []RemapSubBlock
	NumSubblocks      uint32 // stored count, must equal len(Subblocks) (I8)
}

// NewBedRemap returns an empty BedRemap.
func NewBedRemap(id MetaID) *BedRemap {
	return &BedRemap{base: newBase(KindBedRemap, uint32(id)), MetaID: id}
}
