/*
NAME
  zone19.go

DESCRIPTION
  zone19.go defines Zone19, the 19-zone gain refinement sub-element of an
  ObjectDefinition, carrying one Zone19SubBlock of per-zone gains per
  object time slice.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// Zone19SubBlock carries Zone19PresetCount per-zone gains for one object
// time slice.
type Zone19SubBlock struct {
	Gains [Zone19PresetCount]ZoneGain
}

// Zone19 is the 19-zone gain refinement sub-element of an
// ObjectDefinition.
type Zone19 struct {
	base

	Subblocks    []Zone19SubBlock
	NumSubblocks uint32 // stored count, must equal len(Subblocks) (I8)
}

// NewZone19 returns an empty Zone19. Zone19 has no MetaID of its own; its
// synthetic identity for issue reporting is Kind().String()
// ("ObjectZoneDefinition19").
func NewZone19() *Zone19 {
	return &Zone19{base: newBase(KindObjectZoneDefinition19, 0)}
}
