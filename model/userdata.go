/*
NAME
  userdata.go

DESCRIPTION
  userdata.go defines UserData, an opaque, SMPTE-labelled byte payload
  carried unvalidated through a frame.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// SMPTELabelLen is the fixed byte length of a UserData element's leading
// SMPTE universal label (spec.md §3).
const SMPTELabelLen = 16

// UserData is an opaque, SMPTE-labelled payload. Its Payload length is
// implied by the element's encoded BodyLength, not self-describing, so it
// never owns sub-elements.
type UserData struct {
	base

	Label   [SMPTELabelLen]byte
	Payload []byte
}

// NewUserData returns a UserData with the given label and no payload.
func NewUserData(label [SMPTELabelLen]byte) *UserData {
	return &UserData{base: newBase(KindUserData, 0), Label: label}
}
