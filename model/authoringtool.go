/*
NAME
  authoringtool.go

DESCRIPTION
  authoringtool.go defines AuthoringToolInfo, the free-text identifier of
  the tool that produced a frame.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package model

// AuthoringToolInfo is a free-text, null-terminated identifier of the tool
// that authored a frame. It never owns sub-elements.
type AuthoringToolInfo struct {
	base

	Text string // decoded with the terminating NUL stripped
}

// NewAuthoringToolInfo returns an AuthoringToolInfo with the given text.
func NewAuthoringToolInfo(text string) *AuthoringToolInfo {
	return &AuthoringToolInfo{base: newBase(KindAuthoringToolInfo, 0), Text: text}
}
