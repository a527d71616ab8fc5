/*
NAME
  dlc.go

DESCRIPTION
  dlc.go defines Codec, the opaque encode/decode boundary for Dolby
  Digital-derived DLC essence: the wire payload carried by an
  AudioDataDLC element is compressed audio this module never inspects
  beyond its byte length, so Codec exists to let callers exercise the
  round trip in tests without this module depending on a proprietary
  decoder.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dlc provides the Codec boundary for DLC-compressed audio
// essence. No Codec implementation in this package performs real DLC
// compression; DLC signal correctness is out of scope (see SPEC_FULL.md
// Non-goals). PassthroughCodec exists only so parser/validate round-trip
// tests have something concrete to call.
package dlc

import (
	"github.com/pkg/errors"

	"github.com/ausocean/iab/model"
)

// Codec encodes and decodes one channel's worth of samples to and from a
// DLC essence payload at a given sample rate.
type Codec interface {
	Encode(samples []int32, rate model.SampleRate) ([]byte, error)
	Decode(data []byte, rate model.SampleRate) ([]int32, error)
}

// ErrOddLength is returned by PassthroughCodec.Decode when given a byte
// slice whose length is not a whole number of samples.
var ErrOddLength = errors.New("dlc: payload length is not a multiple of sample width")

// PassthroughCodec is a Codec that stores each int32 sample as 4
// little-endian bytes with no compression. It stands in for a real DLC
// codec in tests that need Encode/Decode to round-trip.
type PassthroughCodec struct{}

// Encode implements Codec.
func (PassthroughCodec) Encode(samples []int32, rate model.SampleRate) ([]byte, error) {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		u := uint32(s)
		out[i*4+0] = byte(u)
		out[i*4+1] = byte(u >> 8)
		out[i*4+2] = byte(u >> 16)
		out[i*4+3] = byte(u >> 24)
	}
	return out, nil
}

// Decode implements Codec.
func (PassthroughCodec) Decode(data []byte, rate model.SampleRate) ([]int32, error) {
	if len(data)%4 != 0 {
		return nil, ErrOddLength
	}
	out := make([]int32, len(data)/4)
	for i := range out {
		u := uint32(data[i*4]) | uint32(data[i*4+1])<<8 | uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24
		out[i] = int32(u)
	}
	return out, nil
}
