/*
NAME
  pcm.go

DESCRIPTION
  pcm.go packs and unpacks the raw sample containers carried by an
  AudioDataPCM essence element: 16-bit samples left-justified in the upper
  2 bytes of a 2-byte container, 24-bit samples left-justified in the
  upper 3 bytes of a 4-byte container, both little-endian per ST2098-2.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pcm packs and unpacks the raw PCM sample containers carried by
// AudioDataPCM essence, matching the bit-depth-specific wire layout rather
// than a generic sample format.
package pcm

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/ausocean/iab/model"
)

// ContainerBytes returns the per-sample container width, in bytes, for the
// given bit depth: 2 for 16-bit, 4 for 24-bit. It returns 0 for an
// unrecognized bit depth.
func ContainerBytes(bd model.BitDepth) int {
	switch bd {
	case model.BitDepth16:
		return 2
	case model.BitDepth24:
		return 4
	default:
		return 0
	}
}

// Pack encodes samples (one int32 per sample, holding a value within the
// signed range of bd) into the wire container layout for bd.
func Pack(samples []int32, bd model.BitDepth) ([]byte, error) {
	width := ContainerBytes(bd)
	if width == 0 {
		return nil, errors.Errorf("pcm: unrecognized bit depth %v", bd)
	}
	out := make([]byte, len(samples)*width)
	for i, s := range samples {
		switch bd {
		case model.BitDepth16:
			binary.LittleEndian.PutUint16(out[i*width:], uint16(int16(s)))
		case model.BitDepth24:
			// Left-justified 24 bits in the upper 3 bytes of the 4-byte
			// container; the low byte is always zero.
			binary.LittleEndian.PutUint32(out[i*width:], uint32(s&0xffffff)<<8)
		}
	}
	return out, nil
}

// Unpack decodes a packed byte slice of the given bit depth back into
// sign-extended int32 samples.
func Unpack(data []byte, bd model.BitDepth) ([]int32, error) {
	width := ContainerBytes(bd)
	if width == 0 {
		return nil, errors.Errorf("pcm: unrecognized bit depth %v", bd)
	}
	if len(data)%width != 0 {
		return nil, errors.Errorf("pcm: data length %d is not a multiple of container width %d", len(data), width)
	}
	out := make([]int32, len(data)/width)
	for i := range out {
		raw := data[i*width : (i+1)*width]
		switch bd {
		case model.BitDepth16:
			out[i] = int32(int16(binary.LittleEndian.Uint16(raw)))
		case model.BitDepth24:
			v := int32(binary.LittleEndian.Uint32(raw)) >> 8
			out[i] = (v << 8) >> 8 // sign-extend from bit 23
		}
	}
	return out, nil
}
