/*
NAME
  frame.go

DESCRIPTION
  frame.go implements the per-frame state machine (spec.md §4.F):
  SeekPreamble, ReadSubFrameHeader, ReadFrameElement.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package parser

import (
	"github.com/pkg/errors"

	"github.com/ausocean/iab/bits"
	"github.com/ausocean/iab/model"
	"github.com/ausocean/iab/varint"
)

// Preamble is the byte-aligned marker SeekPreamble scans for at the start
// of every frame.
var Preamble = []byte{0x49, 0x41, 0x42, 0x31} // "IAB1"

// subFrameHeader is the fixed-field container header read immediately
// after the preamble: a format version (flagged, not rejected, when it
// differs from the previous frame's) and the declared byte length of the
// Frame element that follows, used to detect element-length mismatches.
type subFrameHeader struct {
	FormatVersion uint8
	FrameLength   uint32
}

func seekPreamble(r *bits.Reader, firstFrame bool) error {
	ok, err := r.Sync(Preamble, nil)
	if err != nil {
		return newParseError(ErrCorruption, err)
	}
	if !ok {
		if firstFrame {
			return newParseError(ErrMissingPreamble, nil)
		}
		return newParseError(ErrEndOfStream, nil)
	}
	if _, err := r.ReadAlignedBytes(len(Preamble)); err != nil {
		return newParseError(ErrCorruption, err)
	}
	return nil
}

func readSubFrameHeader(r *bits.Reader) (subFrameHeader, error) {
	v, err := r.ReadBits(widthVersion)
	if err != nil {
		return subFrameHeader{}, newParseError(ErrSubFrameHeaderInconsistent, err)
	}
	flen, err := varint.ReadPackedLength(r)
	if err != nil {
		return subFrameHeader{}, newParseError(ErrSubFrameHeaderInconsistent, err)
	}
	if int64(flen)*8 > r.Remaining() {
		return subFrameHeader{}, newParseError(ErrSubFrameHeaderInconsistent,
			errors.Errorf("declared frame length %d bytes exceeds %d remaining", flen, r.Remaining()/8))
	}
	return subFrameHeader{FormatVersion: uint8(v), FrameLength: flen}, nil
}

// readFrameElement decodes the Frame element following a sub-frame
// header and checks that it consumed exactly hdr.FrameLength bytes.
func readFrameElement(r *bits.Reader, hdr subFrameHeader) (*model.Frame, error) {
	start := r.Position()
	elem, recognized, err := decodeElement(r)
	if err != nil {
		return nil, err
	}
	if !recognized {
		return nil, newParseError(ErrCorruption, errors.New("expected Frame element, found unrecognized tag"))
	}
	frame, ok := elem.(*model.Frame)
	if !ok {
		return nil, newParseError(ErrCorruption, errors.Errorf("expected Frame element, got %s", elem.Kind()))
	}
	consumedBytes := uint32((r.Position() - start) / 8)
	if consumedBytes != hdr.FrameLength {
		return nil, newParseError(ErrElementLengthMismatch,
			errors.Errorf("frame consumed %d bytes, sub-frame header declared %d", consumedBytes, hdr.FrameLength))
	}
	return frame, nil
}
